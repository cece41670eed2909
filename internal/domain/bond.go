package domain

// Bond is one genesis transaction record: a stake bond from a source
// account to a validator. Signatures accumulate as independent parties
// co-sign the bundle; the map is keyed by the encoded public key that
// produced each signature.
type Bond struct {
	Source     string            `toml:"source"`
	Validator  string            `toml:"validator"`
	Amount     string            `toml:"amount"`
	Signatures map[string]string `toml:"signatures,omitempty"`
}

// BondList is an ordered bundle of genesis transactions. Ordering is
// significant: records are processed and re-emitted in bundle order.
type BondList struct {
	Bond []Bond `toml:"bond"`
}
