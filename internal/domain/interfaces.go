package domain

// Prompter is the interactive front-end used for passwords, aliases and
// collision confirmations. The terminal implementation blocks on operator
// input; the scripted implementation replays a fixed sequence for tests
// and headless use.
type Prompter interface {
	// ReadPassword reads a password with masked input.
	ReadPassword(prompt string) (string, error)

	// ReadAlias elicits an alias for the thing described by aliasFor.
	ReadAlias(aliasFor string) (string, error)

	// ConfirmOverwrite adjudicates an alias collision. Implementations must
	// re-prompt on unrecognized input rather than apply a default.
	ConfirmOverwrite(alias Alias, aliasFor string) (ConfirmationResponse, error)
}

// PassphraseReader obtains passwords for encrypting and decrypting stored
// key material, enforcing the non-empty password policy.
type PassphraseReader interface {
	// Read returns a password from the first configured source. An empty
	// password is an error, never a usable credential.
	Read(prompt string) (string, error)

	// ReadAndConfirm reads a new password twice and requires both reads to
	// match byte for byte. When encryption is disabled it warns and returns
	// the empty string with no error.
	ReadAndConfirm(unsafeDontEncrypt bool) (string, error)
}

// DeviceSigner is a hardware signing device. Calls block on device I/O;
// any transport failure is fatal for the operation in progress.
type DeviceSigner interface {
	PublicKey() (PublicKey, error)
	Sign(data []byte) ([]byte, error)
}
