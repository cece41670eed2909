// Package wallet implements the in-memory credential store: alias-indexed
// keypairs and addresses, collision adjudication for the shared alias
// namespace, the optional validator key bundle, and secret key resolution
// across the store and the validator-data fallback.
package wallet
