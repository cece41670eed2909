// Package passphrase implements the password policy: an ordered set of
// sources (password file, literal value, interactive prompt), non-empty
// enforcement, and confirmation-on-write for newly set passwords.
package passphrase

import (
	"errors"
	"fmt"
	"io"
	"os"

	"genwallet/internal/domain"
)

var (
	// ErrEmptyPassword is returned when the selected source produced an
	// empty password. It is always fatal: key material is never read or
	// written under an empty credential.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrPasswordMismatch is returned when the two confirmation reads
	// differ. There is no retry loop; the caller escalates.
	ErrPasswordMismatch = errors.New("your two inputs do not match")
)

// Sources selects where passwords come from, in priority order: a file
// whose whole content is the password, then a literal value, then the
// interactive prompt. A nil field means the source is not configured; the
// first configured source is used exclusively, even when it yields an
// empty or unreadable result.
type Sources struct {
	PasswordFile *string
	Password     *string
}

// Reader obtains passwords per the policy. The environment is read once at
// the boundary and injected here as Sources.
type Reader struct {
	sources  Sources
	prompter domain.Prompter
	warnOut  io.Writer
}

// NewReader returns a policy-enforcing password reader.
func NewReader(sources Sources, prompter domain.Prompter) *Reader {
	return &Reader{sources: sources, prompter: prompter, warnOut: os.Stderr}
}

// Read returns a password from the first configured source. Sources are
// never combined: a configured password file is used even if unreadable,
// in which case the read failure is fatal.
func (r *Reader) Read(prompt string) (string, error) {
	var pwd string
	switch {
	case r.sources.PasswordFile != nil:
		content, err := os.ReadFile(*r.sources.PasswordFile)
		if err != nil {
			return "", fmt.Errorf("read password file: %w", err)
		}
		pwd = string(content)
	case r.sources.Password != nil:
		pwd = *r.sources.Password
	default:
		var err error
		pwd, err = r.prompter.ReadPassword(prompt)
		if err != nil {
			return "", err
		}
	}
	if pwd == "" {
		return "", ErrEmptyPassword
	}
	return pwd, nil
}

// ReadAndConfirm reads a new password twice with distinct prompts and
// requires an exact match. When encryption is disabled it warns that key
// material will be stored unencrypted and returns no password.
func (r *Reader) ReadAndConfirm(unsafeDontEncrypt bool) (string, error) {
	if unsafeDontEncrypt {
		fmt.Fprintln(r.warnOut, "Warning: the keypair will NOT be encrypted.")
		return "", nil
	}
	pwd, err := r.Read("Enter your encryption password: ")
	if err != nil {
		return "", err
	}
	confirm, err := r.Read("To confirm, please enter the same encryption password once more: ")
	if err != nil {
		return "", err
	}
	if pwd != confirm {
		return "", ErrPasswordMismatch
	}
	return pwd, nil
}

var _ domain.PassphraseReader = (*Reader)(nil)
