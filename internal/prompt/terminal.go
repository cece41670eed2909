package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"genwallet/internal/domain"
)

// Terminal prompts the operator on the controlling terminal. Prompts go to
// stderr so stdout stays clean for piped output.
type Terminal struct {
	in  *os.File
	out io.Writer
	rd  *bufio.Reader
}

// NewTerminal returns a prompter bound to stdin/stderr.
func NewTerminal() *Terminal {
	return &Terminal{in: os.Stdin, out: os.Stderr, rd: bufio.NewReader(os.Stdin)}
}

// ReadPassword reads a password without echoing. When stdin is not a
// terminal it falls back to reading a line, so the binary stays usable
// under pipes.
func (t *Terminal) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	if term.IsTerminal(int(t.in.Fd())) {
		raw, err := term.ReadPassword(int(t.in.Fd()))
		fmt.Fprintln(t.out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}
	line, err := t.rd.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadAlias elicits an alias for the thing described by aliasFor.
func (t *Terminal) ReadAlias(aliasFor string) (string, error) {
	fmt.Fprintf(t.out, "Choose an alias for %s: ", aliasFor)
	line, err := t.rd.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read alias: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ConfirmOverwrite offers skip/replace/reselect for a colliding alias.
// Unrecognized input repeats the prompt; the loop is iterative so hostile
// or absent-minded input cannot grow the stack.
func (t *Terminal) ConfirmOverwrite(alias domain.Alias, aliasFor string) (domain.ConfirmationResponse, error) {
	for {
		fmt.Fprintf(t.out,
			"You're trying to create an alias %q that already exists for %s in your store.\n"+
				"Would you like to replace it? s(k)ip/re(p)lace/re(s)elect: ",
			alias, aliasFor)
		line, err := t.rd.ReadString('\n')
		if err != nil && line == "" {
			return domain.ConfirmationResponse{}, fmt.Errorf("read confirmation: %w", err)
		}
		choice := strings.TrimSpace(line)
		if choice == "" {
			fmt.Fprintln(t.out, "Invalid option, try again.")
			continue
		}
		switch choice[0] {
		case 'k', 'K':
			return domain.ConfirmationResponse{Choice: domain.ConfirmSkip}, nil
		case 'p', 'P':
			return domain.ConfirmationResponse{Choice: domain.ConfirmReplace}, nil
		case 's', 'S':
			fmt.Fprint(t.out, "Please enter a different alias: ")
			next, err := t.rd.ReadString('\n')
			if err != nil && next == "" {
				return domain.ConfirmationResponse{}, fmt.Errorf("read alias: %w", err)
			}
			return domain.ConfirmationResponse{
				Choice:   domain.ConfirmReselect,
				NewAlias: domain.NormalizeAlias(next),
			}, nil
		}
		fmt.Fprintln(t.out, "Invalid option, try again.")
	}
}

var _ domain.Prompter = (*Terminal)(nil)
