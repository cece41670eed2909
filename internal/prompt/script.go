package prompt

import (
	"errors"

	"genwallet/internal/domain"
)

// ErrScriptExhausted is returned when a scripted prompter runs out of
// queued responses.
var ErrScriptExhausted = errors.New("scripted prompter: no response queued")

// Script is a non-interactive prompter that replays queued responses in
// order. It backs tests and headless flows where no terminal exists.
type Script struct {
	Passwords     []string
	Aliases       []string
	Confirmations []domain.ConfirmationResponse
}

func (s *Script) ReadPassword(string) (string, error) {
	if len(s.Passwords) == 0 {
		return "", ErrScriptExhausted
	}
	pwd := s.Passwords[0]
	s.Passwords = s.Passwords[1:]
	return pwd, nil
}

func (s *Script) ReadAlias(string) (string, error) {
	if len(s.Aliases) == 0 {
		return "", ErrScriptExhausted
	}
	alias := s.Aliases[0]
	s.Aliases = s.Aliases[1:]
	return alias, nil
}

func (s *Script) ConfirmOverwrite(domain.Alias, string) (domain.ConfirmationResponse, error) {
	if len(s.Confirmations) == 0 {
		return domain.ConfirmationResponse{}, ErrScriptExhausted
	}
	resp := s.Confirmations[0]
	s.Confirmations = s.Confirmations[1:]
	return resp, nil
}

var _ domain.Prompter = (*Script)(nil)
