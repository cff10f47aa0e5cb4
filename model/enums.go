package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCode is returned when an integer code has no matching member.
	ErrUnknownCode = errors.New("unknown code")
	// ErrUnknownName is returned when a textual value has no matching member.
	ErrUnknownName = errors.New("unknown name")
)

// normalizeName folds case and separators so "very-careful", "VeryCareful"
// and "very_careful" all compare equal.
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

func unknownName(kind, s string) error {
	return fmt.Errorf("%w: %s %q", ErrUnknownName, kind, s)
}

func unknownCode(kind string, code int) error {
	return fmt.Errorf("%w: %s %d", ErrUnknownCode, kind, code)
}
