//go:build !itm || !cgo

package native

import (
	"errors"
	"testing"
)

func TestUnavailableWithoutTag(t *testing.T) {
	if Available() {
		t.Fatal("stub build should not report the native model")
	}
	if _, err := New(); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("New() err = %v, want ErrUnavailable", err)
	}
}
