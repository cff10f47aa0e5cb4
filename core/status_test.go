package core

import (
	"errors"
	"testing"
)

func TestDecodeStatusSuccessCodes(t *testing.T) {
	st, err := DecodeStatus(0)
	if err != nil || st != StatusSuccess {
		t.Fatalf("DecodeStatus(0) = %v, %v", st, err)
	}
	st, err = DecodeStatus(1)
	if err != nil || st != StatusSuccessWithWarning {
		t.Fatalf("DecodeStatus(1) = %v, %v", st, err)
	}
}

func TestDecodeStatusIsInjective(t *testing.T) {
	seen := make(map[ErrorCode]int)
	names := make(map[string]int)
	for code := 1000; code <= 1022; code++ {
		if code == 1015 {
			continue
		}
		_, err := DecodeStatus(code)
		se, ok := AsStatusError(err)
		if !ok {
			t.Fatalf("DecodeStatus(%d) err = %v, want *StatusError", code, err)
		}
		if int(se.Code) != code {
			t.Fatalf("DecodeStatus(%d) code = %d", code, se.Code)
		}
		if prev, dup := seen[se.Code]; dup {
			t.Fatalf("codes %d and %d decode to the same variant", prev, code)
		}
		seen[se.Code] = code
		if prev, dup := names[se.Code.String()]; dup {
			t.Fatalf("codes %d and %d share name %q", prev, code, se.Code.String())
		}
		names[se.Code.String()] = code
		if se.Code.Error() == "" || se.Code.Parameter() == "" {
			t.Fatalf("code %d missing message or parameter", code)
		}
	}
	if len(seen) != len(ErrorCodes) {
		t.Fatalf("decoded %d variants, ErrorCodes lists %d", len(seen), len(ErrorCodes))
	}
}

func TestDecodeGroundImpedance(t *testing.T) {
	_, err := DecodeStatus(1013)
	if !errors.Is(err, ErrGroundImpedance) {
		t.Fatalf("1013 should be ErrGroundImpedance, got %v", err)
	}
	for _, other := range ErrorCodes {
		if other != ErrGroundImpedance && errors.Is(err, other) {
			t.Fatalf("1013 also matches %v", other)
		}
	}
	want := "itm status 1013: The imaginary portion of the complex impedance is larger than the real portion"
	if err.Error() != want {
		t.Fatalf("message = %q, want %q", err.Error(), want)
	}
}

func TestDecodeStatusPanicsOnUndocumentedCode(t *testing.T) {
	for _, code := range []int{-1, 2, 999, 1015, 1023, 4242} {
		func() {
			defer func() {
				r := recover()
				cv, ok := r.(*ContractViolation)
				if !ok {
					t.Fatalf("DecodeStatus(%d) recovered %v, want *ContractViolation", code, r)
				}
				if cv.Code != code {
					t.Fatalf("ContractViolation.Code = %d, want %d", cv.Code, code)
				}
			}()
			_, _ = DecodeStatus(code)
		}()
		if IsKnownStatus(code) {
			t.Errorf("IsKnownStatus(%d) = true", code)
		}
	}
}

func TestIsKnownStatus(t *testing.T) {
	for _, code := range []int{0, 1, 1000, 1014, 1016, 1022} {
		if !IsKnownStatus(code) {
			t.Errorf("IsKnownStatus(%d) = false", code)
		}
	}
}

func TestStatusErrorWrapping(t *testing.T) {
	_, inner := DecodeStatus(1009)
	err := errors.Join(errors.New("context"), inner)
	if !errors.Is(err, ErrFrequency) {
		t.Fatalf("wrapped status error lost its code")
	}
	se, ok := AsStatusError(err)
	if !ok || se.Code != ErrFrequency {
		t.Fatalf("AsStatusError = %v, %v", se, ok)
	}
}
