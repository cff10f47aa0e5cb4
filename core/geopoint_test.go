package core

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"testing"
)

func TestParseGeoPoint(t *testing.T) {
	p, err := ParseGeoPoint("37.7749,-122.4194,30")
	if err != nil {
		t.Fatalf("ParseGeoPoint: %v", err)
	}
	want := GeoPoint{Latitude: 37.7749, Longitude: -122.4194, Altitude: 30}
	if p != want {
		t.Fatalf("got %+v, want %+v", p, want)
	}
}

func TestParseGeoPointNoRangeCheck(t *testing.T) {
	p, err := ParseGeoPoint("123.5,400,-7")
	if err != nil {
		t.Fatalf("out-of-range latitude should be accepted: %v", err)
	}
	if p.Latitude != 123.5 || p.Longitude != 400 || p.Altitude != -7 {
		t.Fatalf("got %+v", p)
	}
}

func TestParseGeoPointRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		want := GeoPoint{
			Latitude:  (rng.Float64() - 0.5) * 180,
			Longitude: (rng.Float64() - 0.5) * 360,
			Altitude:  rng.ExpFloat64() * 100,
		}
		got, err := ParseGeoPoint(want.String())
		if err != nil {
			t.Fatalf("ParseGeoPoint(%q): %v", want.String(), err)
		}
		if got != want {
			t.Fatalf("round trip %q: got %+v, want %+v", want.String(), got, want)
		}
	}

	// Values that exercise exponent formatting and signed zero.
	for _, want := range []GeoPoint{
		{Latitude: 1e-300, Longitude: math.Copysign(0, -1), Altitude: math.MaxFloat64},
		{Latitude: -89.99999999999999, Longitude: 179.99999999999997, Altitude: 0},
	} {
		s := formatFloat(want.Latitude) + "," + formatFloat(want.Longitude) + "," + formatFloat(want.Altitude)
		got, err := ParseGeoPoint(s)
		if err != nil {
			t.Fatalf("ParseGeoPoint(%q): %v", s, err)
		}
		if got != want {
			t.Fatalf("round trip %q: got %+v, want %+v", s, got, want)
		}
	}
}

func TestParseGeoPointMissingSeparators(t *testing.T) {
	for _, in := range []string{"", "1", "1.0", "1,2", "1.5 2.5 3.5", "1;2;3"} {
		_, err := ParseGeoPoint(in)
		if !errors.Is(err, ErrMissingSeparator) {
			t.Errorf("ParseGeoPoint(%q) err = %v, want ErrMissingSeparator", in, err)
		}
		var perr *ParseError
		if !errors.As(err, &perr) || perr.Field != "" {
			t.Errorf("ParseGeoPoint(%q) err = %#v, want *ParseError without field", in, err)
		}
	}
}

func TestParseGeoPointBadNumbers(t *testing.T) {
	cases := []struct {
		in    string
		field string
	}{
		{"north,2,3", "lat"},
		{"1,,3", "lon"},
		{"1,2,", "alt"},
		{"1,2,3,4", "alt"}, // extra comma stays in the altitude field
		{" 1,2,3", "lat"},
		{"1,2,3m", "alt"},
		{"0x1p3,2,3", "lat"},
		{"1,-0X10,3", "lon"},
		{"1,2,+0x1.8p1", "alt"},
		{"1,2,1_000", "alt"},
	}
	for _, tc := range cases {
		_, err := ParseGeoPoint(tc.in)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("ParseGeoPoint(%q) err = %v, want *ParseError", tc.in, err)
		}
		if perr.Field != tc.field {
			t.Errorf("ParseGeoPoint(%q) field = %q, want %q", tc.in, perr.Field, tc.field)
		}
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) {
			t.Errorf("ParseGeoPoint(%q) should wrap a *strconv.NumError, got %v", tc.in, err)
		}
	}
}

func TestParseGeoPointOverflowIsInfinite(t *testing.T) {
	p, err := ParseGeoPoint("1e400,-1e400,1e-400")
	if err != nil {
		t.Fatalf("ParseGeoPoint: %v", err)
	}
	if !math.IsInf(p.Latitude, 1) || !math.IsInf(p.Longitude, -1) || p.Altitude != 0 {
		t.Fatalf("got %+v, want +Inf,-Inf,0", p)
	}
	if p, err := ParseGeoPoint("inf,-Infinity,0"); err != nil || !math.IsInf(p.Latitude, 1) || !math.IsInf(p.Longitude, -1) {
		t.Fatalf("ParseGeoPoint(inf) = %+v, %v", p, err)
	}
}

func TestGeoPointFlag(t *testing.T) {
	var f GeoPointFlag
	if f.String() != "" {
		t.Fatalf("unset flag String() = %q", f.String())
	}
	if err := f.Set("10,20,4"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !f.IsSet || f.Point != (GeoPoint{Latitude: 10, Longitude: 20, Altitude: 4}) {
		t.Fatalf("flag = %+v", f)
	}
	if err := f.Set("bogus"); err == nil {
		t.Fatal("expected error")
	}
}
