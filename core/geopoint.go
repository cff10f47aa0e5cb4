package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMissingSeparator is wrapped by ParseError when the input lacks one of
// the two commas of "lat,lon,alt".
var ErrMissingSeparator = errors.New("not a valid lat,lon,alt")

// GeoPoint is a terminal location. Altitude is metres above ground, i.e.
// the antenna height at that point.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
}

// ParseError reports a malformed "lat,lon,alt" string.
type ParseError struct {
	Input string
	// Field is "lat", "lon", "alt" or "" when the separators are missing.
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("parse %q: %s: %v", e.Input, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseGeoPoint parses "<lat>,<lon>,<alt>". The first comma ends the
// latitude and the first comma after it ends the longitude; whatever is
// left is the altitude. No range checks are applied.
//
// Each field is a decimal float. Hexadecimal literals are rejected and
// magnitudes beyond float64 parse as signed infinity.
func ParseGeoPoint(s string) (GeoPoint, error) {
	idx := strings.IndexByte(s, ',')
	if idx < 0 {
		return GeoPoint{}, &ParseError{Input: s, Err: ErrMissingSeparator}
	}
	latStr, rest := s[:idx], s[idx+1:]

	idx = strings.IndexByte(rest, ',')
	if idx < 0 {
		return GeoPoint{}, &ParseError{Input: s, Err: ErrMissingSeparator}
	}
	lonStr, altStr := rest[:idx], rest[idx+1:]

	lat, err := parseDecimal(latStr)
	if err != nil {
		return GeoPoint{}, &ParseError{Input: s, Field: "lat", Err: err}
	}
	lon, err := parseDecimal(lonStr)
	if err != nil {
		return GeoPoint{}, &ParseError{Input: s, Field: "lon", Err: err}
	}
	alt, err := parseDecimal(altStr)
	if err != nil {
		return GeoPoint{}, &ParseError{Input: s, Field: "alt", Err: err}
	}
	return GeoPoint{Latitude: lat, Longitude: lon, Altitude: alt}, nil
}

func parseDecimal(s string) (float64, error) {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	v, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		// v is already ±Inf (or ±0 on underflow).
		return v, nil
	}
	return v, err
}

// String formats p so that ParseGeoPoint(p.String()) == p.
func (p GeoPoint) String() string {
	return formatFloat(p.Latitude) + "," + formatFloat(p.Longitude) + "," + formatFloat(p.Altitude)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// GeoPointFlag adapts GeoPoint to flag.Value.
type GeoPointFlag struct {
	Point GeoPoint
	IsSet bool
}

func (f *GeoPointFlag) String() string {
	if f == nil || !f.IsSet {
		return ""
	}
	return f.Point.String()
}

func (f *GeoPointFlag) Set(s string) error {
	p, err := ParseGeoPoint(s)
	if err != nil {
		return err
	}
	f.Point = p
	f.IsSet = true
	return nil
}
