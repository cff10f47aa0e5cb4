package model

// Polarization is the antenna polarization.
//
// The zero value is PolarizationUnspecified and has no wire code.
type Polarization int

const (
	PolarizationUnspecified Polarization = iota
	PolarizationHorizontal
	PolarizationVertical
)

var allPolarizations = []Polarization{PolarizationHorizontal, PolarizationVertical}

// Code returns the ITM integer code for p. ok is false for unspecified or
// out-of-range values.
func (p Polarization) Code() (code int, ok bool) {
	switch p {
	case PolarizationHorizontal:
		return 0, true
	case PolarizationVertical:
		return 1, true
	default:
		return 0, false
	}
}

// PolarizationFromCode is the inverse of Code.
func PolarizationFromCode(code int) (Polarization, error) {
	switch code {
	case 0:
		return PolarizationHorizontal, nil
	case 1:
		return PolarizationVertical, nil
	default:
		return PolarizationUnspecified, unknownCode("polarization", code)
	}
}

func (p Polarization) String() string {
	switch p {
	case PolarizationHorizontal:
		return "horizontal"
	case PolarizationVertical:
		return "vertical"
	default:
		return "unspecified"
	}
}

// ParsePolarization accepts the String form (case and separators ignored)
// plus the single-letter shorthands "h" and "v".
func ParsePolarization(s string) (Polarization, error) {
	n := normalizeName(s)
	switch n {
	case "h":
		return PolarizationHorizontal, nil
	case "v":
		return PolarizationVertical, nil
	}
	for _, p := range allPolarizations {
		if n == normalizeName(p.String()) {
			return p, nil
		}
	}
	return PolarizationUnspecified, unknownName("polarization", s)
}
