package model

// SitingCriteria describes how carefully an antenna was placed. Only the
// area-prediction mode of ITM consumes it; the point-to-point mode reports
// siting codes in its error taxonomy, so the type is kept alongside.
type SitingCriteria int

const (
	SitingUnspecified SitingCriteria = iota
	SitingRandom
	SitingCareful
	SitingVeryCareful
)

var allSitingCriteria = []SitingCriteria{SitingRandom, SitingCareful, SitingVeryCareful}

// Code returns the ITM integer code (0..2) for s.
func (s SitingCriteria) Code() (code int, ok bool) {
	switch s {
	case SitingRandom:
		return 0, true
	case SitingCareful:
		return 1, true
	case SitingVeryCareful:
		return 2, true
	default:
		return 0, false
	}
}

// SitingCriteriaFromCode is the inverse of Code.
func SitingCriteriaFromCode(code int) (SitingCriteria, error) {
	switch code {
	case 0:
		return SitingRandom, nil
	case 1:
		return SitingCareful, nil
	case 2:
		return SitingVeryCareful, nil
	default:
		return SitingUnspecified, unknownCode("siting criteria", code)
	}
}

func (s SitingCriteria) String() string {
	switch s {
	case SitingRandom:
		return "random"
	case SitingCareful:
		return "careful"
	case SitingVeryCareful:
		return "very-careful"
	default:
		return "unspecified"
	}
}

// ParseSitingCriteria matches the String form ignoring case and separators.
func ParseSitingCriteria(str string) (SitingCriteria, error) {
	n := normalizeName(str)
	for _, s := range allSitingCriteria {
		if n == normalizeName(s.String()) {
			return s, nil
		}
	}
	return SitingUnspecified, unknownName("siting criteria", str)
}
