package model

// Variability is the ITM mode of variability (mdvar).
type Variability int

const (
	VariabilityUnspecified Variability = iota
	VariabilitySingleMessage
	VariabilityAccidental
	VariabilityMobile
	VariabilityBroadcast
)

var allVariabilities = []Variability{
	VariabilitySingleMessage,
	VariabilityAccidental,
	VariabilityMobile,
	VariabilityBroadcast,
}

// Code returns the ITM integer code (0..3) for v.
func (v Variability) Code() (code int, ok bool) {
	switch v {
	case VariabilitySingleMessage:
		return 0, true
	case VariabilityAccidental:
		return 1, true
	case VariabilityMobile:
		return 2, true
	case VariabilityBroadcast:
		return 3, true
	default:
		return 0, false
	}
}

// VariabilityFromCode is the inverse of Code.
func VariabilityFromCode(code int) (Variability, error) {
	switch code {
	case 0:
		return VariabilitySingleMessage, nil
	case 1:
		return VariabilityAccidental, nil
	case 2:
		return VariabilityMobile, nil
	case 3:
		return VariabilityBroadcast, nil
	default:
		return VariabilityUnspecified, unknownCode("variability", code)
	}
}

func (v Variability) String() string {
	switch v {
	case VariabilitySingleMessage:
		return "single-message"
	case VariabilityAccidental:
		return "accidental"
	case VariabilityMobile:
		return "mobile"
	case VariabilityBroadcast:
		return "broadcast"
	default:
		return "unspecified"
	}
}

// ParseVariability matches the String form ignoring case and separators.
func ParseVariability(s string) (Variability, error) {
	n := normalizeName(s)
	for _, v := range allVariabilities {
		if n == normalizeName(v.String()) {
			return v, nil
		}
	}
	return VariabilityUnspecified, unknownName("variability", s)
}
