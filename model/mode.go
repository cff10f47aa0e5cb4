package model

// Mode is the propagation mode reported by the model. Unlike the input
// enumerations, NotSet is a real member with code 0.
type Mode int

const (
	ModeNotSet Mode = iota
	ModeLineOfSight
	ModeDiffraction
	ModeTroposcatter
)

// Code returns the ITM integer code for m.
func (m Mode) Code() (code int, ok bool) {
	switch m {
	case ModeNotSet:
		return 0, true
	case ModeLineOfSight:
		return 1, true
	case ModeDiffraction:
		return 2, true
	case ModeTroposcatter:
		return 3, true
	default:
		return 0, false
	}
}

// ModeFromCode is the inverse of Code.
func ModeFromCode(code int) (Mode, error) {
	switch code {
	case 0:
		return ModeNotSet, nil
	case 1:
		return ModeLineOfSight, nil
	case 2:
		return ModeDiffraction, nil
	case 3:
		return ModeTroposcatter, nil
	default:
		return ModeNotSet, unknownCode("mode", code)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeNotSet:
		return "not-set"
	case ModeLineOfSight:
		return "line-of-sight"
	case ModeDiffraction:
		return "diffraction"
	case ModeTroposcatter:
		return "troposcatter"
	default:
		return "invalid"
	}
}
