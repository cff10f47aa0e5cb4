package model

// Climate is the ITM radio climate.
type Climate int

const (
	ClimateUnspecified Climate = iota
	ClimateEquatorial
	ClimateContinentalSubtropical
	ClimateMaritimeSubtropical
	ClimateDesert
	ClimateContinentalTemperate
	ClimateMaritimeTemperateOverLand
	ClimateMaritimeTemperateOverSea
)

var allClimates = []Climate{
	ClimateEquatorial,
	ClimateContinentalSubtropical,
	ClimateMaritimeSubtropical,
	ClimateDesert,
	ClimateContinentalTemperate,
	ClimateMaritimeTemperateOverLand,
	ClimateMaritimeTemperateOverSea,
}

// Code returns the ITM integer code (1..7) for c.
func (c Climate) Code() (code int, ok bool) {
	switch c {
	case ClimateEquatorial:
		return 1, true
	case ClimateContinentalSubtropical:
		return 2, true
	case ClimateMaritimeSubtropical:
		return 3, true
	case ClimateDesert:
		return 4, true
	case ClimateContinentalTemperate:
		return 5, true
	case ClimateMaritimeTemperateOverLand:
		return 6, true
	case ClimateMaritimeTemperateOverSea:
		return 7, true
	default:
		return 0, false
	}
}

// ClimateFromCode is the inverse of Code.
func ClimateFromCode(code int) (Climate, error) {
	switch code {
	case 1:
		return ClimateEquatorial, nil
	case 2:
		return ClimateContinentalSubtropical, nil
	case 3:
		return ClimateMaritimeSubtropical, nil
	case 4:
		return ClimateDesert, nil
	case 5:
		return ClimateContinentalTemperate, nil
	case 6:
		return ClimateMaritimeTemperateOverLand, nil
	case 7:
		return ClimateMaritimeTemperateOverSea, nil
	default:
		return ClimateUnspecified, unknownCode("climate", code)
	}
}

func (c Climate) String() string {
	switch c {
	case ClimateEquatorial:
		return "equatorial"
	case ClimateContinentalSubtropical:
		return "continental-subtropical"
	case ClimateMaritimeSubtropical:
		return "maritime-subtropical"
	case ClimateDesert:
		return "desert"
	case ClimateContinentalTemperate:
		return "continental-temperate"
	case ClimateMaritimeTemperateOverLand:
		return "maritime-temperate-over-land"
	case ClimateMaritimeTemperateOverSea:
		return "maritime-temperate-over-sea"
	default:
		return "unspecified"
	}
}

// ParseClimate matches the String form ignoring case and separators.
func ParseClimate(s string) (Climate, error) {
	n := normalizeName(s)
	for _, c := range allClimates {
		if n == normalizeName(c.String()) {
			return c, nil
		}
	}
	return ClimateUnspecified, unknownName("climate", s)
}
