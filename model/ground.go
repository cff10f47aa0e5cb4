package model

// GroundPreset pairs typical electrical constants for a ground type.
// The values are advisory; nothing enforces them.
type GroundPreset struct {
	Name string
	// ConductivitySm is sigma in siemens per metre.
	ConductivitySm float64
	// Permittivity is the relative permittivity epsilon.
	Permittivity float64
}

// GroundPresets lists the commonly quoted ground constants.
var GroundPresets = []GroundPreset{
	{Name: "poor", ConductivitySm: 0.001, Permittivity: 4},
	{Name: "average", ConductivitySm: 0.005, Permittivity: 15},
	{Name: "good", ConductivitySm: 0.02, Permittivity: 25},
	{Name: "fresh-water", ConductivitySm: 0.01, Permittivity: 25},
	{Name: "sea-water", ConductivitySm: 5.0, Permittivity: 25},
}

// GroundPresetByName looks up a preset, ignoring case and separators.
func GroundPresetByName(name string) (GroundPreset, error) {
	n := normalizeName(name)
	for _, g := range GroundPresets {
		if n == normalizeName(g.Name) {
			return g, nil
		}
	}
	return GroundPreset{}, unknownName("ground preset", name)
}
