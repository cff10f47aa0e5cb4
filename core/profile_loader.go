package core

import (
	"encoding/json"
	"fmt"
	"io"
)

// internal JSON shapes, unexported so the file formats can evolve.
type terrainProfileJSON struct {
	SpacingM    *float64  `json:"spacing_m"`
	ElevationsM []float64 `json:"elevations_m"`
}

type elevationGridJSON struct {
	MinLat  float64   `json:"min_lat"`
	MinLon  float64   `json:"min_lon"`
	StepDeg float64   `json:"step_deg"`
	Rows    int       `json:"rows"`
	Cols    int       `json:"cols"`
	Heights []float64 `json:"heights_m"`
}

// LoadTerrainProfile reads {"spacing_m": ..., "elevations_m": [...]}.
//
// spacing_m may be omitted; the returned profile then has Spacing 0 and the
// caller is expected to derive it from the path (see SpacingFor). Sample
// plausibility is left to the model.
func LoadTerrainProfile(r io.Reader) (TerrainProfile, bool, error) {
	var payload terrainProfileJSON
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return TerrainProfile{}, false, fmt.Errorf("LoadTerrainProfile: decode failed: %w", err)
	}
	if len(payload.ElevationsM) == 0 {
		return TerrainProfile{}, false, fmt.Errorf("LoadTerrainProfile: elevations_m is empty")
	}

	profile := TerrainProfile{Elevations: payload.ElevationsM}
	if payload.SpacingM == nil {
		return profile, false, nil
	}
	profile.Spacing = *payload.SpacingM
	return profile, true, nil
}

// SpacingFor returns the uniform spacing that stretches n samples over the
// great-circle path between start and end.
func SpacingFor(start, end GeoPoint, n int) float64 {
	if n < 2 {
		return 0
	}
	return GreatCircleDistance(start, end) / float64(n-1)
}

// LoadElevationGrid reads a GridElevation from JSON and validates it.
func LoadElevationGrid(r io.Reader) (*GridElevation, error) {
	var payload elevationGridJSON
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("LoadElevationGrid: decode failed: %w", err)
	}
	grid := &GridElevation{
		MinLat:  payload.MinLat,
		MinLon:  payload.MinLon,
		StepDeg: payload.StepDeg,
		Rows:    payload.Rows,
		Cols:    payload.Cols,
		Heights: payload.Heights,
	}
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("LoadElevationGrid: %w", err)
	}
	return grid, nil
}
