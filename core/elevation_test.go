package core

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
)

func testGrid() *GridElevation {
	// 3x3 grid, 0.01° cells, elevation rising west to east.
	return &GridElevation{
		MinLat: 37, MinLon: -122, StepDeg: 0.01,
		Rows: 3, Cols: 3,
		Heights: []float64{
			10, 20, 30,
			10, 20, 30,
			10, 20, 30,
		},
	}
}

func TestGridElevationBilinear(t *testing.T) {
	g := testGrid()
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	cases := []struct {
		lat, lon, want float64
	}{
		{37, -122, 10},
		{37.02, -121.98, 30},
		{37.01, -121.995, 15},
		{37.005, -121.985, 25},
	}
	for _, tc := range cases {
		got, err := g.Elevation(context.Background(), tc.lat, tc.lon)
		if err != nil {
			t.Fatalf("Elevation(%v,%v): %v", tc.lat, tc.lon, err)
		}
		if !almostEqual(got, tc.want, 1e-6) {
			t.Errorf("Elevation(%v,%v) = %v, want %v", tc.lat, tc.lon, got, tc.want)
		}
	}
}

func TestGridElevationOutside(t *testing.T) {
	g := testGrid()
	if _, err := g.Elevation(context.Background(), 36.9, -122); !errors.Is(err, ErrOutsideGrid) {
		t.Fatalf("err = %v, want ErrOutsideGrid", err)
	}
}

func TestGridValidate(t *testing.T) {
	bad := []*GridElevation{
		{Rows: 1, Cols: 3, StepDeg: 1, Heights: make([]float64, 3)},
		{Rows: 2, Cols: 2, StepDeg: 0, Heights: make([]float64, 4)},
		{Rows: 2, Cols: 2, StepDeg: 1, Heights: make([]float64, 3)},
	}
	for i, g := range bad {
		if err := g.Validate(); err == nil {
			t.Errorf("grid %d should be invalid", i)
		}
	}
}

func TestBuildProfileSpacing(t *testing.T) {
	start := GeoPoint{Latitude: 37.001, Longitude: -121.999, Altitude: 4}
	end := GeoPoint{Latitude: 37.019, Longitude: -121.981, Altitude: 30}

	profile, err := BuildProfile(context.Background(), testGrid(), start, end, DefaultMaxStepM)
	if err != nil {
		t.Fatalf("BuildProfile: %v", err)
	}
	distance := GreatCircleDistance(start, end)
	wantSteps := int(math.Ceil(distance / DefaultMaxStepM))
	if len(profile.Elevations) != wantSteps+1 {
		t.Fatalf("samples = %d, want %d", len(profile.Elevations), wantSteps+1)
	}
	if profile.Spacing > DefaultMaxStepM {
		t.Fatalf("spacing %v exceeds max step", profile.Spacing)
	}
	if !almostEqual(profile.Distance(), distance, 1e-6) {
		t.Fatalf("spacing*(N-1) = %v, want %v", profile.Distance(), distance)
	}
	// Terrain rises eastward, so the profile must be non-decreasing.
	for i := 1; i < len(profile.Elevations); i++ {
		if profile.Elevations[i] < profile.Elevations[i-1]-1e-9 {
			t.Fatalf("profile not in path order at %d: %v", i, profile.Elevations)
		}
	}
}

func TestBuildProfileShortPath(t *testing.T) {
	p := GeoPoint{Latitude: 37.01, Longitude: -121.99}
	profile, err := BuildProfile(context.Background(), testGrid(), p, p, 90)
	if err != nil {
		t.Fatalf("BuildProfile: %v", err)
	}
	if len(profile.Elevations) != 2 || profile.Spacing != 0 {
		t.Fatalf("degenerate path = %+v", profile)
	}
}

func TestBuildProfileErrors(t *testing.T) {
	a := GeoPoint{Latitude: 37.001, Longitude: -121.999}
	b := GeoPoint{Latitude: 37.5, Longitude: -121.5}

	for _, step := range []float64{0, -90, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := BuildProfile(context.Background(), testGrid(), a, b, step); !errors.Is(err, ErrBadStep) {
			t.Fatalf("maxStep %v: err = %v, want ErrBadStep", step, err)
		}
	}
	if _, err := BuildProfile(context.Background(), testGrid(), a, b, 90); !errors.Is(err, ErrOutsideGrid) {
		t.Fatalf("err = %v, want ErrOutsideGrid", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := BuildProfile(ctx, testGrid(), a, a, 90); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestBuildProfileSampleLimit(t *testing.T) {
	calls := 0
	src := ElevationFunc(func(context.Context, float64, float64) (float64, error) {
		calls++
		return 0, nil
	})
	a := GeoPoint{Latitude: 0, Longitude: 0}
	b := GeoPoint{Latitude: 0.01, Longitude: 0}

	for _, step := range []float64{1e-15, math.SmallestNonzeroFloat64, GreatCircleDistance(a, b) / MaxProfileSamples} {
		_, err := BuildProfile(context.Background(), src, a, b, step)
		if !errors.Is(err, ErrTooManySamples) {
			t.Fatalf("maxStep %v: err = %v, want ErrTooManySamples", step, err)
		}
	}
	if calls != 0 {
		t.Fatalf("elevation source called %d times for rejected paths", calls)
	}

	// Just under the limit still samples the whole path.
	step := GreatCircleDistance(a, b) / (MaxProfileSamples - 2)
	profile, err := BuildProfile(context.Background(), src, a, b, step)
	if err != nil {
		t.Fatalf("BuildProfile at limit: %v", err)
	}
	if n := len(profile.Elevations); n > MaxProfileSamples || n < 2 {
		t.Fatalf("samples = %d", n)
	}
}

func TestElevationFunc(t *testing.T) {
	src := ElevationFunc(func(_ context.Context, lat, lon float64) (float64, error) {
		return lat + lon, nil
	})
	profile, err := BuildProfile(context.Background(), src,
		GeoPoint{Latitude: 1, Longitude: 1}, GeoPoint{Latitude: 1.001, Longitude: 1}, 50)
	if err != nil {
		t.Fatalf("BuildProfile: %v", err)
	}
	if !almostEqual(profile.Elevations[0], 2, 1e-9) {
		t.Fatalf("first sample = %v", profile.Elevations[0])
	}
}

func TestLoadTerrainProfile(t *testing.T) {
	profile, hasSpacing, err := LoadTerrainProfile(strings.NewReader(`{"spacing_m": 86.97297, "elevations_m": [96, 84, 65]}`))
	if err != nil {
		t.Fatalf("LoadTerrainProfile: %v", err)
	}
	if !hasSpacing || profile.Spacing != 86.97297 || len(profile.Elevations) != 3 {
		t.Fatalf("profile = %+v, hasSpacing = %v", profile, hasSpacing)
	}

	profile, hasSpacing, err = LoadTerrainProfile(strings.NewReader(`{"elevations_m": [1, 2]}`))
	if err != nil || hasSpacing || profile.Spacing != 0 {
		t.Fatalf("profile without spacing = %+v, %v, %v", profile, hasSpacing, err)
	}

	for _, in := range []string{`{"elevations_m": []}`, `{"spacing": 3, "elevations_m": [1]}`, `not json`} {
		if _, _, err := LoadTerrainProfile(strings.NewReader(in)); err == nil {
			t.Errorf("LoadTerrainProfile(%q) should fail", in)
		}
	}
}

func TestSpacingFor(t *testing.T) {
	a := GeoPoint{Latitude: 0, Longitude: 0}
	b := GeoPoint{Latitude: 0, Longitude: 0.01}
	if got, want := SpacingFor(a, b, 11), GreatCircleDistance(a, b)/10; got != want {
		t.Fatalf("SpacingFor = %v, want %v", got, want)
	}
	if SpacingFor(a, b, 1) != 0 {
		t.Fatalf("SpacingFor with one sample should be zero")
	}
}

func TestLoadElevationGrid(t *testing.T) {
	in := `{"min_lat": 37, "min_lon": -122, "step_deg": 0.01, "rows": 2, "cols": 2, "heights_m": [1, 2, 3, 4]}`
	g, err := LoadElevationGrid(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadElevationGrid: %v", err)
	}
	if g.Rows != 2 || g.Cols != 2 || g.Heights[3] != 4 {
		t.Fatalf("grid = %+v", g)
	}
	if _, err := LoadElevationGrid(strings.NewReader(`{"rows": 2, "cols": 2, "step_deg": 1, "heights_m": [1]}`)); err == nil {
		t.Fatal("expected validation error")
	}
	_, err = LoadElevationGrid(strings.NewReader(`{"min_lat": 37, "min_lon": -122, "step_deg": 0.01, "rows": 2, "cols": 2, "heights": [1, 2, 3, 4]}`))
	if err == nil || !strings.Contains(err.Error(), `unknown field "heights"`) {
		t.Fatalf("misspelled key: err = %v, want unknown field", err)
	}
}
