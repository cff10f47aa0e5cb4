package core

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// DefaultMaxStepM is the default upper bound on profile sample spacing.
const DefaultMaxStepM = 90.0

// MaxProfileSamples bounds the number of samples BuildProfile will take.
const MaxProfileSamples = 1 << 20

var (
	// ErrOutsideGrid is returned by GridElevation for points it does not cover.
	ErrOutsideGrid = errors.New("point outside elevation grid")
	// ErrBadStep is returned by BuildProfile for a maximum step that is not
	// a positive finite number.
	ErrBadStep = errors.New("max step must be positive and finite")
	// ErrTooManySamples is returned by BuildProfile when the path would need
	// more than MaxProfileSamples samples.
	ErrTooManySamples = errors.New("too many profile samples")
)

// ElevationSource returns the ground elevation (metres) at a location.
// Tile storage lives behind this interface.
type ElevationSource interface {
	Elevation(ctx context.Context, lat, lon float64) (float64, error)
}

// ElevationFunc adapts a function to ElevationSource.
type ElevationFunc func(ctx context.Context, lat, lon float64) (float64, error)

func (f ElevationFunc) Elevation(ctx context.Context, lat, lon float64) (float64, error) {
	return f(ctx, lat, lon)
}

// GridElevation is a regular latitude/longitude grid of elevations with
// bilinear interpolation. Rows run south to north from MinLat, columns west
// to east from MinLon.
type GridElevation struct {
	MinLat, MinLon float64
	StepDeg        float64
	Rows, Cols     int
	// Heights holds Rows*Cols values in row-major order.
	Heights []float64
}

// Validate checks the grid dimensions.
func (g *GridElevation) Validate() error {
	switch {
	case g.Rows < 2 || g.Cols < 2:
		return fmt.Errorf("elevation grid must be at least 2x2, got %dx%d", g.Rows, g.Cols)
	case g.StepDeg <= 0:
		return fmt.Errorf("elevation grid step must be positive, got %v", g.StepDeg)
	case len(g.Heights) != g.Rows*g.Cols:
		return fmt.Errorf("elevation grid has %d heights, want %d", len(g.Heights), g.Rows*g.Cols)
	}
	return nil
}

func (g *GridElevation) at(r, c int) float64 {
	return g.Heights[r*g.Cols+c]
}

// Elevation implements ElevationSource.
func (g *GridElevation) Elevation(_ context.Context, lat, lon float64) (float64, error) {
	y := (lat - g.MinLat) / g.StepDeg
	x := (lon - g.MinLon) / g.StepDeg
	const eps = 1e-9
	if y < -eps || x < -eps || y > float64(g.Rows-1)+eps || x > float64(g.Cols-1)+eps {
		return 0, fmt.Errorf("%w: %v,%v", ErrOutsideGrid, lat, lon)
	}
	y = math.Min(math.Max(y, 0), float64(g.Rows-1))
	x = math.Min(math.Max(x, 0), float64(g.Cols-1))

	r0 := int(math.Floor(y))
	c0 := int(math.Floor(x))
	r1 := min(r0+1, g.Rows-1)
	c1 := min(c0+1, g.Cols-1)
	fy := y - float64(r0)
	fx := x - float64(c0)

	south := g.at(r0, c0)*(1-fx) + g.at(r0, c1)*fx
	north := g.at(r1, c0)*(1-fx) + g.at(r1, c1)*fx
	return south*(1-fy) + north*fy, nil
}

// BuildProfile samples src along the great circle from start to end. The
// path is split into ceil(distance/maxStep) equal steps, giving one more
// sample than steps, so spacing never exceeds maxStep. maxStep must be a
// positive finite number and the result is capped at MaxProfileSamples.
func BuildProfile(ctx context.Context, src ElevationSource, start, end GeoPoint, maxStep float64) (TerrainProfile, error) {
	if !(maxStep > 0) || math.IsInf(maxStep, 1) {
		return TerrainProfile{}, fmt.Errorf("%w: %v", ErrBadStep, maxStep)
	}
	distance := GreatCircleDistance(start, end)
	// Compare as float so the quotient is checked before it can overflow int.
	quotient := math.Ceil(distance / maxStep)
	if math.IsNaN(quotient) || quotient+1 > MaxProfileSamples {
		return TerrainProfile{}, fmt.Errorf("%w: %.0f steps of %v m over %.1f m, limit %d",
			ErrTooManySamples, quotient, maxStep, distance, MaxProfileSamples)
	}
	steps := max(int(quotient), 1)

	elevations := make([]float64, steps+1)
	for i := range elevations {
		if err := ctx.Err(); err != nil {
			return TerrainProfile{}, err
		}
		p := Interpolate(start, end, float64(i)/float64(steps))
		h, err := src.Elevation(ctx, p.Latitude, p.Longitude)
		if err != nil {
			return TerrainProfile{}, fmt.Errorf("sample %d at %v,%v: %w", i, p.Latitude, p.Longitude, err)
		}
		elevations[i] = h
	}

	return TerrainProfile{
		Spacing:    distance / float64(steps),
		Elevations: elevations,
	}, nil
}
