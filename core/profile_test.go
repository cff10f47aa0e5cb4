package core

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeProfileLayout(t *testing.T) {
	got := EncodeProfile(86.97297, []float64{96, 84, 65, 46})
	want := EncodedProfile{4, 86.97297, 96, 84, 65, 46}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("EncodeProfile mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeProfileProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		n := rng.Intn(600)
		spacing := rng.Float64()*250 + 0.001
		samples := make([]float64, n)
		for j := range samples {
			samples[j] = rng.NormFloat64() * 300
		}

		enc := EncodeProfile(spacing, samples)
		if len(enc) != n+2 {
			t.Fatalf("len = %d, want %d", len(enc), n+2)
		}
		if enc[0] != float64(n) || enc.Count() != n {
			t.Fatalf("count header = %v, want %d", enc[0], n)
		}
		if enc[1] != spacing || enc.Spacing() != spacing {
			t.Fatalf("spacing header = %v, want %v", enc[1], spacing)
		}
		if diff := cmp.Diff(samples, []float64(enc[2:])); diff != "" {
			t.Fatalf("samples reordered or altered (-want +got):\n%s", diff)
		}
		if !enc.wellFormed() {
			t.Fatalf("encoded profile not well formed")
		}
	}
}

func TestEncodeProfileEmpty(t *testing.T) {
	enc := EncodeProfile(30.0, nil)
	if diff := cmp.Diff(EncodedProfile{0, 30}, enc); diff != "" {
		t.Fatalf("empty profile (-want +got):\n%s", diff)
	}
	if len(enc.Samples()) != 0 {
		t.Fatalf("Samples() = %v, want empty", enc.Samples())
	}
}

func TestEncodeProfileDoesNotAlias(t *testing.T) {
	samples := []float64{1, 2, 3}
	enc := EncodeProfile(10.0, samples)
	samples[0] = 99
	if enc[2] != 1 {
		t.Fatalf("encoded profile aliases caller slice")
	}
}

func TestEncodeProfileConvertsPrecision(t *testing.T) {
	enc := EncodeProfile(float32(12.5), []float32{1.25, -3.5})
	if diff := cmp.Diff(EncodedProfile{2, 12.5, 1.25, -3.5}, enc); diff != "" {
		t.Fatalf("float32 profile (-want +got):\n%s", diff)
	}
	ints := EncodeProfile(int16(30), []int16{100, 120, 95})
	if diff := cmp.Diff(EncodedProfile{3, 30, 100, 120, 95}, ints); diff != "" {
		t.Fatalf("int16 profile (-want +got):\n%s", diff)
	}
}

func TestTerrainProfileDistance(t *testing.T) {
	spacing := 86.97297
	p := TerrainProfile{Spacing: spacing, Elevations: make([]float64, 27)}
	if got, want := p.Distance(), spacing*26; got != want {
		t.Fatalf("Distance() = %v, want %v", got, want)
	}
	if (TerrainProfile{Spacing: 10, Elevations: []float64{5}}).Distance() != 0 {
		t.Fatalf("single-sample profile should have zero distance")
	}
}

func TestWellFormedRejectsBadHeader(t *testing.T) {
	for _, e := range []EncodedProfile{nil, {1}, {3, 10, 1, 2}, {0.5, 10}} {
		if e.wellFormed() {
			t.Errorf("%v should not be well formed", e)
		}
	}
}
