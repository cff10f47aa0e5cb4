package core

// TerrainProfile is a sequence of ground elevations (metres) sampled at a
// fixed spacing (metres) along the path from transmitter to receiver.
//
// The model requires Spacing > 0 and at least two samples; those limits are
// enforced by the model itself and surface as status errors.
type TerrainProfile struct {
	Spacing    float64
	Elevations []float64
}

// Encode returns the profile in the model's wire layout.
func (p TerrainProfile) Encode() EncodedProfile {
	return EncodeProfile(p.Spacing, p.Elevations)
}

// Distance returns the path length implied by the profile, in metres.
func (p TerrainProfile) Distance() float64 {
	if len(p.Elevations) < 2 {
		return 0
	}
	return p.Spacing * float64(len(p.Elevations)-1)
}

// EncodedProfile is the flat array handed to the model:
//
//	[N, spacing, e_0, e_1, ..., e_{N-1}]
//
// The two header values are part of the wire contract.
type EncodedProfile []float64

// EncodeProfile lays out spacing and samples as an EncodedProfile of length
// len(elevations)+2. Samples keep their order and the input slice is not
// retained.
func EncodeProfile[T Real](spacing T, elevations []T) EncodedProfile {
	out := make(EncodedProfile, len(elevations)+2)
	out[0] = float64(len(elevations))
	out[1] = float64(spacing)
	for i, e := range elevations {
		out[i+2] = float64(e)
	}
	return out
}

// Count returns the sample count stored in the header.
func (e EncodedProfile) Count() int {
	if len(e) == 0 {
		return 0
	}
	return int(e[0])
}

// Spacing returns the sample spacing stored in the header.
func (e EncodedProfile) Spacing() float64 {
	if len(e) < 2 {
		return 0
	}
	return e[1]
}

// Samples returns the elevation samples without the header. The returned
// slice aliases e.
func (e EncodedProfile) Samples() []float64 {
	if len(e) < 2 {
		return nil
	}
	return e[2:]
}

// wellFormed reports whether the header agrees with the slice length. Only
// well-formed profiles may cross into the native model, which trusts the
// header to bound its reads.
func (e EncodedProfile) wellFormed() bool {
	return len(e) >= 2 && e[0] == float64(len(e)-2)
}
