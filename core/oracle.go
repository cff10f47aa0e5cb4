package core

// OracleInput is everything the native model receives, already converted to
// its units and integer codes. Values of this type are only built by P2P.
type OracleInput struct {
	TxHeightM      float64
	RxHeightM      float64
	Profile        EncodedProfile
	Climate        int
	RefractivityN0 float64
	FrequencyMHz   float64
	Polarization   int
	Permittivity   float64
	ConductivitySm float64
	Variability    int
	TimePct        float64
	LocationPct    float64
	SituationPct   float64
}

// PropagationOracle is the point-to-point model. Implementations return the
// raw status code and attenuation; they never interpret the code.
type PropagationOracle interface {
	PointToPoint(in OracleInput) (code int, attenuationDB float64)
}

// IntermediateValues are diagnostics some model builds expose alongside the
// attenuation. Mode is the raw integer mode code.
type IntermediateValues struct {
	Mode            int
	DistanceKm      float64
	FreeSpaceLossDB float64
	DeltaHM         float64
}

// IntermediateOracle is implemented by oracles that can also report
// IntermediateValues. P2P prefers it when available.
type IntermediateOracle interface {
	PropagationOracle
	PointToPointEx(in OracleInput) (code int, attenuationDB float64, iv IntermediateValues)
}

// OracleFunc adapts a plain function to PropagationOracle.
type OracleFunc func(in OracleInput) (int, float64)

func (f OracleFunc) PointToPoint(in OracleInput) (int, float64) { return f(in) }
