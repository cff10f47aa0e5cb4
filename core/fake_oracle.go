package core

import "sync"

// FakeOracle is a deterministic PropagationOracle for tests. It returns a
// fixed status code and attenuation and records every input it receives.
// Wrap it in FakeIntermediateOracle to exercise the diagnostics path.
type FakeOracle struct {
	mu sync.Mutex

	Code          int
	AttenuationDB float64

	calls []OracleInput
}

// NewFakeOracle returns a fake that answers every call with (code, db).
func NewFakeOracle(code int, db float64) *FakeOracle {
	return &FakeOracle{Code: code, AttenuationDB: db}
}

// PointToPoint records in and returns the configured pair.
func (f *FakeOracle) PointToPoint(in OracleInput) (int, float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, cloneInput(in))
	return f.Code, f.AttenuationDB
}

// Calls returns a copy of the recorded inputs in call order.
func (f *FakeOracle) Calls() []OracleInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]OracleInput, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount returns how many times the fake was invoked.
func (f *FakeOracle) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// FakeIntermediateOracle extends FakeOracle with fixed diagnostics.
type FakeIntermediateOracle struct {
	*FakeOracle
	Values IntermediateValues
}

// PointToPointEx records in and returns the configured values.
func (f *FakeIntermediateOracle) PointToPointEx(in OracleInput) (int, float64, IntermediateValues) {
	code, db := f.FakeOracle.PointToPoint(in)
	return code, db, f.Values
}

func cloneInput(in OracleInput) OracleInput {
	in.Profile = append(EncodedProfile(nil), in.Profile...)
	return in
}
