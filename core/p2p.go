package core

import (
	"errors"
	"fmt"

	"github.com/signalsfoundry/terrain-propagation/model"
)

// Real is the set of numeric types that convert to float64 without loss.
type Real interface {
	~float32 | ~float64 | ~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32
}

// hzPerMHz converts caller frequencies (Hz) to the model's MHz.
const hzPerMHz = 1_000_000

var (
	// ErrInvalidEnum is wrapped by InputError when an enumeration field holds
	// an unspecified or out-of-range value.
	ErrInvalidEnum = errors.New("invalid enumeration value")
	// ErrNilOracle is returned when P2P is called without a model.
	ErrNilOracle = errors.New("propagation oracle is nil")
)

// InputError reports a parameter rejected before the model is called.
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Params are the point-to-point inputs in natural units. Heights, spacing
// and elevations are metres; FrequencyHz is hertz; percentages are in
// (0, 100), not fractions.
type Params[T Real] struct {
	TxHeightM   T
	RxHeightM   T
	SpacingM    T
	ElevationsM []T

	Climate        model.Climate
	RefractivityN0 T
	FrequencyHz    T
	Polarization   model.Polarization
	Permittivity   T
	ConductivitySm T
	Variability    model.Variability

	TimePct      T
	LocationPct  T
	SituationPct T
}

// Intermediate carries the decoded diagnostics of an IntermediateOracle.
type Intermediate struct {
	Mode            model.Mode
	DistanceKm      float64
	FreeSpaceLossDB float64
	DeltaHM         float64
}

// Result is a successful prediction.
type Result struct {
	AttenuationDB float64
	Status        Status
	// Intermediate is nil unless the oracle reports diagnostics.
	Intermediate *Intermediate
	// UnknownModeCode holds the mode code when the oracle reported one
	// outside the documented set. Intermediate is nil in that case.
	UnknownModeCode *int
}

// Warning reports whether the model flagged a tolerated out-of-range input.
func (r Result) Warning() bool { return r.Status == StatusSuccessWithWarning }

// OracleInput converts p to the model's units and codes. It is the only
// place where numeric conversion and the Hz to MHz step happen.
func (p Params[T]) OracleInput() (OracleInput, error) {
	climate, ok := p.Climate.Code()
	if !ok {
		return OracleInput{}, &InputError{Field: "climate", Err: fmt.Errorf("%w: %v", ErrInvalidEnum, p.Climate)}
	}
	pol, ok := p.Polarization.Code()
	if !ok {
		return OracleInput{}, &InputError{Field: "polarization", Err: fmt.Errorf("%w: %v", ErrInvalidEnum, p.Polarization)}
	}
	mdvar, ok := p.Variability.Code()
	if !ok {
		return OracleInput{}, &InputError{Field: "variability", Err: fmt.Errorf("%w: %v", ErrInvalidEnum, p.Variability)}
	}

	return OracleInput{
		TxHeightM:      float64(p.TxHeightM),
		RxHeightM:      float64(p.RxHeightM),
		Profile:        EncodeProfile(p.SpacingM, p.ElevationsM),
		Climate:        climate,
		RefractivityN0: float64(p.RefractivityN0),
		FrequencyMHz:   float64(p.FrequencyHz) / hzPerMHz,
		Polarization:   pol,
		Permittivity:   float64(p.Permittivity),
		ConductivitySm: float64(p.ConductivitySm),
		Variability:    mdvar,
		TimePct:        float64(p.TimePct),
		LocationPct:    float64(p.LocationPct),
		SituationPct:   float64(p.SituationPct),
	}, nil
}

// P2P runs one point-to-point prediction. Inputs are converted and checked
// for shape before the oracle is invoked exactly once; its status code is
// decoded by DecodeStatus, which panics with *ContractViolation on codes
// outside the documented set.
func P2P[T Real](oracle PropagationOracle, p Params[T]) (Result, error) {
	if oracle == nil {
		return Result{}, ErrNilOracle
	}
	in, err := p.OracleInput()
	if err != nil {
		return Result{}, err
	}
	return invoke(oracle, in)
}

func invoke(oracle PropagationOracle, in OracleInput) (Result, error) {
	if !in.Profile.wellFormed() {
		return Result{}, &InputError{Field: "profile", Err: errors.New("header does not match sample count")}
	}

	var (
		code  int
		value float64
		ivRaw *IntermediateValues
	)
	if ex, ok := oracle.(IntermediateOracle); ok {
		var iv IntermediateValues
		code, value, iv = ex.PointToPointEx(in)
		ivRaw = &iv
	} else {
		code, value = oracle.PointToPoint(in)
	}

	status, err := DecodeStatus(code)
	if err != nil {
		return Result{}, err
	}

	res := Result{AttenuationDB: value, Status: status}
	if ivRaw != nil {
		// An unknown mode code leaves Intermediate unset rather than
		// guessing a mode; the attenuation itself is unaffected.
		mode, err := model.ModeFromCode(ivRaw.Mode)
		if err != nil {
			code := ivRaw.Mode
			res.UnknownModeCode = &code
			return res, nil
		}
		res.Intermediate = &Intermediate{
			Mode:            mode,
			DistanceKm:      ivRaw.DistanceKm,
			FreeSpaceLossDB: ivRaw.FreeSpaceLossDB,
			DeltaHM:         ivRaw.DeltaHM,
		}
	}
	return res, nil
}
