package core

import (
	"errors"
	"fmt"
)

// Status is the non-error outcome of a model invocation.
type Status int

const (
	// StatusSuccess is a clean result (code 0).
	StatusSuccess Status = iota
	// StatusSuccessWithWarning means an input was outside the model's
	// nominal range but the computation proceeded (code 1). The attenuation
	// is still meaningful.
	StatusSuccessWithWarning
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusSuccessWithWarning:
		return "warning"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ErrorCode enumerates the documented validation failures of the model.
// Each value is its own wire code and implements error, so
//
//	errors.Is(err, core.ErrGroundImpedance)
//
// matches a *StatusError carrying code 1013.
type ErrorCode int

const (
	ErrTxTerminalHeight         ErrorCode = 1000
	ErrRxTerminalHeight         ErrorCode = 1001
	ErrInvalidRadioClimate      ErrorCode = 1002
	ErrInvalidTime              ErrorCode = 1003
	ErrInvalidLocation          ErrorCode = 1004
	ErrInvalidSituation         ErrorCode = 1005
	ErrInvalidConfidence        ErrorCode = 1006
	ErrInvalidReliability       ErrorCode = 1007
	ErrRefractivity             ErrorCode = 1008
	ErrFrequency                ErrorCode = 1009
	ErrPolarization             ErrorCode = 1010
	ErrEpsilon                  ErrorCode = 1011
	ErrSigma                    ErrorCode = 1012
	ErrGroundImpedance          ErrorCode = 1013
	ErrMdvar                    ErrorCode = 1014
	ErrEffectiveEarth           ErrorCode = 1016
	ErrPathDistance             ErrorCode = 1017
	ErrDeltaH                   ErrorCode = 1018
	ErrTxSitingCriteria         ErrorCode = 1019
	ErrRxSitingCriteria         ErrorCode = 1020
	ErrSurfaceRefractivitySmall ErrorCode = 1021
	ErrSurfaceRefractivityLarge ErrorCode = 1022
)

// ErrorCodes lists every documented code in ascending order.
var ErrorCodes = []ErrorCode{
	ErrTxTerminalHeight,
	ErrRxTerminalHeight,
	ErrInvalidRadioClimate,
	ErrInvalidTime,
	ErrInvalidLocation,
	ErrInvalidSituation,
	ErrInvalidConfidence,
	ErrInvalidReliability,
	ErrRefractivity,
	ErrFrequency,
	ErrPolarization,
	ErrEpsilon,
	ErrSigma,
	ErrGroundImpedance,
	ErrMdvar,
	ErrEffectiveEarth,
	ErrPathDistance,
	ErrDeltaH,
	ErrTxSitingCriteria,
	ErrRxSitingCriteria,
	ErrSurfaceRefractivitySmall,
	ErrSurfaceRefractivityLarge,
}

type errorCodeInfo struct {
	name      string
	parameter string
	message   string
}

var errorCodeTable = map[ErrorCode]errorCodeInfo{
	ErrTxTerminalHeight:         {"TxTerminalHeight", "tx_height_m", "TX terminal height is out of range"},
	ErrRxTerminalHeight:         {"RxTerminalHeight", "rx_height_m", "RX terminal height is out of range"},
	ErrInvalidRadioClimate:      {"InvalidRadioClimate", "climate", "Invalid value for radio climate"},
	ErrInvalidTime:              {"InvalidTime", "time_pct", "Time percentage is out of range"},
	ErrInvalidLocation:          {"InvalidLocation", "location_pct", "Location percentage is out of range"},
	ErrInvalidSituation:         {"InvalidSituation", "situation_pct", "Situation percentage is out of range"},
	ErrInvalidConfidence:        {"InvalidConfidence", "confidence_pct", "Confidence percentage is out of range"},
	ErrInvalidReliability:       {"InvalidReliability", "reliability_pct", "Reliability percentage is out of range"},
	ErrRefractivity:             {"Refractivity", "refractivity_n0", "Refractivity is out of range"},
	ErrFrequency:                {"Frequency", "frequency_hz", "Frequency is out of range"},
	ErrPolarization:             {"Polarization", "polarization", "Invalid value for polarization"},
	ErrEpsilon:                  {"Epsilon", "permittivity", "Epsilon is out of range"},
	ErrSigma:                    {"Sigma", "conductivity_s_per_m", "Sigma is out of range"},
	ErrGroundImpedance:          {"GroundImpedance", "permittivity", "The imaginary portion of the complex impedance is larger than the real portion"},
	ErrMdvar:                    {"Mdvar", "variability", "Invalid value for mode of variability"},
	ErrEffectiveEarth:           {"EffectiveEarth", "refractivity_n0", "Internally computed effective earth radius is invalid"},
	ErrPathDistance:             {"PathDistance", "elevations_m", "Path distance is out of range"},
	ErrDeltaH:                   {"DeltaH", "elevations_m", "Delta H (terrain irregularity parameter) is out of range"},
	ErrTxSitingCriteria:         {"TxSitingCriteria", "tx_siting", "Invalid value for TX siting criteria"},
	ErrRxSitingCriteria:         {"RxSitingCriteria", "rx_siting", "Invalid value for RX siting criteria"},
	ErrSurfaceRefractivitySmall: {"SurfaceRefractivitySmall", "refractivity_n0", "Internally computed surface refractivity value is too small"},
	ErrSurfaceRefractivityLarge: {"SurfaceRefractivityLarge", "refractivity_n0", "Internally computed surface refractivity value is too large"},
}

func (c ErrorCode) Error() string {
	if info, ok := errorCodeTable[c]; ok {
		return info.message
	}
	return fmt.Sprintf("undocumented status code %d", int(c))
}

// String returns the short variant name, e.g. "GroundImpedance".
func (c ErrorCode) String() string {
	if info, ok := errorCodeTable[c]; ok {
		return info.name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Parameter names the input most closely associated with the failure,
// using the same field names as the RPC request.
func (c ErrorCode) Parameter() string {
	return errorCodeTable[c].parameter
}

// StatusError is returned when the model rejects its inputs.
type StatusError struct {
	Code ErrorCode
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("itm status %d: %s", int(e.Code), e.Code.Error())
}

// Is lets errors.Is compare against ErrorCode sentinels.
func (e *StatusError) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.Code
}

func (e *StatusError) Unwrap() error { return e.Code }

// ContractViolation is the panic value raised for status codes outside the
// documented set. It signals a mismatched or corrupted native build, not a
// bad input, and is never returned as an ordinary error.
type ContractViolation struct {
	Code int
}

func (c *ContractViolation) Error() string {
	return fmt.Sprintf("itm: undocumented status code %d (native library contract violated)", c.Code)
}

// IsKnownStatus reports whether DecodeStatus accepts code without panicking.
func IsKnownStatus(code int) bool {
	if code == 0 || code == 1 {
		return true
	}
	_, ok := errorCodeTable[ErrorCode(code)]
	return ok
}

// DecodeStatus maps a raw model status code to a Status or a *StatusError.
// Codes 0 and 1 succeed. Any code outside the documented set panics with a
// *ContractViolation.
func DecodeStatus(code int) (Status, error) {
	switch code {
	case 0:
		return StatusSuccess, nil
	case 1:
		return StatusSuccessWithWarning, nil
	}
	ec := ErrorCode(code)
	if _, ok := errorCodeTable[ec]; !ok {
		panic(&ContractViolation{Code: code})
	}
	return 0, &StatusError{Code: ec}
}

// AsStatusError is a convenience around errors.As.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
