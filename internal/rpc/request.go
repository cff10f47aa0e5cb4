package rpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/signalsfoundry/terrain-propagation/core"
	"github.com/signalsfoundry/terrain-propagation/model"
)

// DefaultRefractivityN0 is used when a request omits refractivity_n0.
const DefaultRefractivityN0 = 301

var (
	// ErrInvalidRequest is wrapped by every request decoding failure.
	ErrInvalidRequest = errors.New("invalid request")
	errMissing        = fmt.Errorf("%w: required", ErrInvalidRequest)
)

type predictRequest struct {
	TxHeightM float64 `json:"tx_height_m"`
	RxHeightM float64 `json:"rx_height_m"`

	SpacingM    *float64  `json:"spacing_m"`
	ElevationsM []float64 `json:"elevations_m"`
	Start       string    `json:"start"`
	End         string    `json:"end"`

	Climate        string   `json:"climate"`
	RefractivityN0 *float64 `json:"refractivity_n0"`
	FrequencyHz    float64  `json:"frequency_hz"`
	Polarization   string   `json:"polarization"`

	Ground         string   `json:"ground"`
	Permittivity   *float64 `json:"permittivity"`
	ConductivitySm *float64 `json:"conductivity_s_per_m"`

	Variability  string  `json:"variability"`
	TimePct      float64 `json:"time_pct"`
	LocationPct  float64 `json:"location_pct"`
	SituationPct float64 `json:"situation_pct"`
}

// decodeRequest turns a Struct into prediction parameters. Only the shape of
// the request is checked; physical ranges are left to the model.
//
// Fields: tx_height_m, rx_height_m, elevations_m (at least two samples),
// spacing_m or start/end as "lat,lon,alt", climate, refractivity_n0
// (default 301), frequency_hz, polarization, ground preset and/or
// permittivity and conductivity_s_per_m, variability, time_pct,
// location_pct, situation_pct.
func decodeRequest(in *structpb.Struct) (core.Params[float64], error) {
	var p core.Params[float64]
	if in == nil {
		return p, fmt.Errorf("%w: empty request", ErrInvalidRequest)
	}
	raw, err := protojson.Marshal(in)
	if err != nil {
		return p, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	var req predictRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return p, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	if len(req.ElevationsM) < 2 {
		return p, &core.InputError{Field: "elevations_m", Err: fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidRequest, len(req.ElevationsM))}
	}
	spacing, err := req.spacing()
	if err != nil {
		return p, err
	}

	climate, err := model.ParseClimate(req.Climate)
	if err != nil {
		return p, &core.InputError{Field: "climate", Err: err}
	}
	pol, err := model.ParsePolarization(req.Polarization)
	if err != nil {
		return p, &core.InputError{Field: "polarization", Err: err}
	}
	mdvar, err := model.ParseVariability(req.Variability)
	if err != nil {
		return p, &core.InputError{Field: "variability", Err: err}
	}
	epsilon, sigma, err := req.ground()
	if err != nil {
		return p, err
	}

	n0 := float64(DefaultRefractivityN0)
	if req.RefractivityN0 != nil {
		n0 = *req.RefractivityN0
	}

	return core.Params[float64]{
		TxHeightM:      req.TxHeightM,
		RxHeightM:      req.RxHeightM,
		SpacingM:       spacing,
		ElevationsM:    req.ElevationsM,
		Climate:        climate,
		RefractivityN0: n0,
		FrequencyHz:    req.FrequencyHz,
		Polarization:   pol,
		Permittivity:   epsilon,
		ConductivitySm: sigma,
		Variability:    mdvar,
		TimePct:        req.TimePct,
		LocationPct:    req.LocationPct,
		SituationPct:   req.SituationPct,
	}, nil
}

func (r predictRequest) spacing() (float64, error) {
	if r.SpacingM != nil {
		return *r.SpacingM, nil
	}
	if r.Start == "" || r.End == "" {
		return 0, &core.InputError{Field: "spacing_m", Err: fmt.Errorf("%w: give spacing_m or both start and end", ErrInvalidRequest)}
	}
	start, err := core.ParseGeoPoint(r.Start)
	if err != nil {
		return 0, &core.InputError{Field: "start", Err: err}
	}
	end, err := core.ParseGeoPoint(r.End)
	if err != nil {
		return 0, &core.InputError{Field: "end", Err: err}
	}
	return core.SpacingFor(start, end, len(r.ElevationsM)), nil
}

// ground resolves permittivity and conductivity from a preset, letting
// explicit values override either one.
func (r predictRequest) ground() (epsilon, sigma float64, err error) {
	haveEpsilon, haveSigma := false, false
	if r.Ground != "" {
		preset, err := model.GroundPresetByName(r.Ground)
		if err != nil {
			return 0, 0, &core.InputError{Field: "ground", Err: err}
		}
		epsilon, sigma = preset.Permittivity, preset.ConductivitySm
		haveEpsilon, haveSigma = true, true
	}
	if r.Permittivity != nil {
		epsilon, haveEpsilon = *r.Permittivity, true
	}
	if r.ConductivitySm != nil {
		sigma, haveSigma = *r.ConductivitySm, true
	}
	switch {
	case !haveEpsilon:
		return 0, 0, &core.InputError{Field: "permittivity", Err: errMissing}
	case !haveSigma:
		return 0, 0, &core.InputError{Field: "conductivity_s_per_m", Err: errMissing}
	}
	return epsilon, sigma, nil
}

func encodeResult(p core.Params[float64], res core.Result) (*structpb.Struct, error) {
	distance := core.TerrainProfile{Spacing: p.SpacingM, Elevations: p.ElevationsM}.Distance()
	out := map[string]interface{}{
		"attenuation_db":     res.AttenuationDB,
		"status":             res.Status.String(),
		"warning":            res.Warning(),
		"samples":            float64(len(p.ElevationsM)),
		"distance_m":         distance,
		"free_space_loss_db": core.FreeSpaceLossDB(distance, p.FrequencyHz),
		"excess_loss_db":     core.ExcessLossDB(res, distance, p.FrequencyHz),
	}
	if iv := res.Intermediate; iv != nil {
		out["intermediate"] = map[string]interface{}{
			"mode":               iv.Mode.String(),
			"distance_km":        iv.DistanceKm,
			"free_space_loss_db": iv.FreeSpaceLossDB,
			"delta_h_m":          iv.DeltaHM,
		}
	}
	return structpb.NewStruct(out)
}
