package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/signalsfoundry/terrain-propagation/core"
	"github.com/signalsfoundry/terrain-propagation/internal/logging"
	"github.com/signalsfoundry/terrain-propagation/internal/native"
	"github.com/signalsfoundry/terrain-propagation/model"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, logging.NewFromEnv(), nativeOracle))
}

func nativeOracle() (core.PropagationOracle, error) {
	o, err := native.New()
	if err != nil {
		return nil, err
	}
	return o, nil
}

type options struct {
	start, end   core.GeoPointFlag
	frequencyHz  float64
	profilePath  string
	gridPath     string
	maxStep      float64
	climate      string
	polarization string
	ground       string
	permittivity *float64
	conductivity *float64
	variability  string
	timePct      float64
	locationPct  float64
	situationPct float64
	refractivity float64
	dryRun       bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("itm-p2p", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&o.start, "start", `transmitter "lat,lon,alt", alt in metres above ground`)
	fs.Var(&o.end, "end", `receiver "lat,lon,alt", alt in metres above ground`)
	fs.Float64Var(&o.frequencyHz, "frequency", 0, "signal frequency in Hz")
	fs.StringVar(&o.profilePath, "profile", "", `JSON terrain profile {"spacing_m":..., "elevations_m":[...]}`)
	fs.StringVar(&o.gridPath, "grid", "", "JSON elevation grid to sample the path from")
	fs.Float64Var(&o.maxStep, "max-step", core.DefaultMaxStepM, "maximum distance between grid samples in metres")
	fs.StringVar(&o.climate, "climate", model.ClimateContinentalTemperate.String(), "radio climate")
	fs.StringVar(&o.polarization, "polarization", model.PolarizationVertical.String(), "horizontal or vertical")
	fs.StringVar(&o.ground, "ground", "average", "ground preset (poor, average, good, fresh-water, sea-water)")
	permittivity := fs.Float64("permittivity", 0, "relative permittivity, overrides the ground preset")
	conductivity := fs.Float64("conductivity", 0, "conductivity in S/m, overrides the ground preset")
	fs.StringVar(&o.variability, "variability", model.VariabilityBroadcast.String(), "mode of variability")
	fs.Float64Var(&o.timePct, "time", 50, "time percentage (0, 100)")
	fs.Float64Var(&o.locationPct, "location", 50, "location percentage (0, 100)")
	fs.Float64Var(&o.situationPct, "situation", 50, "situation percentage (0, 100)")
	fs.Float64Var(&o.refractivity, "refractivity", 301, "surface refractivity N0 in N-units")
	fs.BoolVar(&o.dryRun, "dry-run", false, "print the model input instead of running the model")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	// Overrides apply only when given, so an explicit 0 still reaches the
	// model's range check.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "permittivity":
			o.permittivity = permittivity
		case "conductivity":
			o.conductivity = conductivity
		}
	})
	switch {
	case !o.start.IsSet || !o.end.IsSet:
		return o, errors.New("--start and --end are required")
	case o.frequencyHz <= 0:
		return o, errors.New("--frequency is required")
	case (o.profilePath == "") == (o.gridPath == ""):
		return o, errors.New("exactly one of --profile or --grid is required")
	}
	return o, nil
}

func run(args []string, stdout, stderr io.Writer, log logging.Logger, newOracle func() (core.PropagationOracle, error)) int {
	ctx := context.Background()

	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.Error(ctx, "invalid arguments", logging.Err(err))
		return 2
	}

	profile, err := loadProfile(ctx, opts)
	if err != nil {
		log.Error(ctx, "failed to build terrain profile", logging.Err(err))
		return 1
	}
	params, err := buildParams(opts, profile)
	if err != nil {
		log.Error(ctx, "invalid model parameters", logging.Err(err))
		return 2
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	if opts.dryRun {
		in, err := params.OracleInput()
		if err != nil {
			log.Error(ctx, "invalid model parameters", logging.Err(err))
			return 2
		}
		_ = enc.Encode(in)
		return 0
	}

	oracle, err := newOracle()
	if err != nil {
		log.Error(ctx, "propagation model unavailable", logging.Err(err))
		return 1
	}

	predictor := core.NewPredictor(oracle, core.WithLogger(log))
	res, err := predictor.Predict(ctx, params)
	if err != nil {
		log.Error(ctx, "prediction failed", logging.Err(err))
		return 1
	}

	distance := profile.Distance()
	_ = enc.Encode(report{
		Start:           opts.start.Point.String(),
		End:             opts.end.Point.String(),
		Samples:         len(profile.Elevations),
		SpacingM:        profile.Spacing,
		DistanceM:       distance,
		AttenuationDB:   res.AttenuationDB,
		Status:          res.Status.String(),
		FreeSpaceLossDB: core.FreeSpaceLossDB(distance, opts.frequencyHz),
		ExcessLossDB:    core.ExcessLossDB(res, distance, opts.frequencyHz),
	})
	return 0
}

type report struct {
	Start           string  `json:"start"`
	End             string  `json:"end"`
	Samples         int     `json:"samples"`
	SpacingM        float64 `json:"spacing_m"`
	DistanceM       float64 `json:"distance_m"`
	AttenuationDB   float64 `json:"attenuation_db"`
	Status          string  `json:"status"`
	FreeSpaceLossDB float64 `json:"free_space_loss_db"`
	ExcessLossDB    float64 `json:"excess_loss_db"`
}

func loadProfile(ctx context.Context, opts options) (core.TerrainProfile, error) {
	if opts.gridPath != "" {
		f, err := os.Open(opts.gridPath)
		if err != nil {
			return core.TerrainProfile{}, err
		}
		defer f.Close()
		grid, err := core.LoadElevationGrid(f)
		if err != nil {
			return core.TerrainProfile{}, fmt.Errorf("load grid %s: %w", opts.gridPath, err)
		}
		return core.BuildProfile(ctx, grid, opts.start.Point, opts.end.Point, opts.maxStep)
	}

	f, err := os.Open(opts.profilePath)
	if err != nil {
		return core.TerrainProfile{}, err
	}
	defer f.Close()
	profile, hasSpacing, err := core.LoadTerrainProfile(f)
	if err != nil {
		return core.TerrainProfile{}, fmt.Errorf("load profile %s: %w", opts.profilePath, err)
	}
	if !hasSpacing {
		profile.Spacing = core.SpacingFor(opts.start.Point, opts.end.Point, len(profile.Elevations))
	}
	if len(profile.Elevations) < 2 {
		return core.TerrainProfile{}, fmt.Errorf("profile %s: need at least 2 samples", opts.profilePath)
	}
	return profile, nil
}

func buildParams(opts options, profile core.TerrainProfile) (core.Params[float64], error) {
	climate, err := model.ParseClimate(opts.climate)
	if err != nil {
		return core.Params[float64]{}, err
	}
	pol, err := model.ParsePolarization(opts.polarization)
	if err != nil {
		return core.Params[float64]{}, err
	}
	mdvar, err := model.ParseVariability(opts.variability)
	if err != nil {
		return core.Params[float64]{}, err
	}
	ground, err := model.GroundPresetByName(opts.ground)
	if err != nil {
		return core.Params[float64]{}, err
	}
	if opts.permittivity != nil {
		ground.Permittivity = *opts.permittivity
	}
	if opts.conductivity != nil {
		ground.ConductivitySm = *opts.conductivity
	}

	return core.Params[float64]{
		TxHeightM:      opts.start.Point.Altitude,
		RxHeightM:      opts.end.Point.Altitude,
		SpacingM:       profile.Spacing,
		ElevationsM:    profile.Elevations,
		Climate:        climate,
		RefractivityN0: opts.refractivity,
		FrequencyHz:    opts.frequencyHz,
		Polarization:   pol,
		Permittivity:   ground.Permittivity,
		ConductivitySm: ground.ConductivitySm,
		Variability:    mdvar,
		TimePct:        opts.timePct,
		LocationPct:    opts.locationPct,
		SituationPct:   opts.situationPct,
	}, nil
}
