//go:build itm && cgo

package native

/*
#cgo CXXFLAGS: -std=c++11
#cgo LDFLAGS: -litm -lstdc++ -lm
#include "itm_shim.h"
*/
import "C"

import (
	"unsafe"

	"github.com/signalsfoundry/terrain-propagation/core"
)

const minSamples = 2

// Oracle calls ITM_P2P_TLS_Ex. The library keeps no global state, so one
// Oracle may serve concurrent callers.
type Oracle struct{}

// New returns the native oracle.
func New() (*Oracle, error) { return &Oracle{}, nil }

// Available reports whether the native model is linked in.
func Available() bool { return true }

func (o *Oracle) PointToPoint(in core.OracleInput) (int, float64) {
	code, db, _ := o.PointToPointEx(in)
	return code, db
}

// PointToPointEx runs the model and returns its raw status code. The
// profile pointer is only read during the call.
func (o *Oracle) PointToPointEx(in core.OracleInput) (int, float64, core.IntermediateValues) {
	// The model indexes past the header without checking the sample count,
	// so short profiles are answered here with its own path distance code.
	if in.Profile.Count() < minSamples || len(in.Profile) < minSamples+2 {
		return int(core.ErrPathDistance), 0, core.IntermediateValues{}
	}
	pfl := (*C.double)(unsafe.Pointer(&in.Profile[0]))

	var (
		attenuation C.double
		warnings    C.long
		iv          C.itm_shim_intermediate
	)
	rtn := C.itm_shim_p2p(
		C.double(in.TxHeightM), C.double(in.RxHeightM), pfl,
		C.int(in.Climate), C.double(in.RefractivityN0), C.double(in.FrequencyMHz),
		C.int(in.Polarization), C.double(in.Permittivity), C.double(in.ConductivitySm),
		C.int(in.Variability), C.double(in.TimePct), C.double(in.LocationPct), C.double(in.SituationPct),
		&attenuation, &warnings, &iv,
	)
	return int(rtn), float64(attenuation), core.IntermediateValues{
		Mode:            int(iv.mode),
		DistanceKm:      float64(iv.d_km),
		FreeSpaceLossDB: float64(iv.a_fs_db),
		DeltaHM:         float64(iv.delta_h_m),
	}
}
