package core

import "math"

// FreeSpaceLossDB returns the free-space basic transmission loss in dB for a
// distance in metres and a frequency in hertz:
//
//	32.45 + 20 log10(d_km) + 20 log10(f_MHz)
//
// It is reported next to model results for context only. Distances below
// one metre are clamped to avoid the log singularity.
func FreeSpaceLossDB(distanceM, frequencyHz float64) float64 {
	if distanceM < 1 {
		distanceM = 1
	}
	dKm := distanceM / 1000
	fMHz := frequencyHz / hzPerMHz
	return 32.45 + 20*math.Log10(dKm) + 20*math.Log10(fMHz)
}

// ExcessLossDB is the attenuation beyond free space for a result computed
// over the given path.
func ExcessLossDB(res Result, distanceM, frequencyHz float64) float64 {
	return res.AttenuationDB - FreeSpaceLossDB(distanceM, frequencyHz)
}
