//go:build !itm || !cgo

package native

import "github.com/signalsfoundry/terrain-propagation/core"

// Oracle is a placeholder so callers compile without the native model.
type Oracle struct{}

// New always fails in builds without the native model.
func New() (*Oracle, error) { return nil, ErrUnavailable }

// Available reports whether the native model is linked in.
func Available() bool { return false }

func (*Oracle) PointToPoint(core.OracleInput) (int, float64) {
	panic(ErrUnavailable)
}

func (*Oracle) PointToPointEx(core.OracleInput) (int, float64, core.IntermediateValues) {
	panic(ErrUnavailable)
}
