// Package native binds the NTIA Irregular Terrain Model to core.PropagationOracle.
//
// The binding is compiled only with the "itm" build tag and cgo enabled. It
// links against a prebuilt libitm; point the toolchain at it with, for
// example:
//
//	CGO_CXXFLAGS="-I/opt/itm/include" CGO_LDFLAGS="-L/opt/itm/lib" go build -tags itm ./...
//
// Without the tag New reports ErrUnavailable and callers fall back to a
// fixed-answer oracle or refuse to start.
package native

import "errors"

// ErrUnavailable is returned by New when the binary was built without the
// native model.
var ErrUnavailable = errors.New("native ITM model not compiled in (build with -tags itm)")
