package atmos

import "errors"

// errDegenerateGamma is returned by FlightPathAngle when V*dt is
// non-positive or the resulting ratio falls outside [-1, 1], either of
// which makes the arcsine undefined.
var errDegenerateGamma = errors.New("atmos: degenerate flight-path-angle inputs (V*dt <= 0 or |dh/(V*dt)| > 1)")
