package bootstrap

import (
	"errors"
	"fmt"
)

// Sentinel errors for the structural and domain conditions named in the
// engine's error-handling design. Wrap with fmt.Errorf's %w so callers can
// errors.Is against these.
var (
	// ErrMissingGeometry is returned when neither WingSpan nor AspectRatio
	// is supplied.
	ErrMissingGeometry = errors.New("bootstrap: missing wing geometry: need WingSpan or AspectRatio")
	// ErrMissingPowerplant is returned when neither RatedTorque nor
	// (RatedPower and RatedPropSpeed) is supplied.
	ErrMissingPowerplant = errors.New("bootstrap: missing powerplant constants: need RatedTorque or RatedPower+RatedPropSpeed")
	// ErrNoFlightTest is returned when a plate coefficient can be derived
	// from neither an override nor a flight test.
	ErrNoFlightTest = errors.New("bootstrap: missing flight-test data to derive plate coefficients")
	// ErrDomain is returned for non-positive S, d, M0, W, density, or a γ
	// outside (0, π/2), or dt <= 0.
	ErrDomain = errors.New("bootstrap: domain error")
)

func wrapf(base error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), base)
}
