// Package atmos implements the pure numeric relationships of the 1962 US
// Standard Atmosphere that the bootstrap performance engine needs: standard
// temperature at pressure altitude, relative and absolute density, density-
// altitude conversion, tapeline-altitude correction, and true/calibrated
// airspeed conversion. Every function here is a pure total function over
// float64 in British engineering units (feet, °F, slug/ft³, ft/s, seconds)
// — the same units-in-raw-floats style the teacher's vendored
// github.com/ctessum/atmos/plumerise package uses for its own pure physics
// functions. Dimensional wrapping happens one layer up, in package
// bootstrap, using unit/aviation at the API boundary.
package atmos

import "math"

// Standard-atmosphere constants (1962 US Standard Atmosphere, British
// engineering units).
const (
	// T0F is standard sea-level temperature, 288.15 K ≈ 59 °F.
	T0F = 59.0
	// P0InHg is standard sea-level pressure.
	P0InHg = 29.921
	// Rho0SlugFt3 is standard sea-level density.
	Rho0SlugFt3 = 0.002377
	// LapseRateFPerFt is the standard lapse rate, 0.001981 K/ft converted
	// to °F/ft (1 K increment = 1.8 °F increment).
	LapseRateFPerFt = 0.001981 * 9.0 / 5.0

	// rankineOffset converts a Fahrenheit reading to an absolute
	// (Rankine) scale for use in ratios such as the tapeline correction.
	rankineOffset = 459.7

	// pressureAltExponent and pressureAltScale parameterize the
	// pressure-altitude-only relative-density model used when no OAT is
	// supplied.
	pressureAltScale    = 145457.0
	pressureAltExponent = 4.25635
)

// StdTemperature returns the standard atmosphere's temperature, in °F, at
// pressure altitude hFt.
func StdTemperature(hFt float64) float64 {
	return T0F - LapseRateFPerFt*hFt
}

// RelativeDensity returns σ = ρ/ρ₀ at pressure altitude hFt. If tF is
// non-nil, the OAT-corrected model is used; otherwise the pure
// pressure-altitude standard-atmosphere model is used.
func RelativeDensity(hFt float64, tF *float64) float64 {
	if tF != nil {
		return (518.7 / (*tF + rankineOffset)) * (1 - 6.8752e-6*hFt)
	}
	return math.Pow(1-hFt/pressureAltScale, pressureAltExponent)
}

// Density returns ambient density in slug/ft³ at pressure altitude hFt and
// (optional) OAT tF.
func Density(hFt float64, tF *float64) float64 {
	return Rho0SlugFt3 * RelativeDensity(hFt, tF)
}

// TrueAirspeed converts a calibrated airspeed (ft/s) to true airspeed
// (ft/s) given pressure altitude hFt and optional OAT tF.
func TrueAirspeed(vCAS, hFt float64, tF *float64) float64 {
	return vCAS / math.Sqrt(RelativeDensity(hFt, tF))
}

// CalibratedAirspeed converts a true airspeed (ft/s) to calibrated airspeed
// (ft/s) given pressure altitude hFt and optional OAT tF.
func CalibratedAirspeed(vTAS, hFt float64, tF *float64) float64 {
	return vTAS * math.Sqrt(RelativeDensity(hFt, tF))
}

// TapelineAltitude corrects an indicated altitude change dhFt (ft) to a
// tapeline (geometric) altitude change, given the pressure altitude hFt and
// OAT tF (°F) at which the change was observed.
func TapelineAltitude(dhFt, hFt, tF float64) float64 {
	tAbs := tF + rankineOffset
	tStdAbs := StdTemperature(hFt) + rankineOffset
	return dhFt * tAbs / tStdAbs
}

// FlightPathAngle returns the flight-path angle (radians, above horizontal)
// implied by a tapeline altitude change dhFt (ft) over elapsed time dtSec
// (s) at true airspeed vFtPerSec (ft/s). It returns an error if V*dt is
// non-positive, which would make the ratio undefined.
func FlightPathAngle(dhFt, vFtPerSec, dtSec float64) (float64, error) {
	denom := vFtPerSec * dtSec
	if denom <= 0 {
		return 0, errDegenerateGamma
	}
	ratio := dhFt / denom
	if ratio < -1 || ratio > 1 {
		return 0, errDegenerateGamma
	}
	return math.Asin(ratio), nil
}

// DensityAltitude returns the density altitude (ft) corresponding to
// pressure altitude hFt and OAT tF: the altitude in the standard
// atmosphere at which ambient density equals the observed density.
func DensityAltitude(hFt, tF float64) float64 {
	sigma := RelativeDensity(hFt, &tF)
	return PressureAltitudeForRelativeDensity(sigma)
}

// StandardAtmosphere bundles the (pressure altitude, OAT) pair that the
// plate builder, composite evaluator, and V-speed solver each need to carry
// from one atmosphere query to the next, instead of threading HFt and a
// *float64 TF through every call individually.
type StandardAtmosphere struct {
	HFt float64
	// TF is the OAT in °F. Nil selects the pure pressure-altitude standard-
	// atmosphere density model (no OAT correction).
	TF *float64
}

// RelativeDensity returns σ at a.
func (a StandardAtmosphere) RelativeDensity() float64 {
	return RelativeDensity(a.HFt, a.TF)
}

// Density returns ambient density (slug/ft³) at a.
func (a StandardAtmosphere) Density() float64 {
	return Density(a.HFt, a.TF)
}

// TrueAirspeed converts a calibrated airspeed (ft/s) to true airspeed at a.
func (a StandardAtmosphere) TrueAirspeed(vCAS float64) float64 {
	return TrueAirspeed(vCAS, a.HFt, a.TF)
}

// CalibratedAirspeed converts a true airspeed (ft/s) to calibrated airspeed at a.
func (a StandardAtmosphere) CalibratedAirspeed(vTAS float64) float64 {
	return CalibratedAirspeed(vTAS, a.HFt, a.TF)
}

// PressureAltitudeForRelativeDensity inverts the pressure-altitude-only
// standard-atmosphere model, returning the altitude (ft) at which the
// standard atmosphere has relative density sigma. This is the inverse
// operation DensityAltitude needs and the one the spec's "density-altitude
// conversions" bullet calls for but doesn't spell out algebraically.
func PressureAltitudeForRelativeDensity(sigma float64) float64 {
	return pressureAltScale * (1 - math.Pow(sigma, 1/pressureAltExponent))
}
