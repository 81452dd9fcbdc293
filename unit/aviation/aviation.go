// Package aviation supplies the non-SI unit constructors the bootstrap
// engine's domain needs on top of the SI-only unit package: slugs, knots,
// inches of mercury, horsepower, RPM/RPS, and British-engineering-unit
// aliases. This is the direct descendant of the teacher's
// github.com/ctessum/unit/badunit package, which does the same thing for
// InMAP's domain (horsepower, tons, miles, gallons, ...): one function per
// non-SI unit, each just a scale factor into unit.New.
package aviation

import "github.com/n6346d/bootstrap/unit"

// Conversion factors. Values are from NIST/ICAO standard references.
const (
	footToMeter       = 0.3048
	slugToKg          = 14.5939029
	poundForceToN     = 4.4482216152605
	lbfPerFt2ToPascal = poundForceToN / (footToMeter * footToMeter)
	knotToMPerSec     = 0.514444
	inHgToPascal      = 3386.39
	horsepowerToWatt  = 550 * poundForceToN * footToMeter // 550 ft*lbf/s
	mphToMPerSec      = 0.44704
	secondsPerMinute  = 60.0
)

// Foot creates a length Quantity from a number of feet.
func Foot(f float64) *unit.Quantity { return unit.New(f*footToMeter, unit.Length) }

// Foot2 creates an area Quantity from a number of square feet.
func Foot2(f float64) *unit.Quantity { return unit.New(f*footToMeter*footToMeter, unit.Area) }

// Slug creates a mass Quantity from a number of slugs (1 slug = 1 lbf*s^2/ft).
func Slug(s float64) *unit.Quantity { return unit.New(s*slugToKg, unit.Mass) }

// PoundForce creates a force Quantity from a number of pounds-force.
func PoundForce(lbf float64) *unit.Quantity { return unit.New(lbf*poundForceToN, unit.Force) }

// FootPerSecond creates a velocity Quantity from a number of feet per second.
func FootPerSecond(fps float64) *unit.Quantity { return unit.New(fps*footToMeter, unit.Velocity) }

// Knot creates a velocity Quantity from a number of knots. KnotsCAS,
// KnotsTAS, and KnotsIAS are aliases for the same conversion so call sites
// can document which airspeed the number represents without a comment.
func Knot(kt float64) *unit.Quantity { return unit.New(kt*knotToMPerSec, unit.Velocity) }

// KnotsCAS is an alias for Knot documenting that the value is calibrated airspeed.
func KnotsCAS(kt float64) *unit.Quantity { return Knot(kt) }

// KnotsTAS is an alias for Knot documenting that the value is true airspeed.
func KnotsTAS(kt float64) *unit.Quantity { return Knot(kt) }

// KnotsIAS is an alias for Knot documenting that the value is indicated airspeed.
func KnotsIAS(kt float64) *unit.Quantity { return Knot(kt) }

// StatuteMPH creates a velocity Quantity from a number of statute miles per hour.
func StatuteMPH(mph float64) *unit.Quantity { return unit.New(mph*mphToMPerSec, unit.Velocity) }

// InchesMercury creates a pressure Quantity (mass/length/time^2, Pascal
// dimensions) from a number of inches of mercury.
func InchesMercury(inHg float64) *unit.Quantity {
	return unit.New(inHg*inHgToPascal, unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -1, unit.TimeDim: -2})
}

// HorsePower creates a power Quantity from a number of horsepower.
func HorsePower(hp float64) *unit.Quantity { return unit.New(hp*horsepowerToWatt, unit.Power) }

// RPM creates an angular velocity Quantity from a number of revolutions per minute.
func RPM(rpm float64) *unit.Quantity {
	return unit.New(rpm*2*3.141592653589793/secondsPerMinute, unit.AngularVelocity)
}

// RPS creates an angular velocity Quantity from a number of revolutions per second.
func RPS(rps float64) *unit.Quantity {
	return unit.New(rps*2*3.141592653589793, unit.AngularVelocity)
}

// FootPound creates a torque Quantity from a number of foot-pounds.
func FootPound(ftlbf float64) *unit.Quantity {
	return unit.New(ftlbf*footToMeter*poundForceToN, unit.Torque)
}

// SlugPerFoot3 creates a density Quantity from a number of slugs per cubic foot.
func SlugPerFoot3(s float64) *unit.Quantity {
	return unit.New(s*slugToKg/(footToMeter*footToMeter*footToMeter), unit.Density)
}

// Fahrenheit creates an absolute-temperature Quantity (Kelvin dimensions)
// from a Fahrenheit reading. No affine arithmetic is performed on degrees
// Fahrenheit anywhere else in the engine; every °F value is converted to
// an absolute Quantity at the boundary via this constructor, mirroring the
// teacher's own badunit.Fahrenheit.
func Fahrenheit(f float64) *unit.Quantity {
	return unit.New((f+459.67)*5./9., unit.Temperature)
}

// Second creates a time Quantity from a number of seconds.
func Second(s float64) *unit.Quantity { return unit.New(s, unit.Time) }

// --- Lower helpers: SI Quantity back to a named non-SI magnitude. ---

// InFeet returns q's magnitude in feet.
func InFeet(q *unit.Quantity) float64 { return unit.Lower(q) / footToMeter }

// InFeetPerSecond returns q's magnitude in feet per second.
func InFeetPerSecond(q *unit.Quantity) float64 { return unit.Lower(q) / footToMeter }

// InKnots returns q's magnitude in knots.
func InKnots(q *unit.Quantity) float64 { return unit.Lower(q) / knotToMPerSec }

// InPoundsForce returns q's magnitude in pounds-force.
func InPoundsForce(q *unit.Quantity) float64 { return unit.Lower(q) / poundForceToN }

// InSlugs returns q's magnitude in slugs.
func InSlugs(q *unit.Quantity) float64 { return unit.Lower(q) / slugToKg }

// InSquareFeet returns q's magnitude in square feet.
func InSquareFeet(q *unit.Quantity) float64 { return unit.Lower(q) / (footToMeter * footToMeter) }

// InFootPounds returns q's (torque) magnitude in foot-pounds.
func InFootPounds(q *unit.Quantity) float64 { return unit.Lower(q) / (footToMeter * poundForceToN) }

// InRevolutionsPerSecond returns q's (angular velocity) magnitude in
// revolutions per second.
func InRevolutionsPerSecond(q *unit.Quantity) float64 {
	return unit.Lower(q) / (2 * 3.141592653589793)
}

// InSlugsPerFoot3 returns q's magnitude in slugs per cubic foot.
func InSlugsPerFoot3(q *unit.Quantity) float64 {
	return unit.Lower(q) * footToMeter * footToMeter * footToMeter / slugToKg
}

// InHorsePower returns q's magnitude in horsepower.
func InHorsePower(q *unit.Quantity) float64 { return unit.Lower(q) / horsepowerToWatt }

// InFeetPerMinute returns q's magnitude in feet per minute, the
// conventional unit for rate of climb.
func InFeetPerMinute(q *unit.Quantity) float64 { return InFeetPerSecond(q) * secondsPerMinute }

// InFahrenheit returns q's (absolute-temperature) magnitude as a
// Fahrenheit reading.
func InFahrenheit(q *unit.Quantity) float64 { return unit.Lower(q)*9./5. - 459.67 }

// InDegrees returns q's (angle) magnitude in degrees.
func InDegrees(q *unit.Quantity) float64 { return unit.Lower(q) * 180. / 3.141592653589793 }

// InSeconds returns q's magnitude in seconds.
func InSeconds(q *unit.Quantity) float64 { return unit.Lower(q) }
