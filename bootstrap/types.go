package bootstrap

import "github.com/n6346d/bootstrap/unit"

// AirframeInputs holds the constants describing an airframe and propeller
// combination, plus the configuration options that apply to every query
// made against the data plate built from them.
type AirframeInputs struct {
	// S is wing area. Required.
	S *unit.Quantity
	// WingSpan is the wing span B. Either WingSpan or AspectRatio must be set.
	WingSpan *unit.Quantity
	// AspectRatio is the wing aspect ratio A = B²/S. Either WingSpan or
	// AspectRatio must be set; if both are set, AspectRatio is ignored in
	// favor of deriving A from WingSpan and S (last-write-wins, as for the
	// plate-coefficient overrides below).
	AspectRatio *float64
	// PropDiameter is the propeller diameter d. Required.
	PropDiameter *unit.Quantity

	// RatedTorque is the rated torque M0. For a direct-drive engine
	// (GearRatio 1, the default) this is the propeller-shaft torque. For a
	// geared engine (GearRatio != 1) this is measured on the engine shaft,
	// matching how rated torque is published for geared engines; Build
	// converts it to the propeller shaft using GearRatio. Either
	// RatedTorque or (RatedPower and RatedPropSpeed) must be set.
	RatedTorque *unit.Quantity
	// RatedPower is the rated engine power P0. Engine power is the same on
	// either side of a reduction gear, so RatedPower never needs GearRatio
	// applied to it.
	RatedPower *unit.Quantity
	// RatedPropSpeed is the rated angular speed n0. For a direct-drive
	// engine (GearRatio 1, the default) this is the propeller-shaft speed.
	// For a geared engine (GearRatio != 1) this is the engine-shaft (crank)
	// speed, matching how rated RPM is published for geared engines; Build
	// converts it to the propeller shaft using GearRatio.
	RatedPropSpeed *unit.Quantity

	// GearRatio is the engine-shaft to propeller-shaft reduction ratio
	// (engine RPM / propeller RPM). It defaults to 1 (direct drive). For a
	// geared engine, RatedPropSpeed and RatedTorque are given on the engine
	// shaft (the way the engine manufacturer publishes them), and Build
	// converts them to the propeller shaft that the rest of the data plate
	// is built on: propeller angular speed is engine angular speed /
	// GearRatio, and propeller torque is engine torque * GearRatio.
	// DataPlate.M0 always refers to the propeller shaft.
	GearRatio float64

	// DropoffC is the engine-power altitude dropoff factor C. Defaults to
	// 0.12 if nil.
	DropoffC *float64

	// CD0Override, EOverride, BCoefOverride, and MCoefOverride let a
	// caller supply plate coefficients directly instead of deriving them
	// from flight tests (useful for testing/mocking). If a flight test
	// that would derive the same coefficient is also supplied, the
	// override wins — last write wins, and Build documents which source
	// was used for each coefficient via DataPlate.Provenance.
	CD0Override    *float64
	EOverride      *float64
	BCoefOverride  *float64
	MCoefOverride  *float64

	// Ceiling, Vs0, and Vne are passed through unmodified onto the
	// resulting DataPlate for consumers (the notebook/plotting layer, out
	// of scope here) that need an upper altitude bound for sweeps and
	// stall-clean/never-exceed speeds.
	Ceiling *unit.Quantity
	Vs0     *unit.Quantity
	Vne     *unit.Quantity

	// Calibration is an optional monotone CAS→IAS function applied only
	// at the external boundary of VSpeeds outputs, which the engine solves
	// for internally in CAS. Performance takes its airspeed as a direct
	// input rather than solving for one, so there is no boundary for it to
	// cross and Calibration does not apply there.
	Calibration func(vCAS float64) float64
}

// DragTest is a steady best-glide observation used to derive C_D0 and e.
type DragTest struct {
	W     *unit.Quantity // weight
	H     *unit.Quantity // pressure altitude
	T     *unit.Quantity // OAT (absolute temperature)
	DH    *unit.Quantity // indicated altitude loss
	DT    *unit.Quantity // elapsed time
	VCbg  *unit.Quantity // calibrated best-glide airspeed
}

// ThrustTest is a steady best-angle-climb observation at full throttle,
// used (together with a prior DragTest-derived C_D0 and e) to derive b and m.
type ThrustTest struct {
	W    *unit.Quantity // weight
	H    *unit.Quantity // pressure altitude
	T    *unit.Quantity // OAT (absolute temperature)
	VCx  *unit.Quantity // calibrated best-angle airspeed
	VCM  *unit.Quantity // calibrated max-level airspeed at the test altitude
}

// Provenance records, for each derived plate coefficient, whether it came
// from a flight test or from a direct override.
type Provenance struct {
	CD0, E, B, M string // "dragtest", "thrusttest", or "override"
}

// DataPlate is the derived bootstrap data plate. It is built once from
// AirframeInputs and flight-test records and is immutable thereafter; every
// downstream query (Composites, VSpeeds, Performance) is a pure function of
// a DataPlate plus an operating point.
type DataPlate struct {
	S  *unit.Quantity // wing area
	A  float64        // aspect ratio
	M0 *unit.Quantity // rated propeller-shaft torque
	C  float64        // altitude dropoff factor
	D  *unit.Quantity // propeller diameter

	CD0 float64 // zero-lift drag coefficient
	E   float64 // Oswald span efficiency
	B   float64 // dimensionless propeller drag-like term (negative)
	M   float64 // dimensionless propeller thrust-like term (positive)

	Ceiling *unit.Quantity
	Vs0     *unit.Quantity
	Vne     *unit.Quantity

	// Calibration is applied only by SolveVSpeeds; see the field comment
	// on AirframeInputs.Calibration.
	Calibration func(vCAS float64) float64

	Provenance Provenance
}

// Composites is the per-operating-point bundle of the eight bootstrap
// composites derived from a DataPlate at a given weight and atmosphere.
// Composites are ephemeral: they retain no state and are recomputed fresh
// on every query, including the W-dependent terms H, R, U, matching the
// "recompute rather than cache against a reference weight" design the
// composite evaluator documents.
type Composites struct {
	E, F, G, H, K, Q, R, U float64
}

// VSpeeds holds the characteristic calibrated airspeeds derived from a
// Composites bundle. Vx, Vy, and VM come back nil together when the
// operating point is at or above the absolute ceiling; Vbg and Vmd depend
// only on U and are always defined.
type VSpeeds struct {
	Vx, Vy, VM, Vbg, Vmd *unit.Quantity
}

// Ceiling reports whether this operating point is at or above the
// absolute ceiling, i.e. whether any of Vx, Vy, or VM failed to resolve to
// a real, positive airspeed.
func (v VSpeeds) Ceiling() bool {
	return v.Vx == nil || v.Vy == nil || v.VM == nil
}

// Performance holds the ten performance outputs computed at a given
// (V, W, h, T) operating point.
type Performance struct {
	Thrust         *unit.Quantity // T
	PowerAvailable *unit.Quantity // P_av
	ParasiteDrag   *unit.Quantity // Dp
	InducedDrag    *unit.Quantity // Di
	Drag           *unit.Quantity // D
	PowerRequired  *unit.Quantity // P_re
	ExcessPower    *unit.Quantity // P_xs
	ExcessThrust   *unit.Quantity // T_xs
	RateOfClimb    *unit.Quantity // ROC
	FlightPathAngle *unit.Quantity // γ (angle dimension)
}
