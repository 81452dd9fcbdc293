package bootstrap

import (
	"math"

	"github.com/n6346d/bootstrap/atmos"
	"github.com/n6346d/bootstrap/unit"
	"github.com/n6346d/bootstrap/unit/aviation"
)

const defaultDropoffC = 0.12

// Build derives a DataPlate from AirframeInputs and, optionally, a
// DragTest and/or ThrustTest. At least one of drag or thrust may be nil,
// but any plate coefficient that cannot be derived from an override or the
// corresponding flight test causes Build to return ErrNoFlightTest.
func Build(in AirframeInputs, drag *DragTest, thrust *ThrustTest) (*DataPlate, error) {
	a, err := aspectRatio(in)
	if err != nil {
		return nil, err
	}
	m0, err := ratedTorque(in)
	if err != nil {
		return nil, err
	}
	c := defaultDropoffC
	if in.DropoffC != nil {
		c = *in.DropoffC
	}

	plate := &DataPlate{
		S:           in.S,
		A:           a,
		M0:          m0,
		C:           c,
		D:           in.PropDiameter,
		Ceiling:     in.Ceiling,
		Vs0:         in.Vs0,
		Vne:         in.Vne,
		Calibration: in.Calibration,
	}

	if in.S == nil || unit.Lower(in.S) <= 0 {
		return nil, wrapf(ErrDomain, "S must be positive")
	}
	if a <= 0 {
		return nil, wrapf(ErrDomain, "A must be positive")
	}
	if in.PropDiameter == nil || unit.Lower(in.PropDiameter) <= 0 {
		return nil, wrapf(ErrDomain, "PropDiameter must be positive")
	}
	if unit.Lower(m0) <= 0 {
		return nil, wrapf(ErrDomain, "M0 must be positive")
	}
	if c <= 0 || c >= 1 {
		return nil, wrapf(ErrDomain, "C must be in (0, 1), got %g", c)
	}

	if err := deriveDrag(plate, in, drag); err != nil {
		return nil, err
	}
	if err := deriveThrust(plate, in, thrust); err != nil {
		return nil, err
	}

	if err := plate.Validate(); err != nil {
		return nil, err
	}
	return plate, nil
}

func aspectRatio(in AirframeInputs) (float64, error) {
	if in.WingSpan != nil {
		if in.S == nil {
			return 0, wrapf(ErrMissingGeometry, "WingSpan given without S")
		}
		return in.WingSpan.Mul(in.WingSpan).Div(in.S).Value(), nil
	}
	if in.AspectRatio != nil {
		return *in.AspectRatio, nil
	}
	return 0, ErrMissingGeometry
}

func ratedTorque(in AirframeInputs) (*unit.Quantity, error) {
	gear := in.GearRatio
	if gear == 0 {
		gear = 1
	}
	n0 := in.RatedPropSpeed
	if n0 != nil && gear != 1 {
		n0 = unit.New(unit.Lower(n0)/gear, unit.AngularVelocity)
	}
	switch {
	case in.RatedTorque != nil:
		if gear == 1 {
			return in.RatedTorque, nil
		}
		return unit.New(unit.Lower(in.RatedTorque)*gear, unit.Torque), nil
	case in.RatedPower != nil && n0 != nil:
		return in.RatedPower.Div(n0), nil
	default:
		return nil, ErrMissingPowerplant
	}
}

// deriveDrag computes C_D0 and e from a DragTest using the PoLA Appendix F
// method, or from overrides. Overrides win over a supplied flight test,
// documented on plate.Provenance.
func deriveDrag(plate *DataPlate, in AirframeInputs, drag *DragTest) error {
	if in.CD0Override != nil && in.EOverride != nil {
		plate.CD0 = *in.CD0Override
		plate.E = *in.EOverride
		plate.Provenance.CD0 = "override"
		plate.Provenance.E = "override"
		return nil
	}
	if drag == nil {
		return wrapf(ErrNoFlightTest, "no DragTest and no CD0/E override")
	}

	hFt := aviation.InFeet(drag.H)
	tF := aviation.InFahrenheit(drag.T)
	wLbf := aviation.InPoundsForce(drag.W)
	dhFt := aviation.InFeet(drag.DH)
	dtSec := aviation.InSeconds(drag.DT)
	vCbgFps := aviation.InFeetPerSecond(drag.VCbg)

	if wLbf <= 0 {
		return wrapf(ErrDomain, "DragTest.W must be positive")
	}
	if dtSec <= 0 {
		return wrapf(ErrDomain, "DragTest.DT must be positive")
	}

	stdAtmo := atmos.StandardAtmosphere{HFt: hFt, TF: &tF}
	sigma := stdAtmo.RelativeDensity()
	if sigma <= 0 {
		return wrapf(ErrDomain, "non-positive relative density at DragTest altitude")
	}
	rho := atmos.Rho0SlugFt3 * sigma

	dhTape := atmos.TapelineAltitude(dhFt, hFt, tF)
	vBg := stdAtmo.TrueAirspeed(vCbgFps)

	gammaBg, err := atmos.FlightPathAngle(dhTape, vBg, dtSec)
	if err != nil {
		return wrapf(ErrDomain, "DragTest produced a degenerate glide angle")
	}
	if gammaBg <= 0 || gammaBg >= math.Pi/2 {
		return wrapf(ErrDomain, "DragTest glide angle %g rad outside (0, pi/2)", gammaBg)
	}

	sArea := aviation.InSquareFeet(plate.S)

	// The engine uses +W here, not the book's -W (PoLA eq. 9.41): with -W,
	// C_D0 comes out negative, which contradicts the Appendix F numerics.
	cd0 := wLbf * math.Sin(gammaBg) / (rho * sArea * vBg * vBg)
	tanGamma := math.Tan(gammaBg)
	e := 4 * cd0 / (math.Pi * plate.A * tanGamma * tanGamma)

	if in.CD0Override != nil {
		plate.CD0 = *in.CD0Override
		plate.Provenance.CD0 = "override"
	} else {
		plate.CD0 = cd0
		plate.Provenance.CD0 = "dragtest"
	}
	if in.EOverride != nil {
		plate.E = *in.EOverride
		plate.Provenance.E = "override"
	} else {
		plate.E = e
		plate.Provenance.E = "dragtest"
	}
	return nil
}

// deriveThrust computes b and m from a ThrustTest using the already-derived
// C_D0 and e, or from overrides.
func deriveThrust(plate *DataPlate, in AirframeInputs, thrust *ThrustTest) error {
	if in.BCoefOverride != nil && in.MCoefOverride != nil {
		plate.B = *in.BCoefOverride
		plate.M = *in.MCoefOverride
		plate.Provenance.B = "override"
		plate.Provenance.M = "override"
		return nil
	}
	if thrust == nil {
		return wrapf(ErrNoFlightTest, "no ThrustTest and no b/m override")
	}

	hFt := aviation.InFeet(thrust.H)
	tF := aviation.InFahrenheit(thrust.T)
	wLbf := aviation.InPoundsForce(thrust.W)
	vCxFps := aviation.InFeetPerSecond(thrust.VCx)
	vCMFps := aviation.InFeetPerSecond(thrust.VCM)

	if wLbf <= 0 {
		return wrapf(ErrDomain, "ThrustTest.W must be positive")
	}

	stdAtmo := atmos.StandardAtmosphere{HFt: hFt, TF: &tF}
	sigma := stdAtmo.RelativeDensity()
	if sigma <= 0 {
		return wrapf(ErrDomain, "non-positive relative density at ThrustTest altitude")
	}
	rho := atmos.Rho0SlugFt3 * sigma
	phi := (sigma - plate.C) / (1 - plate.C)

	vX := stdAtmo.TrueAirspeed(vCxFps)
	vM := stdAtmo.TrueAirspeed(vCMFps)
	if vX <= 0 || vM <= 0 {
		return wrapf(ErrDomain, "ThrustTest produced a non-positive TAS")
	}

	sArea := aviation.InSquareFeet(plate.S)
	dFt := aviation.InFeet(plate.D)
	m0FtLbf := aviation.InFootPounds(plate.M0)

	b := (sArea*plate.CD0)/(2*dFt*dFt) -
		2*wLbf*wLbf/(rho*rho*dFt*dFt*sArea*math.Pi*plate.E*plate.A*vX*vX*vX*vX)

	m := (dFt * wLbf * wLbf) / (math.Pi * m0FtLbf * phi * rho * sArea * math.Pi * plate.E * plate.A) *
		(1/(vM*vM) + vM*vM/(vX*vX*vX*vX))

	if in.BCoefOverride != nil {
		plate.B = *in.BCoefOverride
		plate.Provenance.B = "override"
	} else {
		plate.B = b
		plate.Provenance.B = "thrusttest"
	}
	if in.MCoefOverride != nil {
		plate.M = *in.MCoefOverride
		plate.Provenance.M = "override"
	} else {
		plate.M = m
		plate.Provenance.M = "thrusttest"
	}
	return nil
}

// Validate checks the data plate's §3 invariants: positive geometry and
// power, a dropoff factor in (0, 1), a plausible drag/efficiency pair, a
// positive thrust-like coefficient m, and a negative drag-like coefficient
// b (negative is correct; see the design notes on the book's sign error).
func (p *DataPlate) Validate() error {
	if unit.Lower(p.S) <= 0 {
		return wrapf(ErrDomain, "S must be positive")
	}
	if p.A <= 0 {
		return wrapf(ErrDomain, "A must be positive")
	}
	if unit.Lower(p.D) <= 0 {
		return wrapf(ErrDomain, "D must be positive")
	}
	if unit.Lower(p.M0) <= 0 {
		return wrapf(ErrDomain, "M0 must be positive")
	}
	if p.C <= 0 || p.C >= 1 {
		return wrapf(ErrDomain, "C must be in (0, 1)")
	}
	if p.CD0 <= 0 {
		return wrapf(ErrDomain, "C_D0 must be positive, got %g", p.CD0)
	}
	if p.E <= 0 || p.E > 1 {
		return wrapf(ErrDomain, "e must be in (0, 1], got %g", p.E)
	}
	if p.M <= 0 {
		return wrapf(ErrDomain, "m must be positive, got %g", p.M)
	}
	if p.B >= 0 {
		return wrapf(ErrDomain, "b must be negative, got %g", p.B)
	}
	return nil
}
