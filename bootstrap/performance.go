package bootstrap

import (
	"math"

	"github.com/n6346d/bootstrap/unit"
	"github.com/n6346d/bootstrap/unit/aviation"
)

// ComputePerformance evaluates thrust, power, drag, rate of climb, and
// flight-path angle at calibrated airspeed v, weight w, and atmosphere
// (h, t). It does not clamp or validate v against stall or Vne — callers
// that care about those bounds (plate.Vs0, plate.Vne) check them
// themselves.
func ComputePerformance(plate *DataPlate, v, w, h, t *unit.Quantity) (Performance, error) {
	comp, err := ComputeComposites(plate, w, h, t)
	if err != nil {
		return Performance{}, err
	}

	stdAtmo := standardAtmosphere(h, t)
	vCAS := aviation.InFeetPerSecond(v)
	if vCAS <= 0 {
		return Performance{}, wrapf(ErrDomain, "V must be positive")
	}
	vTAS := stdAtmo.TrueAirspeed(vCAS)
	v2 := vTAS * vTAS

	wLbf := aviation.InPoundsForce(w)

	thrust := comp.E + comp.F*v2
	pAv := thrust * vTAS
	dp := comp.G * v2
	di := comp.H / v2
	drag := dp + di
	pRe := drag * vTAS
	pXs := pAv - pRe
	tXs := thrust - drag
	roc := pXs / wLbf
	gammaRatio := tXs / wLbf
	if gammaRatio < -1 || gammaRatio > 1 {
		return Performance{}, wrapf(ErrDomain, "excess-thrust ratio %g outside [-1, 1]", gammaRatio)
	}
	gamma := math.Asin(gammaRatio)

	return Performance{
		Thrust:          aviation.PoundForce(thrust),
		PowerAvailable:  footLbfPerSecToPower(pAv),
		ParasiteDrag:    aviation.PoundForce(dp),
		InducedDrag:     aviation.PoundForce(di),
		Drag:            aviation.PoundForce(drag),
		PowerRequired:   footLbfPerSecToPower(pRe),
		ExcessPower:     footLbfPerSecToPower(pXs),
		ExcessThrust:    aviation.PoundForce(tXs),
		RateOfClimb:     aviation.FootPerSecond(roc),
		FlightPathAngle: unit.New(gamma, unit.Angle),
	}, nil
}

// footLbfPerSecToPower wraps a power value expressed in ft*lbf/s (the
// British engineering unit power falls out in from T*V) into a Quantity.
func footLbfPerSecToPower(ftLbfPerSec float64) *unit.Quantity {
	hp := ftLbfPerSec / 550.0
	return aviation.HorsePower(hp)
}
