package bootstrap

import (
	"math"

	"github.com/n6346d/bootstrap/atmos"
	"github.com/n6346d/bootstrap/unit"
	"github.com/n6346d/bootstrap/unit/aviation"
)

// ComputeComposites derives the eight bootstrap composites {E, F, G, H, K,
// Q, R, U} from plate at weight w and atmosphere (h, t). t may be nil, in
// which case the pure pressure-altitude standard-atmosphere density model
// is used. The W² terms (H, R, U) are recomputed from the current w on
// every call rather than cached against a reference weight, matching the
// composite evaluator's design: it avoids retaining a W0 reference and
// makes weight variation a non-event.
func ComputeComposites(plate *DataPlate, w, h, t *unit.Quantity) (Composites, error) {
	if unit.Lower(w) <= 0 {
		return Composites{}, wrapf(ErrDomain, "W must be positive")
	}
	stdAtmo := standardAtmosphere(h, t)
	sigma := stdAtmo.RelativeDensity()
	if sigma <= 0 {
		return Composites{}, wrapf(ErrDomain, "non-positive relative density")
	}
	phi := (sigma - plate.C) / (1 - plate.C)

	wLbf := aviation.InPoundsForce(w)
	sArea := aviation.InSquareFeet(plate.S)
	dFt := aviation.InFeet(plate.D)
	m0FtLbf := aviation.InFootPounds(plate.M0)
	rho0 := atmos.Rho0SlugFt3

	e0 := plate.M * m0FtLbf * 2 * math.Pi / dFt
	f0 := rho0 * dFt * dFt * plate.B
	g0 := rho0 * sArea * plate.CD0 / 2
	h0 := 2 * wLbf * wLbf / (rho0 * sArea * math.Pi * plate.E * plate.A)
	k0 := f0 - g0
	if k0 == 0 {
		return Composites{}, wrapf(ErrDomain, "K0 is zero; F0 and G0 coincide")
	}
	q0 := e0 / k0
	r0 := h0 / k0
	u0 := h0 / g0

	return Composites{
		E: phi * e0,
		F: sigma * f0,
		G: sigma * g0,
		H: h0 / sigma,
		K: sigma * k0,
		Q: (phi / sigma) * q0,
		R: r0 / (sigma * sigma),
		U: u0 / (sigma * sigma),
	}, nil
}
