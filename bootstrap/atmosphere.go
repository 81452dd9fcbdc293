package bootstrap

import (
	"github.com/n6346d/bootstrap/atmos"
	"github.com/n6346d/bootstrap/unit"
	"github.com/n6346d/bootstrap/unit/aviation"
)

// standardAtmosphere lowers a (pressure altitude, OAT) pair of Quantities
// to the atmos package's British-engineering-unit StandardAtmosphere, the
// bundle every atmosphere query in this package is built from. t may be
// nil, selecting the pure pressure-altitude density model.
func standardAtmosphere(h, t *unit.Quantity) atmos.StandardAtmosphere {
	a := atmos.StandardAtmosphere{HFt: aviation.InFeet(h)}
	if t != nil {
		f := aviation.InFahrenheit(t)
		a.TF = &f
	}
	return a
}
