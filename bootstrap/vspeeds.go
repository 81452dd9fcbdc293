package bootstrap

import (
	"math"

	"github.com/n6346d/bootstrap/unit"
	"github.com/n6346d/bootstrap/unit/aviation"
)

// SolveVSpeeds extracts Vx, Vy, VM, Vbg, and Vmd from comp, the composites
// at a given operating point. Vbg and Vmd depend only on U and are always
// defined for U > 0.
//
// Vx, Vy, and VM all come back nil together at or above the absolute
// ceiling. The ceiling test is VM's radicand, Q²/4+R: since K₀ = F₀ - G₀ is
// always negative (F₀ carries the plate's negative b, G₀ is the always-
// positive parasite-drag term), R < 0 at every altitude for every valid
// plate, so R's own sign can never signal the ceiling the way the naive
// per-speed radicand check would suggest — Vx's literal radicand -R and
// Vy's literal radicand Q²/36-R/3 are both positive at every altitude, not
// just below the ceiling. The climb/level-flight curves meet (Vx=Vy) where
// excess power first reaches zero, which is exactly where VM's solution
// disappears (Q²/4+R < 0, or the resulting V² is non-positive): above that
// point thrust never reaches drag at any speed, so Vx and Vy are reported
// absent along with VM rather than as spurious real solutions.
func SolveVSpeeds(plate *DataPlate, comp Composites, h, t *unit.Quantity) VSpeeds {
	stdAtmo := standardAtmosphere(h, t)

	toCAS := func(vSquared float64) *unit.Quantity {
		if vSquared <= 0 {
			return nil
		}
		vTAS := math.Sqrt(vSquared)
		vCAS := stdAtmo.CalibratedAirspeed(vTAS)
		if plate.Calibration != nil {
			vCAS = plate.Calibration(vCAS)
		}
		return aviation.FootPerSecond(vCAS)
	}

	vmRadicand := comp.Q*comp.Q/4 + comp.R
	var vm2 float64
	ceiling := vmRadicand < 0
	if !ceiling {
		vm2 = -comp.Q/2 + math.Sqrt(vmRadicand)
		ceiling = vm2 <= 0
	}

	var speeds VSpeeds
	if !ceiling {
		if comp.R < 0 {
			speeds.Vx = toCAS(math.Sqrt(-comp.R))
		}
		if vyRadicand := comp.Q*comp.Q/36 - comp.R/3; vyRadicand >= 0 {
			speeds.Vy = toCAS(-comp.Q/6 + math.Sqrt(vyRadicand))
		}
		speeds.VM = toCAS(vm2)
	}
	if comp.U > 0 {
		speeds.Vbg = toCAS(math.Sqrt(comp.U))
		speeds.Vmd = toCAS(math.Sqrt(comp.U / 3))
	}
	return speeds
}
