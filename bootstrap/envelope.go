package bootstrap

import (
	"runtime"
	"sync"

	"github.com/n6346d/bootstrap/unit"
	"gonum.org/v1/gonum/floats"
)

// EnvelopePoint is one airspeed's worth of Performance output from an
// Envelope sweep.
type EnvelopePoint struct {
	V           *unit.Quantity
	Performance Performance
	Err         error
}

// Envelope evaluates ComputePerformance once per airspeed in speeds, at a
// fixed weight and atmosphere. This is the concrete hook the out-of-scope
// notebook/plotting layer uses to sweep a V range; it issues O(10-10^3)
// independent queries exactly as the design notes describe.
func Envelope(plate *DataPlate, w, h, t *unit.Quantity, speeds []*unit.Quantity) []EnvelopePoint {
	out := make([]EnvelopePoint, len(speeds))
	for i, v := range speeds {
		perf, err := ComputePerformance(plate, v, w, h, t)
		out[i] = EnvelopePoint{V: v, Performance: perf, Err: err}
	}
	return out
}

// EnvelopeConcurrent is the same as Envelope but fans the sweep out across
// a bounded pool of goroutines, one of which runs per available CPU —
// mirroring the teacher's own NumProcessors-sized worker pools. Each
// operating point is an independent pure computation (§5), so this is
// trivially correct to parallelize.
func EnvelopeConcurrent(plate *DataPlate, w, h, t *unit.Quantity, speeds []*unit.Quantity) []EnvelopePoint {
	out := make([]EnvelopePoint, len(speeds))
	workers := runtime.NumCPU()
	if workers > len(speeds) {
		workers = len(speeds)
	}
	if workers < 1 {
		workers = 1
	}

	idx := make(chan int, len(speeds))
	for i := range speeds {
		idx <- i
	}
	close(idx)

	var wg sync.WaitGroup
	wg.Add(workers)
	for wk := 0; wk < workers; wk++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				perf, err := ComputePerformance(plate, speeds[i], w, h, t)
				out[i] = EnvelopePoint{V: speeds[i], Performance: perf, Err: err}
			}
		}()
	}
	wg.Wait()
	return out
}

// BestRateOfClimb returns the index and rate-of-climb value (raw SI
// magnitude — meters per second — as stored by Quantity.Value) of the
// fastest-climbing point in an Envelope/EnvelopeConcurrent result, ignoring
// points that errored. It returns ok=false if every point errored. Callers
// that need a display unit should convert points[idx].Performance.RateOfClimb
// with an aviation.In* helper instead of this raw value.
func BestRateOfClimb(points []EnvelopePoint) (idx int, rocSI float64, ok bool) {
	rocs := make([]float64, 0, len(points))
	indices := make([]int, 0, len(points))
	for i, p := range points {
		if p.Err != nil {
			continue
		}
		rocs = append(rocs, p.Performance.RateOfClimb.Value())
		indices = append(indices, i)
	}
	if len(rocs) == 0 {
		return 0, 0, false
	}
	best := floats.Max(rocs)
	for i, r := range rocs {
		if r == best {
			return indices[i], best, true
		}
	}
	return 0, 0, false
}
