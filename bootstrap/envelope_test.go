package bootstrap_test

import (
	"testing"

	"github.com/n6346d/bootstrap/bootstrap"
	"github.com/n6346d/bootstrap/unit"
	"github.com/n6346d/bootstrap/unit/aviation"
)

func TestEnvelopeAndEnvelopeConcurrentAgree(t *testing.T) {
	plate := c172Plate(t)
	w := aviation.PoundForce(2400)
	h := aviation.Foot(0)

	speeds := make([]*unit.Quantity, 0, 40)
	for kt := 50.0; kt <= 130; kt += 2 {
		speeds = append(speeds, aviation.KnotsCAS(kt))
	}

	serial := bootstrap.Envelope(plate, w, h, nil, speeds)
	concurrent := bootstrap.EnvelopeConcurrent(plate, w, h, nil, speeds)

	if len(serial) != len(concurrent) {
		t.Fatalf("length mismatch: serial=%d concurrent=%d", len(serial), len(concurrent))
	}
	for i := range serial {
		s, c := serial[i], concurrent[i]
		if (s.Err == nil) != (c.Err == nil) {
			t.Fatalf("point %d: error mismatch serial=%v concurrent=%v", i, s.Err, c.Err)
		}
		if s.Err != nil {
			continue
		}
		sROC := s.Performance.RateOfClimb.Value()
		cROC := c.Performance.RateOfClimb.Value()
		if sROC != cROC {
			t.Errorf("point %d: ROC mismatch serial=%v concurrent=%v", i, sROC, cROC)
		}
	}
}

func TestBestRateOfClimbMatchesVy(t *testing.T) {
	plate := c172Plate(t)
	w := aviation.PoundForce(2400)
	h := aviation.Foot(0)

	speeds := make([]*unit.Quantity, 0, 40)
	for kt := 50.0; kt <= 130; kt += 1 {
		speeds = append(speeds, aviation.KnotsCAS(kt))
	}
	points := bootstrap.Envelope(plate, w, h, nil, speeds)

	idx, roc, ok := bootstrap.BestRateOfClimb(points)
	if !ok {
		t.Fatal("expected a best rate of climb")
	}
	if roc <= 0 {
		t.Errorf("best ROC = %v, want positive", roc)
	}

	bestKt := aviation.InKnots(speeds[idx])
	// Vy (best rate of climb speed) is ~75.8 kt for this operating point
	// (Scenario D); the coarse 1-knot sweep should land within a couple
	// knots of it.
	if closeEnough(bestKt, 75.8, 3.0) == false {
		t.Errorf("best-ROC airspeed = %v kt, want near Vy ≈75.8 kt", bestKt)
	}
}

func TestBestRateOfClimbAllErrored(t *testing.T) {
	points := []bootstrap.EnvelopePoint{
		{Err: bootstrap.ErrDomain},
		{Err: bootstrap.ErrDomain},
	}
	if _, _, ok := bootstrap.BestRateOfClimb(points); ok {
		t.Error("expected ok=false when every point errored")
	}
}
