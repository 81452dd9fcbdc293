package aviation_test

import (
	"math"
	"testing"

	"github.com/n6346d/bootstrap/unit/aviation"
)

func TestFootRoundTrip(t *testing.T) {
	want := 174.0
	q := aviation.Foot(want)
	got := aviation.InFeet(q)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Foot round trip: got %v, want %v", got, want)
	}
}

func TestKnotRoundTrip(t *testing.T) {
	want := 70.0
	got := aviation.InKnots(aviation.Knot(want))
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Knot round trip: got %v, want %v", got, want)
	}
}

func TestSlugRoundTrip(t *testing.T) {
	want := 2200.0 / 32.17405 // lbf / g -> slugs, arbitrary nonzero value
	got := aviation.InSlugs(aviation.Slug(want))
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Slug round trip: got %v, want %v", got, want)
	}
}

func TestPoundForceRoundTrip(t *testing.T) {
	want := 2200.0
	got := aviation.InPoundsForce(aviation.PoundForce(want))
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("PoundForce round trip: got %v, want %v", got, want)
	}
}

func TestHorsePowerRoundTrip(t *testing.T) {
	want := 160.0
	got := aviation.InHorsePower(aviation.HorsePower(want))
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("HorsePower round trip: got %v, want %v", got, want)
	}
}

func TestFahrenheitRoundTrip(t *testing.T) {
	want := 41.0
	got := aviation.InFahrenheit(aviation.Fahrenheit(want))
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("Fahrenheit round trip: got %v, want %v", got, want)
	}
}

func TestRPMToAngularVelocity(t *testing.T) {
	// 2700 RPM = 45 rev/s = 282.74 rad/s
	got := aviation.InRevolutionsPerSecond(aviation.RPM(2700))
	want := 2700.0 / 60.0
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("RPM->rev/s: got %v, want %v", got, want)
	}
}

func TestFootPoundTorqueRoundTrip(t *testing.T) {
	want := 311.2
	got := aviation.InFootPounds(aviation.FootPound(want))
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("FootPound round trip: got %v, want %v", got, want)
	}
}
