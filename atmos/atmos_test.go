package atmos

import (
	"math"
	"testing"
)

func TestStdTemperatureSeaLevel(t *testing.T) {
	got := StdTemperature(0)
	if math.Abs(got-59.0) > 1e-9 {
		t.Errorf("StdTemperature(0) = %v, want 59 °F", got)
	}
}

func TestStdTemperatureTropopause(t *testing.T) {
	got := StdTemperature(36090)
	wantC := -56.5
	gotC := (got - 32) * 5 / 9
	if math.Abs(gotC-wantC) > 0.1 {
		t.Errorf("StdTemperature(36090) = %v °F (%v °C), want ≈ %v °C", got, gotC, wantC)
	}
}

func TestRelativeDensitySeaLevelIsOne(t *testing.T) {
	t0 := StdTemperature(0)
	got := RelativeDensity(0, &t0)
	if math.Abs(got-1.0) > 1e-12 {
		t.Errorf("RelativeDensity(0, T0) = %v, want exactly 1", got)
	}
}

func TestRelativeDensityMonotonicallyDecreasing(t *testing.T) {
	prev := RelativeDensity(0, nil)
	for _, h := range []float64{1000, 5000, 10000, 20000, 30000} {
		got := RelativeDensity(h, nil)
		if got >= prev {
			t.Errorf("RelativeDensity not decreasing at h=%v: prev=%v got=%v", h, prev, got)
		}
		prev = got
	}
}

func TestDensityMatchesRho0TimesSigma(t *testing.T) {
	h, tF := 5000.0, 41.0
	sigma := RelativeDensity(h, &tF)
	rho := Density(h, &tF)
	if math.Abs(rho-Rho0SlugFt3*sigma) > 1e-12 {
		t.Errorf("Density != Rho0*sigma: rho=%v rho0*sigma=%v", rho, Rho0SlugFt3*sigma)
	}
}

func TestAirspeedRoundTrip(t *testing.T) {
	h, tF := 8000.0, 30.0
	vCAS := 90.0
	vTAS := TrueAirspeed(vCAS, h, &tF)
	gotCAS := CalibratedAirspeed(vTAS, h, &tF)
	if math.Abs(gotCAS-vCAS) > 1e-9 {
		t.Errorf("CAS round trip: got %v, want %v", gotCAS, vCAS)
	}

	vTAS2 := 150.0
	gotCAS2 := CalibratedAirspeed(vTAS2, h, &tF)
	gotTAS2 := TrueAirspeed(gotCAS2, h, &tF)
	if math.Abs(gotTAS2-vTAS2) > 1e-9 {
		t.Errorf("TAS round trip: got %v, want %v", gotTAS2, vTAS2)
	}
}

func TestFlightPathAngleDegenerate(t *testing.T) {
	if _, err := FlightPathAngle(200, 0, 17); err == nil {
		t.Error("expected error for zero airspeed")
	}
	if _, err := FlightPathAngle(200, 100, 0); err == nil {
		t.Error("expected error for zero elapsed time")
	}
	if _, err := FlightPathAngle(200, 100, -5); err == nil {
		t.Error("expected error for negative elapsed time")
	}
}

func TestStandardAtmosphereMethodsMatchFunctions(t *testing.T) {
	h, tF := 5000.0, 41.0
	a := StandardAtmosphere{HFt: h, TF: &tF}

	if got, want := a.RelativeDensity(), RelativeDensity(h, &tF); got != want {
		t.Errorf("RelativeDensity() = %v, want %v", got, want)
	}
	if got, want := a.Density(), Density(h, &tF); got != want {
		t.Errorf("Density() = %v, want %v", got, want)
	}
	if got, want := a.TrueAirspeed(120), TrueAirspeed(120, h, &tF); got != want {
		t.Errorf("TrueAirspeed() = %v, want %v", got, want)
	}
	if got, want := a.CalibratedAirspeed(120), CalibratedAirspeed(120, h, &tF); got != want {
		t.Errorf("CalibratedAirspeed() = %v, want %v", got, want)
	}

	pressureOnly := StandardAtmosphere{HFt: h}
	if got, want := pressureOnly.RelativeDensity(), RelativeDensity(h, nil); got != want {
		t.Errorf("RelativeDensity() with nil TF = %v, want %v", got, want)
	}
}

func TestDensityAltitudeRoundTrip(t *testing.T) {
	hFt, tF := 5000.0, 41.0
	hDensity := DensityAltitude(hFt, tF)
	// Standard day at the resulting density altitude should reproduce the
	// same relative density as the pressure-altitude-only model.
	sigmaAtDensityAlt := RelativeDensity(hDensity, nil)
	sigmaObserved := RelativeDensity(hFt, &tF)
	if math.Abs(sigmaAtDensityAlt-sigmaObserved) > 1e-9 {
		t.Errorf("density altitude round trip failed: sigma(hDensity)=%v sigma(h,T)=%v",
			sigmaAtDensityAlt, sigmaObserved)
	}
}
