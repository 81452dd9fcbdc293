package unit_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/n6346d/bootstrap/unit"
)

func TestMulDivDimensions(t *testing.T) {
	v := unit.New(10, unit.Velocity)
	tm := unit.New(2, unit.Time)
	length := v.Mul(tm)
	if !length.Dimensions().Matches(unit.Length) {
		t.Errorf("velocity*time dimensions = %v, want Length", length.Dimensions())
	}
	if math.Abs(length.Value()-20) > 1e-12 {
		t.Errorf("velocity*time value = %v, want 20", length.Value())
	}

	back := length.Div(tm)
	if !back.Dimensions().Matches(unit.Velocity) {
		t.Errorf("length/time dimensions = %v, want Velocity", back.Dimensions())
	}
}

func TestAddPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic adding mismatched dimensions")
		}
	}()
	unit.New(1, unit.Length).Add(unit.New(1, unit.Mass))
}

func TestCheck(t *testing.T) {
	q := unit.New(5, unit.Force)
	if err := q.Check(unit.Force); err != nil {
		t.Errorf("Check(Force) on a Force quantity returned %v", err)
	}
	if err := q.Check(unit.Velocity); err == nil {
		t.Error("Check(Velocity) on a Force quantity should have errored")
	}
}

func TestLift(t *testing.T) {
	got, err := unit.Lift(nil, unit.Length, 42)
	if err != nil {
		t.Fatal(err)
	}
	if got.Value() != 42 {
		t.Errorf("Lift(nil, ...) value = %v, want 42", got.Value())
	}

	existing := unit.New(3, unit.Length)
	got2, err := unit.Lift(existing, unit.Length, 99)
	if err != nil {
		t.Fatal(err)
	}
	if got2 != existing {
		t.Error("Lift with a matching existing quantity should return it unchanged")
	}

	if _, err := unit.Lift(unit.New(1, unit.Mass), unit.Length, 1); err == nil {
		t.Error("Lift should error on a dimension mismatch")
	}
}

func TestFormat(t *testing.T) {
	v := unit.New(12.5, unit.Velocity)
	got := fmt.Sprintf("%.1f", v)
	want := "12.5 m s^-1"
	if got != want {
		t.Errorf("Format(%%.1f) = %q, want %q", got, want)
	}

	dimensionless := unit.New(3, unit.Dimensionless)
	if got := fmt.Sprintf("%g", dimensionless); got != "3" {
		t.Errorf("Format(%%g) of a dimensionless quantity = %q, want %q", got, "3")
	}
}

func TestMaxMin(t *testing.T) {
	a := unit.New(3, unit.Force)
	b := unit.New(5, unit.Force)
	if unit.Max(a, b).Value() != 5 {
		t.Error("Max did not return the larger value")
	}
	if unit.Min(a, b).Value() != 3 {
		t.Error("Min did not return the smaller value")
	}
}
