package main

import (
	"fmt"

	"github.com/n6346d/bootstrap/bootstrap"
	"github.com/n6346d/bootstrap/unit"
	"github.com/n6346d/bootstrap/unit/aviation"
	"github.com/spf13/viper"
)

// dragTestConfig mirrors bootstrap.DragTest with plain-float,
// British-unit fields so it can be unmarshaled directly from a
// configuration file without pulling the unit system into the config
// schema.
type dragTestConfig struct {
	WeightLbf      float64 `mapstructure:"weightLbf"`
	AltitudeFt     float64 `mapstructure:"altitudeFt"`
	OATF           float64 `mapstructure:"oatF"`
	AltitudeLossFt float64 `mapstructure:"altitudeLossFt"`
	ElapsedSec     float64 `mapstructure:"elapsedSec"`
	VBestGlideKCAS float64 `mapstructure:"vBestGlideKCAS"`
}

type thrustTestConfig struct {
	WeightLbf      float64 `mapstructure:"weightLbf"`
	AltitudeFt     float64 `mapstructure:"altitudeFt"`
	OATF           float64 `mapstructure:"oatF"`
	VBestAngleKCAS float64 `mapstructure:"vBestAngleKCAS"`
	VMaxLevelKCAS  float64 `mapstructure:"vMaxLevelKCAS"`
}

// airframeConfig is the on-disk representation of an AirframeInputs plus
// its flight-test records. Fields use the British units the Bootstrap
// Approach's own worked examples are expressed in; the CLI lifts them to
// dimensional Quantities before calling the engine.
type airframeConfig struct {
	WingAreaFt2       float64 `mapstructure:"wingAreaFt2"`
	WingSpanFt        float64 `mapstructure:"wingSpanFt"`
	PropDiameterFt    float64 `mapstructure:"propDiameterFt"`
	RatedPowerHP      float64 `mapstructure:"ratedPowerHP"`
	RatedPropSpeedRPM float64 `mapstructure:"ratedPropSpeedRPM"`
	GearRatio         float64 `mapstructure:"gearRatio"`
	DropoffC          float64 `mapstructure:"dropoffC"`

	DragTest   *dragTestConfig   `mapstructure:"dragTest"`
	ThrustTest *thrustTestConfig `mapstructure:"thrustTest"`
}

// loadAirframe reads the configuration file cfg has been pointed at and
// converts it into the engine's AirframeInputs/DragTest/ThrustTest types.
func loadAirframe(cfg *viper.Viper) (bootstrap.AirframeInputs, *bootstrap.DragTest, *bootstrap.ThrustTest, error) {
	var ac airframeConfig
	if err := cfg.Unmarshal(&ac); err != nil {
		return bootstrap.AirframeInputs{}, nil, nil, fmt.Errorf("bootstrapquery: invalid configuration: %w", err)
	}
	if ac.WingAreaFt2 <= 0 {
		return bootstrap.AirframeInputs{}, nil, nil, fmt.Errorf("bootstrapquery: wingAreaFt2 must be positive")
	}

	in := bootstrap.AirframeInputs{
		S:            aviation.Foot2(ac.WingAreaFt2),
		PropDiameter: aviation.Foot(ac.PropDiameterFt),
		GearRatio:    ac.GearRatio,
	}
	if ac.WingSpanFt > 0 {
		in.WingSpan = aviation.Foot(ac.WingSpanFt)
	}
	if ac.RatedPowerHP > 0 && ac.RatedPropSpeedRPM > 0 {
		in.RatedPower = aviation.HorsePower(ac.RatedPowerHP)
		in.RatedPropSpeed = aviation.RPM(ac.RatedPropSpeedRPM)
	}
	if ac.DropoffC > 0 {
		c := ac.DropoffC
		in.DropoffC = &c
	}

	var drag *bootstrap.DragTest
	if ac.DragTest != nil {
		dt := ac.DragTest
		drag = &bootstrap.DragTest{
			W:    aviation.PoundForce(dt.WeightLbf),
			H:    aviation.Foot(dt.AltitudeFt),
			T:    aviation.Fahrenheit(dt.OATF),
			DH:   aviation.Foot(dt.AltitudeLossFt),
			DT:   aviation.Second(dt.ElapsedSec),
			VCbg: aviation.KnotsCAS(dt.VBestGlideKCAS),
		}
	}

	var thrust *bootstrap.ThrustTest
	if ac.ThrustTest != nil {
		tt := ac.ThrustTest
		thrust = &bootstrap.ThrustTest{
			W:   aviation.PoundForce(tt.WeightLbf),
			H:   aviation.Foot(tt.AltitudeFt),
			T:   aviation.Fahrenheit(tt.OATF),
			VCx: aviation.KnotsCAS(tt.VBestAngleKCAS),
			VCM: aviation.KnotsCAS(tt.VMaxLevelKCAS),
		}
	}

	return in, drag, thrust, nil
}

// operatingPoint bundles the weight/altitude/temperature a query
// subcommand was invoked with.
type operatingPoint struct {
	w *unit.Quantity
	h *unit.Quantity
	t *unit.Quantity
}

func readOperatingPoint(cfg *viper.Viper) operatingPoint {
	op := operatingPoint{
		w: aviation.PoundForce(cfg.GetFloat64("weight-lbf")),
		h: aviation.Foot(cfg.GetFloat64("altitude-ft")),
	}
	if cfg.IsSet("oat-f") {
		op.t = aviation.Fahrenheit(cfg.GetFloat64("oat-f"))
	}
	return op
}
