package main

import (
	"fmt"

	"github.com/n6346d/bootstrap/bootstrap"
	"github.com/n6346d/bootstrap/unit"
	"github.com/n6346d/bootstrap/unit/aviation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// buildPlate loads the airframe configuration bound to cfg and builds a
// data plate from it. Every subcommand starts here.
func buildPlate(cfg *viper.Viper) (*bootstrap.DataPlate, error) {
	in, drag, thrust, err := loadAirframe(cfg)
	if err != nil {
		return nil, err
	}
	plate, err := bootstrap.Build(in, drag, thrust)
	if err != nil {
		return nil, fmt.Errorf("bootstrapquery: building data plate: %w", err)
	}
	return plate, nil
}

func plateCmd(cfg *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "plate",
		Short: "Print the derived data plate.",
		Long:  "plate builds the data plate from the configured airframe and flight tests and prints its coefficients.",
		RunE: func(cmd *cobra.Command, args []string) error {
			plate, err := buildPlate(cfg)
			if err != nil {
				return err
			}
			fmt.Printf("A     = %.4f\n", plate.A)
			fmt.Printf("M0    = %.2f ft*lbf\n", aviation.InFootPounds(plate.M0))
			fmt.Printf("C     = %.3f\n", plate.C)
			fmt.Printf("CD0   = %.5f  (from %s)\n", plate.CD0, plate.Provenance.CD0)
			fmt.Printf("e     = %.4f  (from %s)\n", plate.E, plate.Provenance.E)
			fmt.Printf("b     = %.5f  (from %s)\n", plate.B, plate.Provenance.B)
			fmt.Printf("m     = %.4f  (from %s)\n", plate.M, plate.Provenance.M)
			return nil
		},
	}
}

func compositesCmd(cfg *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "composites",
		Short: "Print the bootstrap composites at a weight and altitude.",
		RunE: func(cmd *cobra.Command, args []string) error {
			plate, err := buildPlate(cfg)
			if err != nil {
				return err
			}
			op := readOperatingPoint(cfg)
			comp, err := bootstrap.ComputeComposites(plate, op.w, op.h, op.t)
			if err != nil {
				return err
			}
			fmt.Printf("E = %.6g\nF = %.6g\nG = %.6g\nH = %.6g\nK = %.6g\nQ = %.6g\nR = %.6g\nU = %.6g\n",
				comp.E, comp.F, comp.G, comp.H, comp.K, comp.Q, comp.R, comp.U)
			return nil
		},
	}
}

func printVSpeed(name string, q *unit.Quantity) {
	if q == nil {
		fmt.Printf("%-4s = (above ceiling)\n", name)
		return
	}
	fmt.Printf("%-4s = %.1f kt CAS\n", name, aviation.InKnots(q))
}

func vspeedsCmd(cfg *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "vspeeds",
		Short: "Print the characteristic V-speeds at a weight and altitude.",
		RunE: func(cmd *cobra.Command, args []string) error {
			plate, err := buildPlate(cfg)
			if err != nil {
				return err
			}
			op := readOperatingPoint(cfg)
			comp, err := bootstrap.ComputeComposites(plate, op.w, op.h, op.t)
			if err != nil {
				return err
			}
			speeds := bootstrap.SolveVSpeeds(plate, comp, op.h, op.t)
			printVSpeed("Vx", speeds.Vx)
			printVSpeed("Vy", speeds.Vy)
			printVSpeed("VM", speeds.VM)
			printVSpeed("Vbg", speeds.Vbg)
			printVSpeed("Vmd", speeds.Vmd)
			if speeds.Ceiling() {
				logger.Warn("operating point is at or above the absolute ceiling")
			}
			return nil
		},
	}
}

func performanceCmd(cfg *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "performance",
		Short: "Print point performance at an airspeed, weight, and altitude.",
		RunE: func(cmd *cobra.Command, args []string) error {
			plate, err := buildPlate(cfg)
			if err != nil {
				return err
			}
			op := readOperatingPoint(cfg)
			v := aviation.KnotsCAS(cfg.GetFloat64("airspeed-kcas"))
			perf, err := bootstrap.ComputePerformance(plate, v, op.w, op.h, op.t)
			if err != nil {
				return err
			}
			fmt.Printf("Thrust          = %.1f lbf\n", aviation.InPoundsForce(perf.Thrust))
			fmt.Printf("Power available = %.1f hp\n", aviation.InHorsePower(perf.PowerAvailable))
			fmt.Printf("Parasite drag   = %.1f lbf\n", aviation.InPoundsForce(perf.ParasiteDrag))
			fmt.Printf("Induced drag    = %.1f lbf\n", aviation.InPoundsForce(perf.InducedDrag))
			fmt.Printf("Drag            = %.1f lbf\n", aviation.InPoundsForce(perf.Drag))
			fmt.Printf("Power required  = %.1f hp\n", aviation.InHorsePower(perf.PowerRequired))
			fmt.Printf("Excess power    = %.1f hp\n", aviation.InHorsePower(perf.ExcessPower))
			fmt.Printf("Excess thrust   = %.1f lbf\n", aviation.InPoundsForce(perf.ExcessThrust))
			fmt.Printf("Rate of climb   = %.0f ft/min\n", aviation.InFeetPerMinute(perf.RateOfClimb))
			fmt.Printf("Flight path angle = %.2f deg\n", aviation.InDegrees(perf.FlightPathAngle))
			return nil
		},
	}
	cmd.Flags().Float64("airspeed-kcas", 0, "calibrated airspeed in knots")
	cfg.BindPFlag("airspeed-kcas", cmd.Flags().Lookup("airspeed-kcas"))
	return cmd
}

func envelopeCmd(cfg *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envelope",
		Short: "Sweep airspeed and print a performance envelope.",
		RunE: func(cmd *cobra.Command, args []string) error {
			plate, err := buildPlate(cfg)
			if err != nil {
				return err
			}
			op := readOperatingPoint(cfg)

			minKt := cfg.GetFloat64("min-kcas")
			maxKt := cfg.GetFloat64("max-kcas")
			stepKt := cfg.GetFloat64("step-kcas")
			if stepKt <= 0 {
				return fmt.Errorf("bootstrapquery: --step-kcas must be positive")
			}
			if maxKt < minKt {
				return fmt.Errorf("bootstrapquery: --max-kcas must be >= --min-kcas")
			}

			var speeds []*unit.Quantity
			for kt := minKt; kt <= maxKt; kt += stepKt {
				speeds = append(speeds, aviation.KnotsCAS(kt))
			}

			var points []bootstrap.EnvelopePoint
			if cfg.GetBool("concurrent") {
				points = bootstrap.EnvelopeConcurrent(plate, op.w, op.h, op.t, speeds)
			} else {
				points = bootstrap.Envelope(plate, op.w, op.h, op.t, speeds)
			}

			fmt.Printf("%8s  %10s  %10s\n", "V (kt)", "ROC (fpm)", "xs thrust")
			for _, p := range points {
				if p.Err != nil {
					fmt.Printf("%8.1f  %10s  %10s  (%v)\n", aviation.InKnots(p.V), "-", "-", p.Err)
					continue
				}
				fmt.Printf("%8.1f  %10.0f  %10.1f\n",
					aviation.InKnots(p.V),
					aviation.InFeetPerMinute(p.Performance.RateOfClimb),
					aviation.InPoundsForce(p.Performance.ExcessThrust))
			}

			if idx, _, ok := bootstrap.BestRateOfClimb(points); ok {
				best := points[idx]
				logger.Infof("best rate of climb %.0f ft/min at %.1f kt",
					aviation.InFeetPerMinute(best.Performance.RateOfClimb), aviation.InKnots(best.V))
			} else {
				logger.Warn("no valid performance point in the swept range")
			}
			return nil
		},
	}
	cmd.Flags().Float64("min-kcas", 40, "sweep start airspeed in knots")
	cmd.Flags().Float64("max-kcas", 140, "sweep end airspeed in knots")
	cmd.Flags().Float64("step-kcas", 5, "sweep step in knots")
	cmd.Flags().Bool("concurrent", false, "evaluate the sweep across a worker pool")
	cfg.BindPFlag("min-kcas", cmd.Flags().Lookup("min-kcas"))
	cfg.BindPFlag("max-kcas", cmd.Flags().Lookup("max-kcas"))
	cfg.BindPFlag("step-kcas", cmd.Flags().Lookup("step-kcas"))
	cfg.BindPFlag("concurrent", cmd.Flags().Lookup("concurrent"))
	return cmd
}
