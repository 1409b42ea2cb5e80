// Command gearsizing computes the main/nose stroke breakdown at assumed
// design reaction factors, sizes both oleo-pneumatic struts against the
// AS4716 seal gland table, and renders the isothermal spring curves.
// Inputs are the constants below; edit and rerun per study.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	landinggear "github.com/PvdB-ElysianAircraft/LandingGear"
	"github.com/lmittmann/tint"
)

// Sizing study constants.
const (
	mtom = 76000.0 // kg
	mlm  = 76000.0 // kg

	mlgTyreCode = "1270x455R22"
	nlgTyreCode = "30x8.8R15"

	mlgLambda        = 1.1
	nlgLambda        = 1.2
	noseMassFraction = 0.15

	// Design margins applied to the computed absorber strokes.
	mlgStrokeMargin = 1.20
	nlgStrokeMargin = 1.10
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	mlgTyre, err := landinggear.LookupTyre(mlgTyreCode)
	if err != nil {
		fatal("tyre lookup failed", err)
	}
	nlgTyre, err := landinggear.LookupTyre(nlgTyreCode)
	if err != nil {
		fatal("tyre lookup failed", err)
	}

	solver := landinggear.DefaultSolverConfig()
	rows := landinggear.StrokeBreakdown(landinggear.BreakdownInput{
		MTOM:             mtom,
		MLM:              mlm,
		MainLambda:       mlgLambda,
		NoseLambda:       nlgLambda,
		NoseMassFraction: noseMassFraction,
		MainTyre:         mlgTyre,
		NoseTyre:         nlgTyre,
		NumMainTyres:     4,
		NumNoseTyres:     2,
	}, landinggear.StandardSpeedCases, solver)

	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "V [m/s]\tmass [kg]\tMLG x_t [m]\tMLG x_a [m]\tMLG x_a margin [m]\tNLG x_t [m]\tNLG x_a [m]\tNLG x_a margin [m]")
	for _, row := range rows {
		fmt.Fprintf(tw, "%.2f\t%.0f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			row.Speed, row.Mass,
			row.Main.TyreStroke, row.Main.AbsorberStroke, row.Main.AbsorberStroke*mlgStrokeMargin,
			row.Nose.TyreStroke, row.Nose.AbsorberStroke, row.Nose.AbsorberStroke*nlgStrokeMargin)
	}
	tw.Flush()

	glands := landinggear.StandardSealGlands()

	mlg, err := landinggear.SizeStrut(landinggear.SizingInput{
		RampMass:             mtom,
		LandingMass:          mlm,
		LoadFraction:         0.95,
		ReactionFactor:       mlgLambda,
		AbsorberTravel:       0.6,
		BreakoutLoadFraction: 0.17,
		StaticGasPressure:    13.0e6,
		NumGearLegs:          2,
		MaxGroundLoadFactor:  1.7,
		LimitStroke:          0.500,
	}, glands)
	if err != nil {
		fatal("MLG strut sizing failed", err)
	}
	report("MLG", mlg, 0.6, 0.500, "mlg_spring_curve.png")

	nlg, err := landinggear.SizeStrut(landinggear.SizingInput{
		RampMass:             mtom,
		LandingMass:          mlm,
		LoadFraction:         0.15,
		ReactionFactor:       nlgLambda,
		AbsorberTravel:       0.5,
		BreakoutLoadFraction: 0.15,
		StaticGasPressure:    13.0e6,
		NumGearLegs:          1,
		MaxGroundLoadFactor:  2.2,
		LimitStroke:          0.450,
	}, glands)
	if err != nil {
		fatal("NLG strut sizing failed", err)
	}
	report("NLG", nlg, 0.5, 0.450, "nlg_spring_curve.png")
}

func report(gear string, s landinggear.StrutSizing, travel, limitStroke float64, chartPath string) {
	slog.Info(gear+" strut sized",
		"piston_diameter_mm", fmt.Sprintf("%.1f", s.PistonDiameter*1000),
		"seal_gland", s.SealGland.Dash,
		"P0_MPa", fmt.Sprintf("%.2f", s.BreakoutPressure/1e6),
		"P1_MPa", fmt.Sprintf("%.2f", s.StaticPressure/1e6),
		"P2_MPa", fmt.Sprintf("%.2f", s.MaxPressure/1e6),
		"compression_ratio", fmt.Sprintf("%.2f", s.CompressionRatio()),
		"static_stroke_mm", fmt.Sprintf("%.1f", s.StaticStroke*1000))

	curve := landinggear.SpringCurve(s, travel)
	if err := landinggear.RenderSpringCurve(s, curve, limitStroke, chartPath); err != nil {
		fatal(gear+" spring curve render failed", err)
	}
	slog.Info(gear+" spring curve written", "path", chartPath)
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}
