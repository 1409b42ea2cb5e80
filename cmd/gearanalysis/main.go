// Command gearanalysis tabulates landing-gear reaction factors for one
// aircraft from the built-in databases, across the standard certification
// speed cases. Inputs are the constants below; edit and rerun per study.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	landinggear "github.com/PvdB-ElysianAircraft/LandingGear"
	"github.com/lmittmann/tint"
)

const (
	aircraftName       = "A320"
	mainAbsorberStroke = 0.50 // m
	noseAbsorberStroke = 0.50 // m
	noseMassFraction   = 0.15
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
	cfg := landinggear.DefaultAnalysisConfig()
	cfg.MainAbsorberStroke = mainAbsorberStroke
	cfg.NoseAbsorberStroke = noseAbsorberStroke
	cfg.NoseMassFraction = noseMassFraction

	results, err := landinggear.ComputeReactionFactors(aircraftName, cfg)
	if err != nil {
		slog.Error("reaction factor analysis failed", "aircraft", aircraftName, "err", err)
		os.Exit(1)
	}

	slog.Info("reaction factor analysis", "aircraft", aircraftName, "cases", len(results))

	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "gear\ttyre\tV [m/s]\tmass [kg]\tlambda\tx_a [m]\tx_t [m]")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.0f\t%.4f\t%.3f\t%.4f\n",
			r.Gear, r.TyreCode, r.Speed, r.Mass, r.Lambda, r.AbsorberStroke, r.TyreStroke)
	}
	tw.Flush()
}
