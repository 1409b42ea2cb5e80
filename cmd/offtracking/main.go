// Command offtracking checks a taxiway turn two ways: a closed-form
// steady-state estimate against the available taxiway half-width, and a
// kinematic simulation of the full manoeuvre with the resulting ground
// tracks rendered to PNG. Inputs are the constants below; edit and rerun
// per study.
package main

import (
	"fmt"
	"log/slog"
	"os"

	landinggear "github.com/PvdB-ElysianAircraft/LandingGear"
	"github.com/lmittmann/tint"
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
	est := landinggear.EstimateOfftrack(landinggear.OfftrackInput{
		SteeringAngle:      66.1,  // deg
		Wheelbase:          94.05, // ft
		CockpitArm:         99.27, // ft
		GearTrack:          42.22, // ft
		CockpitTurnRadius:  150,   // ft
		TaxiwayWidth:       23,    // m
		TurnAngle:          135,   // deg
		RequiredEdgeMargin: 4.0,   // m
	})

	fmt.Printf("Turn centre offset (m):                 %.2f\n", est.TurnCentreOffset)
	fmt.Printf("Nose gear turn radius (m):              %.2f\n", est.NoseGearTurnRadius)
	fmt.Printf("Cockpit turn radius (m):                %.2f\n", est.CockpitTurnRadius)
	fmt.Printf("Steady-state off-tracking (m):          %.2f\n", est.SteadyStateOfftrack)
	fmt.Printf("Corrected off-tracking (m):             %.2f\n", est.CorrectedOfftrack)
	fmt.Printf("Inner tyre outer edge position (m):     %.2f\n", est.InnerTyreOuterEdge)
	fmt.Printf("Required maximum position (m):          %.2f\n", est.MaxAllowedPosition)
	fmt.Printf("Extra fillet needed (m):                %.2f\n", est.ExtraFilletWidth)

	track := landinggear.SimulateTurn(landinggear.TurnPlan{
		TurnRadius:     45.0,  // m
		TurnAngle:      180.0, // deg
		Speed:          5.0,   // m/s
		TimeStep:       0.01,  // s
		StraightBefore: 10,    // s
		StraightAfter:  30,    // s
		Wheelbase:      14.6,  // m
		CockpitArm:     16.6,  // m
		GearTrack:      15,    // m
		TaxiwayWidth:   23.0,  // m
	})

	fmt.Printf("Maximum simulated off-tracking (m):     %.2f\n", track.MaxOfftracking())

	const chartPath = "turn_tracks.png"
	if err := landinggear.RenderTurnTracks(track, chartPath); err != nil {
		slog.Error("turn track render failed", "err", err)
		os.Exit(1)
	}
	slog.Info("turn tracks written", "path", chartPath)
}
