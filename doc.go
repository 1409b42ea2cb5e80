// Package landinggear sizes and analyzes aircraft landing-gear
// shock-absorber systems.
//
// # Overview
//
// The package covers three calculation families:
//
//   - reaction.go  - reaction factor / tyre stroke fixed-point solver
//   - sizing.go    - stroke breakdown and oleo-pneumatic strut sizing
//   - offtrack.go  - taxiway off-tracking (closed-form and simulated)
//   - db.go        - embedded aircraft / tyre / AS4716 seal gland tables
//   - plot.go      - spring curve and ground track charts (gonum/plot)
//
// # Reaction factor
//
// At touchdown the dynamic reaction factor λ and the tyre stroke x_t are
// mutually dependent: λ follows from the kinetic energy absorbed over the
// combined absorber and tyre stroke, while the tyre stroke follows from the
// load each tyre reacts at that λ.
//
//	λ   = V² / (2g(η_a·x_a + η_t·x_t))
//	x_t = 0.9·λ·g·m·(r_max − r_min) / (P·n)
//
// SolveReactionFactor resolves the pair by fixed-point iteration:
//
//	res, err := landinggear.SolveReactionFactor(
//	    3.05, 0.5, 76000, rMax, rMin, loadRating, 4,
//	    landinggear.DefaultSolverConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("λ = %.3f, x_t = %.3f m\n", res.Lambda, res.TyreStroke)
//
// ComputeReactionFactors wraps the solver for a named aircraft from the
// embedded database, evaluating the standard certification speed cases for
// main and nose gear.
//
// # Strut sizing
//
// SizeStrut derives a complete oleo-pneumatic design point from a target
// static gas pressure: piston area and diameter, the corrected diameter
// after rounding up to the next standard AS4716 gland bore, the breakout /
// static / maximum gas pressures, and the gas volumes at full extension,
// static position and full compression from the isothermal gas law
// P·V = const. SpringCurve samples the resulting compression curve.
//
// # Off-tracking
//
// EstimateOfftrack checks a turn geometry against the available taxiway
// half-width with the steady-state b²/(2R) approximation. SimulateTurn
// integrates the full manoeuvre kinematically (explicit Euler, rigid-arm
// trailing gear) and reports the off-tracking of the main gear against an
// ideal, time-lagged path.
//
// # Errors
//
// All errors are terminal for the run: missing reference data
// (ErrAircraftNotFound, ErrTyreNotFound), a failed iteration
// (*ConvergenceError) and an exhausted seal gland table (*NoSealError) each
// make the computation meaningless for those inputs. Independent cases stay
// independent; one failed case does not corrupt another.
package landinggear
