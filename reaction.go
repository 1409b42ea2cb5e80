package landinggear

import (
	"fmt"
	"math"
)

// SolverConfig holds the physics constants and convergence controls of the
// reaction-factor iteration. The defaults are the customary values for
// transport-category gear: an oleo-pneumatic absorber efficiency of 0.80 and
// a tyre efficiency of 0.47. Overriding them for a different aircraft class
// is an intentional, visible choice rather than a hidden default.
type SolverConfig struct {
	EtaAbsorber   float64 // Shock-absorber energy absorption efficiency η_a
	EtaTyre       float64 // Tyre energy absorption efficiency η_t
	Gravity       float64 // Gravitational acceleration [m/s²]
	Tolerance     float64 // Convergence tolerance on tyre stroke [m]
	MaxIterations int     // Iteration budget before giving up
}

// DefaultSolverConfig returns the standard constants.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		EtaAbsorber:   0.80,
		EtaTyre:       0.47,
		Gravity:       StandardGravity,
		Tolerance:     1e-6,
		MaxIterations: 100,
	}
}

// SolverResult is the converged solution for one touchdown/taxi case.
// At convergence both governing equations hold to within tolerance:
//
//	λ   = V² / (2g(η_a·x_a + η_t·x_t))
//	x_t = 0.9·λ·g·m·(r_max − r_min) / (P·n)
type SolverResult struct {
	Lambda         float64 // Dynamic reaction factor λ (> 0)
	TyreStroke     float64 // Converged tyre deflection x_t [m] (≥ 0)
	AbsorberStroke float64 // Assumed shock-absorber stroke x_a [m]
}

// SolveReactionFactor jointly solves for the reaction factor λ and the tyre
// stroke x_t by fixed-point iteration.
//
// The two are mutually dependent: λ follows from the kinetic energy absorbed
// over the total stroke (absorber plus tyre), while the tyre stroke follows
// from the load each tyre must react at that λ. No closed form exists for
// the usual efficiency constants, but the iteration is well-behaved for
// physically reasonable inputs (positive mass, load and tyre count, outer
// radius above static radius).
//
// The returned tyre stroke is the freshly updated value, with λ recomputed
// from it, so the returned pair satisfies both equations simultaneously.
// If the iteration budget is exhausted a *ConvergenceError is returned.
func SolveReactionFactor(speed, absorberStroke, mass, outerRadius, staticRadius, ratedLoad float64, numTyres int, cfg SolverConfig) (SolverResult, error) {
	lambdaOf := func(tyreStroke float64) float64 {
		return speed * speed / (2 * cfg.Gravity * (cfg.EtaAbsorber*absorberStroke + cfg.EtaTyre*tyreStroke))
	}
	strokeOf := func(lambda float64) float64 {
		return 0.9 * lambda * cfg.Gravity * mass * (outerRadius - staticRadius) / (ratedLoad * float64(numTyres))
	}

	tyreStroke := 0.1 // initial guess [m]
	residual := math.Inf(1)
	for i := 0; i < cfg.MaxIterations; i++ {
		next := strokeOf(lambdaOf(tyreStroke))
		residual = math.Abs(next - tyreStroke)
		if residual < cfg.Tolerance {
			return SolverResult{
				Lambda:         lambdaOf(next),
				TyreStroke:     next,
				AbsorberStroke: absorberStroke,
			}, nil
		}
		tyreStroke = next
	}

	return SolverResult{}, &ConvergenceError{
		Iterations: cfg.MaxIterations,
		Residual:   residual,
		Tolerance:  cfg.Tolerance,
	}
}

// MassSelector picks which certified mass a speed case evaluates against.
type MassSelector int

const (
	// MaxTakeoffMass selects MTOM (ground handling cases).
	MaxTakeoffMass MassSelector = iota
	// MaxLandingMass selects MLM (landing cases).
	MaxLandingMass
)

func (s MassSelector) String() string {
	if s == MaxTakeoffMass {
		return "MTOM"
	}
	return "MLM"
}

// Mass returns the selected mass [kg].
func (s MassSelector) Mass(mtom, mlm float64) float64 {
	if s == MaxTakeoffMass {
		return mtom
	}
	return mlm
}

// SpeedCase is one certification evaluation point: a vertical speed paired
// with the mass it is evaluated at.
type SpeedCase struct {
	Speed float64 // Vertical (descent or taxi bump) speed [m/s]
	At    MassSelector
}

// StandardSpeedCases are the three customary evaluation points: ground
// handling at maximum takeoff mass, and the two landing descent rates at
// maximum landing mass. Additional certification cases can be appended
// without touching the solver.
var StandardSpeedCases = []SpeedCase{
	{Speed: 1.83, At: MaxTakeoffMass},
	{Speed: 3.05, At: MaxLandingMass},
	{Speed: 3.70, At: MaxLandingMass},
}

// Gear identifies which landing gear a result row belongs to.
type Gear string

const (
	MainGear Gear = "MLG"
	NoseGear Gear = "NLG"
)

// noseGearTyreCount is fixed: nose gear carries two tyres regardless of the
// main-gear tyre count.
const noseGearTyreCount = 2

// CaseResult is one row of a per-aircraft reaction-factor analysis.
type CaseResult struct {
	Gear           Gear
	TyreCode       string
	Speed          float64 // [m/s]
	Mass           float64 // Mass on this gear for the case [kg]
	Lambda         float64
	AbsorberStroke float64 // [m]
	TyreStroke     float64 // [m]
}

// AnalysisConfig configures a per-aircraft reaction-factor analysis.
type AnalysisConfig struct {
	MainAbsorberStroke float64 // Assumed main gear absorber stroke x_a [m]
	NoseAbsorberStroke float64 // Assumed nose gear absorber stroke x_a [m]
	NoseMassFraction   float64 // Fraction of aircraft mass on the nose gear
	Cases              []SpeedCase
	Solver             SolverConfig
}

// DefaultAnalysisConfig returns an analysis over the standard speed cases
// with 0.5 m assumed strokes and the customary 15% nose-gear mass fraction.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		MainAbsorberStroke: 0.50,
		NoseAbsorberStroke: 0.50,
		NoseMassFraction:   0.15,
		Cases:              StandardSpeedCases,
		Solver:             DefaultSolverConfig(),
	}
}

// ComputeReactionFactors runs the solver for the named aircraft across all
// configured speed cases, main gear first, then nose gear. The nose gear is
// evaluated at the configured fraction of the whole-aircraft mass with its
// tyre count fixed at two.
func ComputeReactionFactors(aircraftName string, cfg AnalysisConfig) ([]CaseResult, error) {
	ac, err := LookupAircraft(aircraftName)
	if err != nil {
		return nil, err
	}

	main, err := solveGearCases(MainGear, ac.MainGearTyreCode, ac.MTOM, ac.MLM,
		ac.NumMainTyres, cfg.MainAbsorberStroke, cfg)
	if err != nil {
		return nil, fmt.Errorf("main gear: %w", err)
	}

	nose, err := solveGearCases(NoseGear, ac.NoseGearTyreCode,
		cfg.NoseMassFraction*ac.MTOM, cfg.NoseMassFraction*ac.MLM,
		noseGearTyreCount, cfg.NoseAbsorberStroke, cfg)
	if err != nil {
		return nil, fmt.Errorf("nose gear: %w", err)
	}

	return append(main, nose...), nil
}

func solveGearCases(gear Gear, tyreCode string, mtom, mlm float64, numTyres int, absorberStroke float64, cfg AnalysisConfig) ([]CaseResult, error) {
	tyre, err := LookupTyre(tyreCode)
	if err != nil {
		return nil, err
	}

	results := make([]CaseResult, 0, len(cfg.Cases))
	for _, c := range cfg.Cases {
		mass := c.At.Mass(mtom, mlm)
		res, err := SolveReactionFactor(c.Speed, absorberStroke, mass,
			tyre.OuterRadius(), tyre.StaticRadius, tyre.RatedLoad, numTyres, cfg.Solver)
		if err != nil {
			return nil, fmt.Errorf("%s at V=%.2f m/s: %w", gear, c.Speed, err)
		}
		results = append(results, CaseResult{
			Gear:           gear,
			TyreCode:       tyreCode,
			Speed:          c.Speed,
			Mass:           mass,
			Lambda:         res.Lambda,
			AbsorberStroke: res.AbsorberStroke,
			TyreStroke:     res.TyreStroke,
		})
	}
	return results, nil
}
