package landinggear

import (
	"errors"
	"math"
	"testing"
)

// The worked example: H49x19.0-22 tyre on a 76 t aircraft with four main
// gear tyres and an assumed 0.5 m absorber stroke.
const (
	exampleOuterRadius  = 49.5 / 2 * MetersPerInch
	exampleStaticRadius = 20.5 * MetersPerInch
	exampleRatedLoad    = 50000 * NewtonsPerPoundForce
	exampleMass         = 76000.0
	exampleStroke       = 0.5
	exampleTyreCount    = 4
)

func TestSolveReactionFactor_ExampleScenario(t *testing.T) {
	cfg := DefaultSolverConfig()

	res, err := SolveReactionFactor(3.05, exampleStroke, exampleMass,
		exampleOuterRadius, exampleStaticRadius, exampleRatedLoad, exampleTyreCount, cfg)
	if err != nil {
		t.Fatalf("solver failed to converge: %v", err)
	}

	AssertSolutionConsistent(t, res, 3.05, exampleMass,
		exampleOuterRadius, exampleStaticRadius, exampleRatedLoad, exampleTyreCount,
		cfg, DefaultAssertionConfig())

	t.Logf("✓ converged: λ = %.4f, x_t = %.4f m", res.Lambda, res.TyreStroke)
}

func TestSolveReactionFactor_LambdaMonotonicInSpeed(t *testing.T) {
	cfg := DefaultSolverConfig()

	prev := 0.0
	for _, speed := range []float64{1.5, 1.83, 2.5, 3.05, 3.7, 4.5} {
		res, err := SolveReactionFactor(speed, exampleStroke, exampleMass,
			exampleOuterRadius, exampleStaticRadius, exampleRatedLoad, exampleTyreCount, cfg)
		if err != nil {
			t.Fatalf("V = %.2f m/s: %v", speed, err)
		}
		if res.Lambda <= prev {
			t.Errorf("λ must increase strictly with speed: λ(%.2f) = %.4f, previous %.4f",
				speed, res.Lambda, prev)
		}
		prev = res.Lambda
	}
}

func TestSolveReactionFactor_ConvergesForPhysicalInputs(t *testing.T) {
	cfg := DefaultSolverConfig()

	// Sweep over the plausible transport-category envelope. Every
	// combination must converge inside the default iteration budget and
	// satisfy both governing equations.
	for _, mass := range []float64{20000, 76000, 280000} {
		for _, speed := range []float64{1.83, 3.05, 3.7} {
			for _, stroke := range []float64{0.3, 0.5, 0.7} {
				res, err := SolveReactionFactor(speed, stroke, mass,
					exampleOuterRadius, exampleStaticRadius, exampleRatedLoad, exampleTyreCount, cfg)
				if err != nil {
					t.Fatalf("m = %.0f, V = %.2f, x_a = %.1f: %v", mass, speed, stroke, err)
				}
				AssertSolutionConsistent(t, res, speed, mass,
					exampleOuterRadius, exampleStaticRadius, exampleRatedLoad, exampleTyreCount,
					cfg, DefaultAssertionConfig())
			}
		}
	}
}

func TestSolveReactionFactor_NoConvergence(t *testing.T) {
	cfg := DefaultSolverConfig()
	cfg.MaxIterations = 1
	cfg.Tolerance = 0 // unreachable

	_, err := SolveReactionFactor(3.05, exampleStroke, exampleMass,
		exampleOuterRadius, exampleStaticRadius, exampleRatedLoad, exampleTyreCount, cfg)
	if err == nil {
		t.Fatal("expected convergence failure with a one-iteration budget and zero tolerance")
	}
	if !errors.Is(err, ErrNoConvergence) {
		t.Errorf("error must wrap ErrNoConvergence, got %v", err)
	}

	var convErr *ConvergenceError
	if !errors.As(err, &convErr) {
		t.Fatalf("error must be a *ConvergenceError, got %T", err)
	}
	if convErr.Iterations != 1 {
		t.Errorf("iterations = %d, want 1", convErr.Iterations)
	}
	if convErr.Residual <= 0 {
		t.Errorf("residual must be reported, got %v", convErr.Residual)
	}
}

func TestComputeReactionFactors_A320(t *testing.T) {
	cfg := DefaultAnalysisConfig()

	results, err := ComputeReactionFactors("A320", cfg)
	if err != nil {
		t.Fatalf("analysis failed: %v", err)
	}

	want := 2 * len(StandardSpeedCases)
	if len(results) != want {
		t.Fatalf("got %d result rows, want %d", len(results), want)
	}

	ac, err := LookupAircraft("A320")
	if err != nil {
		t.Fatal(err)
	}

	for i, r := range results {
		c := cfg.Cases[i%len(cfg.Cases)]
		if r.Speed != c.Speed {
			t.Errorf("row %d: speed %.2f, want %.2f (case order must follow StandardSpeedCases)",
				i, r.Speed, c.Speed)
		}

		wholeMass := c.At.Mass(ac.MTOM, ac.MLM)
		if i < len(cfg.Cases) {
			if r.Gear != MainGear {
				t.Errorf("row %d: gear %s, want %s", i, r.Gear, MainGear)
			}
			if r.Mass != wholeMass {
				t.Errorf("row %d: main gear mass %.0f, want %.0f", i, r.Mass, wholeMass)
			}
		} else {
			if r.Gear != NoseGear {
				t.Errorf("row %d: gear %s, want %s", i, r.Gear, NoseGear)
			}
			if got, want := r.Mass, cfg.NoseMassFraction*wholeMass; math.Abs(got-want) > 1e-9 {
				t.Errorf("row %d: nose gear mass %.1f, want %.1f", i, got, want)
			}
		}

		if r.Lambda <= 0 || r.TyreStroke < 0 {
			t.Errorf("row %d: invalid solution λ = %.4f, x_t = %.4f", i, r.Lambda, r.TyreStroke)
		}
	}
}

func TestComputeReactionFactors_UnknownAircraft(t *testing.T) {
	_, err := ComputeReactionFactors("Concorde", DefaultAnalysisConfig())
	if !errors.Is(err, ErrAircraftNotFound) {
		t.Errorf("want ErrAircraftNotFound, got %v", err)
	}
}

func TestStandardSpeedCases(t *testing.T) {
	if len(StandardSpeedCases) != 3 {
		t.Fatalf("got %d standard cases, want 3", len(StandardSpeedCases))
	}
	if StandardSpeedCases[0].At != MaxTakeoffMass {
		t.Error("ground handling case must evaluate at MTOM")
	}
	for _, c := range StandardSpeedCases[1:] {
		if c.At != MaxLandingMass {
			t.Errorf("landing case at V = %.2f must evaluate at MLM", c.Speed)
		}
	}
}
