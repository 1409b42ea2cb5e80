package landinggear

import (
	"math"
	"testing"
)

// AssertionConfig contains tolerances for the physics assertions.
type AssertionConfig struct {
	// Maximum residual allowed in either governing equation [m] or [-]
	MaxResidual float64
}

// DefaultAssertionConfig returns the solver's own convergence tolerance.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{MaxResidual: 1e-6}
}

// AssertSolutionConsistent verifies a converged (λ, x_t) pair satisfies both
// governing equations simultaneously:
//
//	λ   = V² / (2g(η_a·x_a + η_t·x_t))
//	x_t = 0.9·λ·g·m·(r_max − r_min) / (P·n)
//
// A pair that satisfies only one of them indicates the solver returned a
// stale stroke from the iteration before convergence.
func AssertSolutionConsistent(t *testing.T, res SolverResult, speed, mass, outerRadius, staticRadius, ratedLoad float64, numTyres int, solver SolverConfig, cfg AssertionConfig) {
	t.Helper()

	lambda := speed * speed / (2 * solver.Gravity * (solver.EtaAbsorber*res.AbsorberStroke + solver.EtaTyre*res.TyreStroke))
	if r := math.Abs(lambda - res.Lambda); r > cfg.MaxResidual {
		t.Errorf("energy equation residual too large: |λ(x_t) - λ| = %.3e (max %.3e)", r, cfg.MaxResidual)
	}

	stroke := 0.9 * res.Lambda * solver.Gravity * mass * (outerRadius - staticRadius) / (ratedLoad * float64(numTyres))
	if r := math.Abs(stroke - res.TyreStroke); r > cfg.MaxResidual {
		t.Errorf("tyre load equation residual too large: |x_t(λ) - x_t| = %.3e (max %.3e)", r, cfg.MaxResidual)
	}

	if res.Lambda <= 0 {
		t.Errorf("reaction factor must be positive, got λ = %.6f", res.Lambda)
	}
	if res.TyreStroke < 0 {
		t.Errorf("tyre stroke must be non-negative, got x_t = %.6f", res.TyreStroke)
	}
}

// AssertPressureOrdering verifies the characteristic pressures are ordered
// P0 < P1 < P2: breakout below static, static below maximum. Anything else
// means the breakout fraction or ground load factor is physically senseless.
func AssertPressureOrdering(t *testing.T, s StrutSizing) {
	t.Helper()

	if !(s.BreakoutPressure > 0) {
		t.Errorf("breakout pressure must be positive, got P0 = %.0f Pa", s.BreakoutPressure)
	}
	if !(s.BreakoutPressure < s.StaticPressure) {
		t.Errorf("breakout must be below static pressure: P0 = %.3f MPa, P1 = %.3f MPa",
			s.BreakoutPressure/1e6, s.StaticPressure/1e6)
	}
	if !(s.StaticPressure < s.MaxPressure) {
		t.Errorf("static must be below max pressure: P1 = %.3f MPa, P2 = %.3f MPa",
			s.StaticPressure/1e6, s.MaxPressure/1e6)
	}
}

// AssertVolumeOrdering verifies V0 > V1 > V2 > 0: the gas volume shrinks
// monotonically from full extension through static position to full
// compression, and never collapses to zero inside the travel.
func AssertVolumeOrdering(t *testing.T, s StrutSizing) {
	t.Helper()

	if !(s.CompressedVolume > 0) {
		t.Errorf("fully compressed volume must stay positive, got V2 = %.3e m³", s.CompressedVolume)
	}
	if !(s.ExtendedVolume > s.StaticVolume) {
		t.Errorf("extended volume must exceed static volume: V0 = %.3e, V1 = %.3e", s.ExtendedVolume, s.StaticVolume)
	}
	if !(s.StaticVolume > s.CompressedVolume) {
		t.Errorf("static volume must exceed compressed volume: V1 = %.3e, V2 = %.3e", s.StaticVolume, s.CompressedVolume)
	}
}
