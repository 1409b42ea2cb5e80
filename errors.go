package landinggear

import (
	"errors"
	"fmt"
)

// Sentinel errors. All failures are terminal for the run: the calculations
// are meaningless without valid reference data and a converged solution, so
// callers should not retry with the same inputs.
var (
	// ErrAircraftNotFound is returned when an aircraft name has no row in
	// the aircraft database.
	ErrAircraftNotFound = errors.New("aircraft not found")

	// ErrTyreNotFound is returned when a tyre code has no row in the tyre
	// database.
	ErrTyreNotFound = errors.New("tyre not found")

	// ErrNoConvergence is returned when the reaction-factor iteration
	// exhausts its iteration budget without meeting tolerance.
	ErrNoConvergence = errors.New("iteration did not converge")

	// ErrNoSeal is returned when no standard seal gland bore exceeds the
	// computed piston diameter.
	ErrNoSeal = errors.New("no standard seal gland large enough")
)

// ConvergenceError reports a failed fixed-point iteration together with the
// last observed residual, so the caller can tell a near-miss from a
// divergent input set.
type ConvergenceError struct {
	Iterations int     // Iterations performed
	Residual   float64 // |x_t_new - x_t| at the last iteration
	Tolerance  float64 // Tolerance that was not met
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("iteration did not converge after %d iterations: residual %.3e (tolerance %.3e)",
		e.Iterations, e.Residual, e.Tolerance)
}

func (e *ConvergenceError) Unwrap() error { return ErrNoConvergence }

// NoSealError reports a piston diameter that exceeds every bore in the seal
// gland table. This means the seal table is undersized for the design, or
// the design itself is infeasible.
type NoSealError struct {
	PistonDiameter float64 // Computed piston diameter [m]
	LargestBore    float64 // Largest bore available in the table [m]
}

func (e *NoSealError) Error() string {
	return fmt.Sprintf("no standard seal gland large enough: piston diameter %.1f mm exceeds largest bore %.1f mm",
		e.PistonDiameter*1000, e.LargestBore*1000)
}

func (e *NoSealError) Unwrap() error { return ErrNoSeal }
