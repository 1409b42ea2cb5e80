package landinggear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mlgSizingInput() SizingInput {
	return SizingInput{
		RampMass:             76000,
		LandingMass:          76000,
		LoadFraction:         0.95,
		ReactionFactor:       1.1,
		AbsorberTravel:       0.6,
		BreakoutLoadFraction: 0.17,
		StaticGasPressure:    13.0e6,
		NumGearLegs:          2,
		MaxGroundLoadFactor:  1.7,
		LimitStroke:          0.500,
	}
}

func TestSizeStrut_MLGDesignPoint(t *testing.T) {
	s, err := SizeStrut(mlgSizingInput(), StandardSealGlands())
	require.NoError(t, err)

	AssertPressureOrdering(t, s)
	AssertVolumeOrdering(t, s)

	// The corrected piston must be exactly the selected gland bore.
	assert.InDelta(t, s.SealGland.Bore*MetersPerInch, s.PistonDiameter, 1e-12)

	// Rounding up to a larger bore lowers the static pressure below target.
	assert.Less(t, s.StaticPressure, mlgSizingInput().StaticGasPressure)

	assert.Greater(t, s.CompressionRatio(), 1.0)
	assert.Greater(t, s.StaticStroke, 0.0)
	assert.Less(t, s.StaticStroke, mlgSizingInput().AbsorberTravel)
}

func TestSizeStrut_SelectsNextLargerBore(t *testing.T) {
	in := mlgSizingInput()
	s, err := SizeStrut(in, StandardSealGlands())
	require.NoError(t, err)

	// The uncorrected diameter for this design point is about 7.34 in; the
	// next standard gland up is the 7.750 in bore.
	require.Equal(t, "-350", s.SealGland.Dash)

	// Determinism: the selected bore is the minimum entry strictly greater
	// than the computed diameter.
	for _, g := range StandardSealGlands() {
		if g.Bore*MetersPerInch > s.PistonDiameter {
			break
		}
		assert.LessOrEqual(t, g.Bore, s.SealGland.Bore)
	}
}

func TestSelectSealGland(t *testing.T) {
	glands := []SealGland{
		{Dash: "-a", Bore: 1.0},
		{Dash: "-b", Bore: 2.0},
		{Dash: "-c", Bore: 3.0},
	}

	g, err := SelectSealGland(glands, 1.5*MetersPerInch)
	require.NoError(t, err)
	assert.Equal(t, "-b", g.Dash)

	// Strictly greater: an exact match rounds up to the next size.
	g, err = SelectSealGland(glands, 2.0*MetersPerInch)
	require.NoError(t, err)
	assert.Equal(t, "-c", g.Dash)

	_, err = SelectSealGland(glands, 3.5*MetersPerInch)
	require.ErrorIs(t, err, ErrNoSeal)

	var noSeal *NoSealError
	require.ErrorAs(t, err, &noSeal)
	assert.InDelta(t, 3.5*MetersPerInch, noSeal.PistonDiameter, 1e-12)

	_, err = SelectSealGland(nil, 0.1)
	require.ErrorIs(t, err, ErrNoSeal)
}

func TestSizeStrut_NoSealAvailable(t *testing.T) {
	in := mlgSizingInput()
	in.RampMass = 5e6 // far beyond any standard gland

	_, err := SizeStrut(in, StandardSealGlands())
	require.ErrorIs(t, err, ErrNoSeal)
}

func TestSpringCurve(t *testing.T) {
	in := mlgSizingInput()
	s, err := SizeStrut(in, StandardSealGlands())
	require.NoError(t, err)

	curve := SpringCurve(s, in.AbsorberTravel)
	require.Len(t, curve, 100)

	// Boundary conditions of the isothermal model: P(0) = P0 and
	// P(travel) = P2 by construction of V0.
	assert.InEpsilon(t, s.BreakoutPressure, curve[0].Pressure, 1e-9)
	assert.InEpsilon(t, s.MaxPressure, curve[len(curve)-1].Pressure, 1e-9)

	for i := 1; i < len(curve); i++ {
		assert.Greater(t, curve[i].Pressure, curve[i-1].Pressure,
			"isothermal compression must be strictly monotonic")
		assert.Greater(t, curve[i].Stroke, curve[i-1].Stroke)
	}
}

func TestStrokeFromReactionFactor_RoundTrip(t *testing.T) {
	tyre, err := LookupTyre("H49x19.0-22")
	require.NoError(t, err)

	cfg := DefaultSolverConfig()
	const (
		mass   = 64600.0
		lambda = 1.1
		speed  = 3.05
	)

	split := StrokeFromReactionFactor(mass, lambda, speed, tyre, 4, cfg)
	assert.InDelta(t, split.TyreStroke+split.AbsorberStroke, split.TotalStroke, 1e-12)

	// The inverse relation must reproduce λ through the forward energy
	// equation exactly.
	back := speed * speed / (2 * cfg.Gravity * (cfg.EtaAbsorber*split.AbsorberStroke + cfg.EtaTyre*split.TyreStroke))
	assert.InDelta(t, lambda, back, 1e-9)

	// And the iterative solver, given the derived absorber stroke, must
	// converge back to the same design point.
	res, err := SolveReactionFactor(speed, split.AbsorberStroke, mass,
		tyre.OuterRadius(), tyre.StaticRadius, tyre.RatedLoad, 4, cfg)
	require.NoError(t, err)
	assert.InDelta(t, lambda, res.Lambda, 1e-4)
	assert.InDelta(t, split.TyreStroke, res.TyreStroke, 1e-4)
}

func TestStrokeBreakdown(t *testing.T) {
	mainTyre, err := LookupTyre("1270x455R22")
	require.NoError(t, err)
	noseTyre, err := LookupTyre("30x8.8R15")
	require.NoError(t, err)

	in := BreakdownInput{
		MTOM:             76000,
		MLM:              66000,
		MainLambda:       1.1,
		NoseLambda:       1.2,
		NoseMassFraction: 0.15,
		MainTyre:         mainTyre,
		NoseTyre:         noseTyre,
		NumMainTyres:     4,
		NumNoseTyres:     2,
	}
	rows := StrokeBreakdown(in, StandardSpeedCases, DefaultSolverConfig())
	require.Len(t, rows, len(StandardSpeedCases))

	assert.Equal(t, 76000.0, rows[0].Mass, "ground handling case runs at MTOM")
	assert.Equal(t, 66000.0, rows[1].Mass, "landing cases run at MLM")

	for _, row := range rows {
		assert.Greater(t, row.Main.TyreStroke, 0.0)
		assert.Greater(t, row.Main.AbsorberStroke, 0.0)
		assert.Greater(t, row.Nose.TyreStroke, 0.0)
		assert.Greater(t, row.Nose.AbsorberStroke, 0.0)
		assert.Greater(t, row.Main.TotalStroke, row.Main.TyreStroke)
	}
}
