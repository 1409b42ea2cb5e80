package landinggear

import (
	"math"
)

// StrokeSplit is the stroke breakdown for one gear at one speed case.
type StrokeSplit struct {
	TyreStroke     float64 // x_t [m]
	AbsorberStroke float64 // x_a [m]
	TotalStroke    float64 // x_t + x_a [m]
}

// StrokeFromReactionFactor inverts the energy-balance equations: given a
// chosen design reaction factor, it returns the tyre stroke the tyre will
// contribute and the shock-absorber stroke required to absorb the rest of
// the touchdown energy.
//
//	x_t = 0.9·λ·g·m·(r_max − r_min) / (P·n)
//	x_a = V² / (2g·η_a·λ) − (η_t/η_a)·x_t
func StrokeFromReactionFactor(mass, lambda, speed float64, tyre TyreData, numTyres int, cfg SolverConfig) StrokeSplit {
	tyreStroke := 0.9 * lambda * cfg.Gravity * mass * tyre.UsableStroke() / (tyre.RatedLoad * float64(numTyres))
	absorberStroke := speed*speed/(2*cfg.Gravity*cfg.EtaAbsorber*lambda) - (cfg.EtaTyre/cfg.EtaAbsorber)*tyreStroke
	return StrokeSplit{
		TyreStroke:     tyreStroke,
		AbsorberStroke: absorberStroke,
		TotalStroke:    tyreStroke + absorberStroke,
	}
}

// StrokeBreakdownRow is one speed case of a main/nose stroke breakdown.
type StrokeBreakdownRow struct {
	Speed float64 // [m/s]
	Mass  float64 // Whole-aircraft mass for the case [kg]
	Main  StrokeSplit
	Nose  StrokeSplit
}

// BreakdownInput configures a stroke breakdown at assumed design reaction
// factors for both gears.
type BreakdownInput struct {
	MTOM             float64 // [kg]
	MLM              float64 // [kg]
	MainLambda       float64 // Design reaction factor, main gear
	NoseLambda       float64 // Design reaction factor, nose gear
	NoseMassFraction float64 // Fraction of aircraft mass on the nose gear
	MainTyre         TyreData
	NoseTyre         TyreData
	NumMainTyres     int
	NumNoseTyres     int
}

// StrokeBreakdown evaluates the stroke split for main and nose gear across
// the given speed cases. The aircraft mass is apportioned between the gears
// by the nose mass fraction.
func StrokeBreakdown(in BreakdownInput, cases []SpeedCase, cfg SolverConfig) []StrokeBreakdownRow {
	rows := make([]StrokeBreakdownRow, 0, len(cases))
	for _, c := range cases {
		total := c.At.Mass(in.MTOM, in.MLM)
		mainMass := total * (1 - in.NoseMassFraction)
		noseMass := total * in.NoseMassFraction

		rows = append(rows, StrokeBreakdownRow{
			Speed: c.Speed,
			Mass:  total,
			Main:  StrokeFromReactionFactor(mainMass, in.MainLambda, c.Speed, in.MainTyre, in.NumMainTyres, cfg),
			Nose:  StrokeFromReactionFactor(noseMass, in.NoseLambda, c.Speed, in.NoseTyre, in.NumNoseTyres, cfg),
		})
	}
	return rows
}

// SizingInput holds the design point for an oleo-pneumatic strut.
type SizingInput struct {
	RampMass             float64 // Maximum ramp mass [kg]
	LandingMass          float64 // Maximum landing mass [kg]
	LoadFraction         float64 // Fraction of aircraft weight on this gear group
	ReactionFactor       float64 // Design reaction factor λ
	AbsorberTravel       float64 // Full shock-absorber travel [m]
	BreakoutLoadFraction float64 // Breakout load as a fraction of static landing load
	StaticGasPressure    float64 // Target gas pressure at static compression [Pa]
	NumGearLegs          int     // Legs sharing the load fraction
	MaxGroundLoadFactor  float64 // Ground handling load factor at max compression
	LimitStroke          float64 // Limit landing stroke, for the chart marker [m]
	Gravity              float64 // [m/s²]; zero means StandardGravity
}

// StrutSizing is one self-consistent oleo-pneumatic design point derived
// from the isothermal gas law P·V = const and the boundary pressures at
// breakout, static position and full compression.
type StrutSizing struct {
	BreakoutPressure          float64 // P0, pressure that overcomes breakout friction [Pa]
	StaticPressure            float64 // P1, recomputed for the corrected piston [Pa]
	MaxPressure               float64 // P2, at max ground load factor, fully compressed [Pa]
	MaxGroundHandlingPressure float64 // Max ground handling load as pressure [Pa]
	MaxLandingPressure        float64 // Max landing load as pressure [Pa]
	ExtendedVolume            float64 // V0, gas volume fully extended [m³]
	StaticVolume              float64 // V1, gas volume at static position [m³]
	CompressedVolume          float64 // V2, gas volume fully compressed [m³]
	StaticStroke              float64 // Compression at static position [m]
	PistonDiameter            float64 // Corrected to the next standard gland bore [m]
	PistonArea                float64 // Corrected piston area [m²]
	SealGland                 SealGland
}

// CompressionRatio is V0/V2, the fully-extended to fully-compressed gas
// volume ratio.
func (s StrutSizing) CompressionRatio() float64 { return s.ExtendedVolume / s.CompressedVolume }

// SelectSealGland picks, from an ascending standard gland table, the first
// bore strictly larger than the piston diameter: round up to the next
// standard size, never down. An exhausted table wraps ErrNoSeal.
func SelectSealGland(glands []SealGland, pistonDiameter float64) (SealGland, error) {
	diameterIn := pistonDiameter / MetersPerInch
	for _, g := range glands {
		if g.Bore > diameterIn {
			return g, nil
		}
	}
	largest := 0.0
	if n := len(glands); n > 0 {
		largest = glands[n-1].Bore * MetersPerInch
	}
	return SealGland{}, &NoSealError{PistonDiameter: pistonDiameter, LargestBore: largest}
}

// SizeStrut derives a complete oleo-pneumatic strut design point.
//
// The piston is first sized so the ramp load sits at the target static gas
// pressure, then rounded up to the next standard AS4716 gland bore. The
// three characteristic pressures (breakout P0, static P1, maximum P2) follow
// from the corrected area, and the gas volumes fall out of the isothermal
// boundary conditions:
//
//	V0 = A·s·P2 / (P2 − P0)   (fully extended)
//	V2 = V0 − A·s             (fully compressed)
//	V1 = V0·P0 / P1           (static position)
func SizeStrut(in SizingInput, glands []SealGland) (StrutSizing, error) {
	g := in.Gravity
	if g == 0 {
		g = StandardGravity
	}

	forcePerLegRamp := in.RampMass * g * in.LoadFraction / float64(in.NumGearLegs)
	forcePerLegLanding := in.LandingMass * g * in.LoadFraction / float64(in.NumGearLegs)
	breakoutLoad := in.BreakoutLoadFraction * forcePerLegLanding

	// Initial piston sizing from the target static pressure.
	area := forcePerLegRamp / in.StaticGasPressure
	diameter := math.Sqrt(4 * area / math.Pi)

	gland, err := SelectSealGland(glands, diameter)
	if err != nil {
		return StrutSizing{}, err
	}
	correctedDiameter := gland.Bore * MetersPerInch
	correctedArea := math.Pi * correctedDiameter * correctedDiameter / 4

	p0 := breakoutLoad / correctedArea
	p1 := forcePerLegRamp / correctedArea
	p2 := in.MaxGroundLoadFactor * forcePerLegRamp / correctedArea

	v0 := correctedArea * in.AbsorberTravel * p2 / (p2 - p0)
	v2 := v0 - correctedArea*in.AbsorberTravel
	v1 := v0 * p0 / p1

	return StrutSizing{
		BreakoutPressure:          p0,
		StaticPressure:            p1,
		MaxPressure:               p2,
		MaxGroundHandlingPressure: in.MaxGroundLoadFactor * p1,
		MaxLandingPressure:        in.ReactionFactor * p1,
		ExtendedVolume:            v0,
		StaticVolume:              v1,
		CompressedVolume:          v2,
		StaticStroke:              (v0 - v1) / correctedArea,
		PistonDiameter:            correctedDiameter,
		PistonArea:                correctedArea,
		SealGland:                 gland,
	}, nil
}

// CurvePoint is one sample of the isothermal spring curve.
type CurvePoint struct {
	Stroke   float64 // Compression [m]
	Pressure float64 // Gas pressure [Pa]
}

// springCurvePoints is the fixed sampling resolution of the spring curve.
const springCurvePoints = 100

// SpringCurve samples the isothermal compression curve
//
//	P(x) = P0·V0 / (V0 − A·x)
//
// over [0, travel] at fixed resolution.
func SpringCurve(s StrutSizing, travel float64) []CurvePoint {
	curve := make([]CurvePoint, springCurvePoints)
	for i := range curve {
		x := travel * float64(i) / float64(springCurvePoints-1)
		curve[i] = CurvePoint{
			Stroke:   x,
			Pressure: s.BreakoutPressure * s.ExtendedVolume / (s.ExtendedVolume - s.PistonArea*x),
		}
	}
	return curve
}
