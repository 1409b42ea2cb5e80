package landinggear

import (
	"math"
)

// OfftrackInput is the geometry for a closed-form taxiway fillet check.
// Airfield survey dimensions are given in the units they are published in;
// conversion to SI happens inside the estimate.
type OfftrackInput struct {
	SteeringAngle      float64 // Nose gear steering angle [deg]
	Wheelbase          float64 // Nose gear to main gear [ft]
	CockpitArm         float64 // Cockpit to main gear (CMG) [ft]
	GearTrack          float64 // Main gear track width (OMGWS) [ft]
	CockpitTurnRadius  float64 // Assumed cockpit turn radius [ft]
	TaxiwayWidth       float64 // Total taxiway width [m]
	TurnAngle          float64 // Total turn angle [deg]
	RequiredEdgeMargin float64 // Required clearance to the taxiway edge [m]
}

// OfftrackResult is the closed-form off-tracking estimate, all in meters.
type OfftrackResult struct {
	TurnCentreOffset    float64 // Turn centre y-coordinate off the gear axis
	NoseGearTurnRadius  float64
	CockpitTurnRadius   float64 // From turn centre to cockpit
	SteadyStateOfftrack float64 // b²/(2R) steady-state approximation
	CorrectedOfftrack   float64 // After the sin(θ/2) partial-turn correction
	InnerTyreOuterEdge  float64 // Off-track of the inner tyre's outer side
	MaxAllowedPosition  float64 // Half taxiway width minus required margin
	ExtraFilletWidth    float64 // Additional fillet needed, ≥ 0
}

// EstimateOfftrack computes the steady-state main-gear off-tracking for a
// turn of the given geometry and checks it against the available taxiway
// half-width. The steady-state approximation b²/(2R) overstates short turns,
// so it is scaled by sin(θ/2) for the actual turn angle.
func EstimateOfftrack(in OfftrackInput) OfftrackResult {
	// Turn centre sits abeam the main gear, offset by the steering geometry.
	turnCentreY := in.Wheelbase * math.Tan((90-in.SteeringAngle)*math.Pi/180)

	noseRadius := math.Hypot(in.Wheelbase, turnCentreY) * MetersPerFoot
	cockpitRadius := math.Hypot(in.CockpitArm, turnCentreY) * MetersPerFoot

	wheelbase := in.Wheelbase * MetersPerFoot
	turnRadius := in.CockpitTurnRadius * MetersPerFoot
	steadyState := wheelbase * wheelbase / (2 * turnRadius)
	corrected := steadyState * math.Sin(in.TurnAngle*math.Pi/180/2)

	innerEdge := corrected + in.GearTrack*MetersPerFoot/2
	maxAllowed := in.TaxiwayWidth/2 - in.RequiredEdgeMargin

	extraFillet := innerEdge - maxAllowed
	if extraFillet < 0 {
		extraFillet = 0
	}

	return OfftrackResult{
		TurnCentreOffset:    turnCentreY * MetersPerFoot,
		NoseGearTurnRadius:  noseRadius,
		CockpitTurnRadius:   cockpitRadius,
		SteadyStateOfftrack: steadyState,
		CorrectedOfftrack:   corrected,
		InnerTyreOuterEdge:  innerEdge,
		MaxAllowedPosition:  maxAllowed,
		ExtraFilletWidth:    extraFillet,
	}
}

// TurnPlan describes a taxi manoeuvre for the kinematic simulation: straight
// taxi, a constant-radius turn through TurnAngle, then straight again. All
// dimensions are SI. TurnRadius and Speed must be positive.
type TurnPlan struct {
	TurnRadius     float64 // Cockpit turn radius [m]
	TurnAngle      float64 // Total turn angle [deg]
	Speed          float64 // Constant ground speed [m/s]
	TimeStep       float64 // Integration step [s]
	StraightBefore float64 // Straight taxi before the turn [s]
	StraightAfter  float64 // Straight taxi after the turn [s]
	Wheelbase      float64 // Nose gear to main gear [m]
	CockpitArm     float64 // Cockpit to main gear [m]
	GearTrack      float64 // Main gear total track width [m]
	TaxiwayWidth   float64 // For the rendered taxiway band [m]
}

// TrackPoint is one ground position [m].
type TrackPoint struct {
	X, Y float64
}

func (p TrackPoint) distance(q TrackPoint) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// TurnTrack holds the simulated ground tracks, one sample per time step.
type TurnTrack struct {
	Time           []float64
	Cockpit        []TrackPoint
	Nose           []TrackPoint
	MainCentre     []TrackPoint
	MainLeft       []TrackPoint // Inner tyre in a right turn
	MainRight      []TrackPoint // Outer tyre in a right turn
	IdealMain      []TrackPoint // Time-lagged main gear path with zero off-tracking
	CockpitHeading []float64    // [rad]
	MainHeading    []float64    // [rad]
	TaxiwayWidth   float64
}

// Offtracking returns the per-sample distance between the real and the
// ideal main gear centre paths [m].
func (t TurnTrack) Offtracking() []float64 {
	off := make([]float64, len(t.MainCentre))
	for i := range off {
		off[i] = t.MainCentre[i].distance(t.IdealMain[i])
	}
	return off
}

// MaxOfftracking returns the largest off-tracking distance over the
// manoeuvre [m].
func (t TurnTrack) MaxOfftracking() float64 {
	max := 0.0
	for _, d := range t.Offtracking() {
		if d > max {
			max = d
		}
	}
	return max
}

// SimulateTurn integrates the taxi manoeuvre with an explicit Euler scheme
// over a fixed time grid. The cockpit point is steered at the constant yaw
// rate ω = v/R during the turn window; the main gear trails it on a rigid
// arm, re-projected each step, and the nose gear sits on the fuselage line
// between them. An independent, time-lagged simulation of the same steering
// profile gives the ideal main-gear path that a gear with zero off-tracking
// would follow.
func SimulateTurn(plan TurnPlan) TurnTrack {
	omega := plan.Speed / plan.TurnRadius
	turnDuration := plan.TurnAngle * math.Pi / 180 / omega
	total := plan.StraightBefore + turnDuration + plan.StraightAfter

	dt := plan.TimeStep
	steps := int(total/dt) + 1
	halfTrack := plan.GearTrack / 2

	track := TurnTrack{
		Time:           make([]float64, 0, steps),
		Cockpit:        make([]TrackPoint, 0, steps),
		Nose:           make([]TrackPoint, 0, steps),
		MainCentre:     make([]TrackPoint, 0, steps),
		MainLeft:       make([]TrackPoint, 0, steps),
		MainRight:      make([]TrackPoint, 0, steps),
		IdealMain:      make([]TrackPoint, 0, steps),
		CockpitHeading: make([]float64, 0, steps),
		MainHeading:    make([]float64, 0, steps),
		TaxiwayWidth:   plan.TaxiwayWidth,
	}

	// Aircraft starts facing north, cockpit at the origin, gears behind it
	// on the fuselage line.
	cockpitHeading := math.Pi / 2
	cockpit := TrackPoint{}
	mainGear := TrackPoint{
		X: cockpit.X - plan.CockpitArm*math.Cos(cockpitHeading),
		Y: cockpit.Y - plan.CockpitArm*math.Sin(cockpitHeading),
	}

	// The ideal path repeats the steering profile delayed by the time the
	// cockpit needs to travel one cockpit arm, starting from the main gear's
	// initial position.
	lag := plan.CockpitArm / plan.Speed
	idealHeading := math.Pi / 2
	ideal := mainGear

	steeringRate := func(now, turnStart float64) float64 {
		if now > turnStart && now <= turnStart+turnDuration {
			return -omega // turning right
		}
		return 0
	}

	for i := 0; i < steps; i++ {
		now := float64(i) * dt

		cockpitHeading += steeringRate(now, plan.StraightBefore) * dt
		cockpit.X += plan.Speed * dt * math.Cos(cockpitHeading)
		cockpit.Y += plan.Speed * dt * math.Sin(cockpitHeading)

		// Drag the main gear behind the cockpit on a rigid arm.
		mainHeading := math.Atan2(cockpit.Y-mainGear.Y, cockpit.X-mainGear.X)
		mainGear = TrackPoint{
			X: cockpit.X - plan.CockpitArm*math.Cos(mainHeading),
			Y: cockpit.Y - plan.CockpitArm*math.Sin(mainHeading),
		}
		nose := TrackPoint{
			X: cockpit.X - (plan.CockpitArm-plan.Wheelbase)*math.Cos(mainHeading),
			Y: cockpit.Y - (plan.CockpitArm-plan.Wheelbase)*math.Sin(mainHeading),
		}

		idealHeading += steeringRate(now, plan.StraightBefore+lag) * dt
		ideal.X += plan.Speed * dt * math.Cos(idealHeading)
		ideal.Y += plan.Speed * dt * math.Sin(idealHeading)

		track.Time = append(track.Time, now)
		track.Cockpit = append(track.Cockpit, cockpit)
		track.Nose = append(track.Nose, nose)
		track.MainCentre = append(track.MainCentre, mainGear)
		track.MainLeft = append(track.MainLeft, TrackPoint{
			X: mainGear.X - halfTrack*math.Sin(mainHeading),
			Y: mainGear.Y + halfTrack*math.Cos(mainHeading),
		})
		track.MainRight = append(track.MainRight, TrackPoint{
			X: mainGear.X + halfTrack*math.Sin(mainHeading),
			Y: mainGear.Y - halfTrack*math.Cos(mainHeading),
		})
		track.IdealMain = append(track.IdealMain, ideal)
		track.CockpitHeading = append(track.CockpitHeading, cockpitHeading)
		track.MainHeading = append(track.MainHeading, mainHeading)
	}

	return track
}
