package landinggear

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// RenderSpringCurve writes the isothermal spring curve as a PNG: gas
// pressure [MPa] against absorber compression [mm], with dashed markers for
// the static position, the maximum ground-handling and landing pressures,
// and the limit landing stroke.
func RenderSpringCurve(s StrutSizing, curve []CurvePoint, limitStroke float64, path string) error {
	p := plot.New()
	p.Title.Text = "Oleo-Pneumatic Spring Curve (Isothermal)"
	p.X.Label.Text = "Shock Absorber Compression (mm)"
	p.Y.Label.Text = "Gas Pressure (MPa)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(curve))
	maxPressure := 0.0
	for i, c := range curve {
		pts[i].X = c.Stroke * 1000
		pts[i].Y = c.Pressure / 1e6
		if pts[i].Y > maxPressure {
			maxPressure = pts[i].Y
		}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("spring curve line: %w", err)
	}
	p.Legend.Add("spring curve", line)
	p.Add(line)

	maxStroke := curve[len(curve)-1].Stroke * 1000
	markers := []struct {
		name     string
		pts      plotter.XYs
		colorIdx int
	}{
		{"static position", vertical(s.StaticStroke*1000, maxPressure), 1},
		{"max GH load", horizontal(s.MaxGroundHandlingPressure/1e6, maxStroke), 2},
		{"max landing load", horizontal(s.MaxLandingPressure/1e6, maxStroke), 3},
		{"limit stroke", vertical(limitStroke*1000, maxPressure), 4},
	}
	for _, m := range markers {
		ml, err := plotter.NewLine(m.pts)
		if err != nil {
			return fmt.Errorf("%s marker: %w", m.name, err)
		}
		ml.LineStyle.Color = plotutil.Color(m.colorIdx)
		ml.LineStyle.Dashes = plotutil.Dashes(1)
		p.Legend.Add(m.name, ml)
		p.Add(ml)
	}

	return p.Save(9*vg.Inch, 6*vg.Inch, path)
}

func vertical(x, yMax float64) plotter.XYs {
	return plotter.XYs{{X: x, Y: 0}, {X: x, Y: yMax}}
}

func horizontal(y, xMax float64) plotter.XYs {
	return plotter.XYs{{X: 0, Y: y}, {X: xMax, Y: y}}
}

// RenderTurnTracks writes the simulated taxi manoeuvre as a PNG: taxiway
// edges around the cockpit path, plus the nose gear, main gear centre and
// inner/outer main tyre ground tracks.
func RenderTurnTracks(track TurnTrack, path string) error {
	p := plot.New()
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"
	p.Add(plotter.NewGrid())

	left, right := taxiwayEdges(track)
	for _, edge := range []plotter.XYs{left, right} {
		l, err := plotter.NewLine(edge)
		if err != nil {
			return fmt.Errorf("taxiway edge: %w", err)
		}
		l.LineStyle.Color = color.Gray{Y: 128}
		p.Add(l)
	}

	if err := plotutil.AddLines(p,
		"cockpit path", toXYs(track.Cockpit),
		"NLG path", toXYs(track.Nose),
		"MLG centre path", toXYs(track.MainCentre),
		"MLG inner tyre path", toXYs(track.MainLeft),
		"MLG outer tyre path", toXYs(track.MainRight),
	); err != nil {
		return fmt.Errorf("gear tracks: %w", err)
	}

	return p.Save(10*vg.Inch, 10*vg.Inch, path)
}

func toXYs(pts []TrackPoint) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	return xys
}

// taxiwayEdges offsets the cockpit centreline by half the taxiway width on
// each side, normal to the instantaneous heading.
func taxiwayEdges(track TurnTrack) (left, right plotter.XYs) {
	offset := track.TaxiwayWidth / 2
	left = make(plotter.XYs, len(track.Cockpit))
	right = make(plotter.XYs, len(track.Cockpit))
	for i, c := range track.Cockpit {
		sin, cos := math.Sincos(track.CockpitHeading[i])
		left[i] = plotter.XY{X: c.X - offset*sin, Y: c.Y + offset*cos}
		right[i] = plotter.XY{X: c.X + offset*sin, Y: c.Y - offset*cos}
	}
	return left, right
}
