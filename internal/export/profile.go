// Package export renders frame calculations as PDF worksheets, QR-coded cut
// tags, spreadsheets and DXF drawings.
package export

import "github.com/piwi3910/FutonFrame/internal/model"

// Drawing layers of the side profile.
const (
	LayerBeam    = "BEAM"
	LayerSupport = "SUPPORT"
	LayerBack    = "BACK"
)

// segment is a straight edge of the side profile, in inches.
// X runs from the front of the frame to the back, Y up from the floor.
type segment struct {
	layer          string
	x1, y1, x2, y2 float64
}

// sideProfile returns the edges of one side of the frame: the sloped main
// beam, the rear support under it and the back leg rising from the hinge.
func sideProfile(d model.Design, m model.Measurements) []segment {
	sinSeat := model.SinDeg(m.SeatAngle)
	cosSeat := model.CosDeg(m.SeatAngle)
	t := d.BeamThickness
	l := m.MainBeamMinimumLength

	// Main beam: top edge slopes down toward the back, bottom edge is
	// offset by the beam thickness perpendicular to it.
	topFront := model.Point2D{X: 0, Y: d.FrontBeamHeight}
	topBack := model.Point2D{X: l * cosSeat, Y: d.FrontBeamHeight - l*sinSeat}
	bottomFront := model.Point2D{X: topFront.X - t*sinSeat, Y: topFront.Y - t*cosSeat}
	bottomBack := model.Point2D{X: topBack.X - t*sinSeat, Y: topBack.Y - t*cosSeat}

	segs := []segment{
		edge(LayerBeam, topFront, topBack),
		edge(LayerBeam, topBack, bottomBack),
		edge(LayerBeam, bottomBack, bottomFront),
		edge(LayerBeam, bottomFront, topFront),
	}

	// Rear support: a post centered under the rear notch.
	center := (l - d.RearNotchOffset) * cosSeat
	left, right := center-t/2, center+t/2
	h := m.RearSupportTotalHeight
	segs = append(segs,
		segment{LayerSupport, left, 0, right, 0},
		segment{LayerSupport, right, 0, right, h},
		segment{LayerSupport, right, h, left, h},
		segment{LayerSupport, left, h, left, 0},
	)

	// Back leg: leaves the hinge at the back angle measured from the seat.
	hinge := model.Point2D{X: d.SeatDepth * cosSeat, Y: d.FrontBeamHeight - d.SeatDepth*sinSeat}
	legAngle := 180 - m.SeatAngle - d.BackAngle
	legEnd := model.Point2D{
		X: hinge.X + d.BackLegLength*model.CosDeg(legAngle),
		Y: hinge.Y + d.BackLegLength*model.SinDeg(legAngle),
	}
	segs = append(segs, edge(LayerBack, hinge, legEnd))

	return segs
}

func edge(layer string, a, b model.Point2D) segment {
	return segment{layer: layer, x1: a.X, y1: a.Y, x2: b.X, y2: b.Y}
}

// bounds returns the min and max corners of all segments.
func bounds(segs []segment) (min, max model.Point2D) {
	var outline model.Outline
	for _, s := range segs {
		outline = append(outline, model.Point2D{X: s.x1, Y: s.y1}, model.Point2D{X: s.x2, Y: s.y2})
	}
	return outline.BoundingBox()
}
