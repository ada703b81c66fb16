package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Member is one piece of the frame to cut.
type Member struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Length    float64 `json:"length_in"`
	Thickness float64 `json:"thickness_in"`
	Quantity  int     `json:"quantity"`
	Note      string  `json:"note,omitempty"`
}

// NewMember returns a member with a fresh short ID.
func NewMember(name string, length, thickness float64, qty int) Member {
	return Member{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Length:    length,
		Thickness: thickness,
		Quantity:  qty,
	}
}

// CutList returns the frame members sized from the measurements.
// A frame has two sides, so every member comes in pairs.
func CutList(d Design, m Measurements) []Member {
	beam := NewMember("Main beam", m.MainBeamMinimumLength, d.BeamThickness, 2)
	beam.Note = fmt.Sprintf("notch at %.4f in, rear notch %.0f in from end", m.NotchHoleDistance, d.RearNotchOffset)

	support := NewMember("Rear support", m.RearSupportTotalHeight, d.BeamThickness, 2)
	support.Note = fmt.Sprintf("wedge %.4f in, %.0f in clearance", m.RearSupportWedgeHeight, d.RearNotchClearance)

	leg := NewMember("Back leg", d.BackLegLength, d.BoardThickness, 2)
	leg.Note = fmt.Sprintf("post notch %.2f in (min %.4f in)", d.PostNotchLength, m.MinimumPostNotchLength)

	return []Member{beam, support, leg}
}

// TotalLength returns the stock length needed for all members, in inches.
func TotalLength(members []Member) float64 {
	var total float64
	for _, mem := range members {
		total += mem.Length * float64(mem.Quantity)
	}
	return total
}
