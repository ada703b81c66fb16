package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFinite is returned when a derived quantity comes out as NaN or ±Inf,
// typically because a design constant put a zero into a denominator.
var ErrNonFinite = errors.New("non-finite result")

// Measurements holds every quantity derived from a Design.
type Measurements struct {
	SeatAngle      float64 `json:"seat_angle"`       // degrees from horizontal
	SeatAngleError float64 `json:"seat_angle_error"` // ideal minus actual, degrees
	BackAngleDelta float64 `json:"back_angle_delta"` // degrees

	// Law of sines on the back leg triangle
	EffectiveRearAngle float64 `json:"effective_rear_angle"` // degrees
	SinMultiplier      float64 `json:"sin_multiplier"`       // in
	OtherAngles        float64 `json:"other_angles"`         // degrees
	OtherOffsets       float64 `json:"other_offsets"`        // in

	// Crush and shear limits
	FailureLoadTop         float64 `json:"failure_load_top"`          // lbf, load on top edge only
	FailureLoadEven        float64 `json:"failure_load_even"`         // lbf, load spread evenly
	MaximumLBF             float64 `json:"maximum_lbf"`               // lbf
	SIAtShearFailure       float64 `json:"si_at_shear_failure"`       // sq in
	MinimumPostNotchLength float64 `json:"minimum_post_notch_length"` // in

	// Main beam
	BeamIntersection      float64 `json:"beam_intersection"`        // in
	NotchHoleDistance     float64 `json:"notch_hole_distance"`      // in, from hinge
	MainBeamMinimumLength float64 `json:"main_beam_minimum_length"` // in
	MainBeamDrop          float64 `json:"main_beam_drop"`           // in

	// Rear support
	RearSupportHeight      float64 `json:"rear_support_height"`       // in, below the beam
	RearSupportWedgeHeight float64 `json:"rear_support_wedge_height"` // in
	RearSupportTotalHeight float64 `json:"rear_support_total_height"` // in
}

// Calculate evaluates the frame measurements from a design.
// Each step only reads values produced by the steps before it.
func Calculate(d Design) (Measurements, error) {
	var m Measurements

	// Seat
	m.SeatAngle = AtanDeg(d.SeatSlope())
	m.SeatAngleError = d.IdealSeatAngle - m.SeatAngle
	m.BackAngleDelta = d.BackAngle - m.SeatAngle

	// Back leg offsets by the law of sines
	m.EffectiveRearAngle = 180 - m.BackAngleDelta
	m.SinMultiplier = d.BackLegLength / SinDeg(m.EffectiveRearAngle)
	m.OtherAngles = m.BackAngleDelta / 2
	m.OtherOffsets = m.SinMultiplier * SinDeg(m.OtherAngles)

	// Cross-grain crush
	m.FailureLoadTop = d.FailurePSI * d.CrossSectionSI / d.CompressionRatio
	m.FailureLoadEven = m.FailureLoadTop * 2

	// Shear along the grain past the post notch
	m.MaximumLBF = d.FailurePSI * d.CrossSectionSI
	m.SIAtShearFailure = d.ParallelShearFailurePSI / m.MaximumLBF
	m.MinimumPostNotchLength = m.SIAtShearFailure / d.BoardThickness

	// Main beam
	m.BeamIntersection = (d.BeamThickness / 2) / SinDeg(m.EffectiveRearAngle)
	m.NotchHoleDistance = m.BeamIntersection + m.OtherOffsets
	m.MainBeamMinimumLength = d.SeatDepth + m.BeamIntersection + m.OtherOffsets + d.PostNotchLength
	m.MainBeamDrop = (m.MainBeamMinimumLength - d.RearNotchOffset) * SinDeg(m.SeatAngle)

	// Rear support
	m.RearSupportHeight = d.FrontBeamHeight - d.BeamThickness - m.MainBeamDrop
	m.RearSupportWedgeHeight = d.BeamThickness * CosDeg(m.SeatAngle)
	m.RearSupportTotalHeight = d.RoundedRearSupportHeight + m.RearSupportWedgeHeight

	if err := m.checkFinite(); err != nil {
		return Measurements{}, err
	}
	return m, nil
}

// checkFinite reports the first quantity, in evaluation order, that is NaN or infinite.
func (m Measurements) checkFinite() error {
	for _, q := range m.Quantities() {
		if math.IsNaN(q.Value) || math.IsInf(q.Value, 0) {
			return fmt.Errorf("%s: %w", q.Label, ErrNonFinite)
		}
	}
	return nil
}
