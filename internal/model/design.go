package model

import (
	"reflect"
	"strings"
)

// Design holds the input constants of a futon frame.
// Lengths are inches, angles degrees, strengths PSI.
type Design struct {
	// Seat and back geometry
	IdealSeatAngle float64 `json:"ideal_seat_angle" yaml:"ideal_seat_angle"` // degrees
	SeatRise       float64 `json:"seat_rise" yaml:"seat_rise"`               // slope numerator
	SeatRun        float64 `json:"seat_run" yaml:"seat_run"`                 // slope denominator
	BackAngle      float64 `json:"back_angle" yaml:"back_angle"`             // degrees between seat and back
	BackLegLength  float64 `json:"back_leg_length" yaml:"back_leg_length"`   // in

	// Material strength (spruce)
	FailurePSI              float64 `json:"failure_psi" yaml:"failure_psi"`                               // cross-grain crush strength
	CrossSectionSI          float64 `json:"cross_section_si" yaml:"cross_section_si"`                     // bearing area, sq in
	CompressionRatio        float64 `json:"compression_ratio" yaml:"compression_ratio"`                   // top-only vs even bearing
	ParallelShearFailurePSI float64 `json:"parallel_shear_failure_psi" yaml:"parallel_shear_failure_psi"` // shear parallel to grain

	// Stock dimensions
	BoardThickness float64 `json:"board_thickness" yaml:"board_thickness"` // in
	BeamThickness  float64 `json:"beam_thickness" yaml:"beam_thickness"`   // in

	// Hand-picked values
	PostNotchLength          float64 `json:"post_notch_length" yaml:"post_notch_length"`                     // in
	RoundedRearSupportHeight float64 `json:"rounded_rear_support_height" yaml:"rounded_rear_support_height"` // in

	// Fixed offsets
	SeatDepth          float64 `json:"seat_depth" yaml:"seat_depth"`                     // hinge to seat edge, in
	RearNotchOffset    float64 `json:"rear_notch_offset" yaml:"rear_notch_offset"`       // in
	RearNotchClearance float64 `json:"rear_notch_clearance" yaml:"rear_notch_clearance"` // in
	FrontBeamHeight    float64 `json:"front_beam_height" yaml:"front_beam_height"`       // floor to beam top, in
}

const (
	// DefaultPostNotchLength is a safety margin picked by hand. The shear
	// minimum works out to about 0.82".
	DefaultPostNotchLength = 3.0

	// DefaultRoundedRearSupportHeight is the computed rear support height
	// (3.21") rounded up by hand to a markable value.
	DefaultRoundedRearSupportHeight = 3.22
)

// DefaultDesign returns the constants the frame was designed with.
func DefaultDesign() Design {
	return Design{
		IdealSeatAngle: 12,
		SeatRise:       1,
		SeatRun:        5,
		BackAngle:      115,
		BackLegLength:  15,

		FailurePSI:              430,
		CrossSectionSI:          2,
		CompressionRatio:        3,
		ParallelShearFailurePSI: 970,

		BoardThickness: 1.375,
		BeamThickness:  5,

		PostNotchLength:          DefaultPostNotchLength,
		RoundedRearSupportHeight: DefaultRoundedRearSupportHeight,

		SeatDepth:          26,
		RearNotchOffset:    4,
		RearNotchClearance: 1,
		FrontBeamHeight:    16,
	}
}

// SeatSlope returns rise over run of the seat.
func (d Design) SeatSlope() float64 {
	return d.SeatRise / d.SeatRun
}

// Values lists the constants keyed by their json names, in declaration order.
func (d Design) Values() []Value {
	v := reflect.ValueOf(d)
	t := v.Type()
	values := make([]Value, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		values = append(values, Value{Label: fieldKey(t.Field(i)), Value: v.Field(i).Float(), Verb: "%g"})
	}
	return values
}

// Set assigns the constant named key. It returns false for unknown keys.
func (d *Design) Set(key string, value float64) bool {
	v := reflect.ValueOf(d).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if fieldKey(t.Field(i)) == key {
			v.Field(i).SetFloat(value)
			return true
		}
	}
	return false
}

func fieldKey(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	return name
}
