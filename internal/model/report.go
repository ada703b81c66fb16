package model

import (
	"fmt"
	"io"
	"strings"
)

// Value is a labeled quantity with the printf verb used to print it.
type Value struct {
	Label string
	Value float64
	Verb  string
}

func (v Value) String() string {
	return fmt.Sprintf("%s = "+v.Verb, v.Label, v.Value)
}

// Line is one line of the report: one or more related values.
type Line []Value

func (l Line) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

const (
	verbFull  = "%f"
	verbFixed = "%.4f"
)

// Lines returns the report in evaluation order.
func (m Measurements) Lines() []Line {
	fixed := func(label string, v float64) Value {
		return Value{Label: label, Value: v, Verb: verbFixed}
	}
	return []Line{
		{{Label: "seat angle error", Value: m.SeatAngleError, Verb: verbFull}},
		{{Label: "back angle delta", Value: m.BackAngleDelta, Verb: verbFull}},
		{fixed("effective rear angle", m.EffectiveRearAngle)},
		{fixed("sin multiplier", m.SinMultiplier)},
		{fixed("other angles", m.OtherAngles), fixed("other offsets", m.OtherOffsets)},
		{fixed("failure load top", m.FailureLoadTop), fixed("failure load even", m.FailureLoadEven)},
		{
			fixed("maximum lbf", m.MaximumLBF),
			fixed("si at shear failure", m.SIAtShearFailure),
			fixed("minimum post notch length", m.MinimumPostNotchLength),
		},
		{fixed("beam intersection", m.BeamIntersection)},
		{fixed("notch hole distance", m.NotchHoleDistance)},
		{fixed("main beam minimum length", m.MainBeamMinimumLength)},
		{fixed("main beam drop", m.MainBeamDrop), fixed("rear support height", m.RearSupportHeight)},
		{
			fixed("rear support wedge height", m.RearSupportWedgeHeight),
			fixed("rear support total height", m.RearSupportTotalHeight),
		},
	}
}

// Quantities flattens every derived value, seat angle included, in evaluation order.
func (m Measurements) Quantities() []Value {
	values := []Value{{Label: "seat angle", Value: m.SeatAngle, Verb: verbFixed}}
	for _, line := range m.Lines() {
		values = append(values, line...)
	}
	return values
}

// WriteReport prints the report, one line per stage.
func WriteReport(w io.Writer, m Measurements) error {
	for _, line := range m.Lines() {
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}
