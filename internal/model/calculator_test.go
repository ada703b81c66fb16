package model

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCalculate(t *testing.T, d Design) Measurements {
	t.Helper()
	m, err := Calculate(d)
	require.NoError(t, err)
	return m
}

func TestCalculateSeatAndBackAngles(t *testing.T) {
	m := mustCalculate(t, DefaultDesign())

	assert.InDelta(t, 11.3099, m.SeatAngle, 0.0001, "seat angle is atan(0.2)")
	assert.InDelta(t, 0.6901, m.SeatAngleError, 0.0001)
	assert.InDelta(t, 103.6901, m.BackAngleDelta, 0.0001)
	assert.InDelta(t, 76.3099, m.EffectiveRearAngle, 0.0001)
}

func TestCalculateLawOfSinesOffsets(t *testing.T) {
	m := mustCalculate(t, DefaultDesign())

	assert.InDelta(t, 15.44, m.SinMultiplier, 0.05)
	assert.InDelta(t, 51.845, m.OtherAngles, 0.0001)
	assert.InDelta(t, 12.1400, m.OtherOffsets, 0.0001)

	// Both offsets sit on the same triangle: b / sin(B) == c / sin(C)
	assert.InDelta(t, m.SinMultiplier, m.OtherOffsets/SinDeg(m.OtherAngles), 1e-9)
}

func TestCalculateFailureLoads(t *testing.T) {
	m := mustCalculate(t, DefaultDesign())

	if m.FailureLoadTop != 430.0*2/3 {
		t.Errorf("expected failure load top %f, got %f", 430.0*2/3, m.FailureLoadTop)
	}
	if m.FailureLoadEven != m.FailureLoadTop*2 {
		t.Errorf("expected failure load even to double top load, got %f", m.FailureLoadEven)
	}
	if m.MaximumLBF != 860 {
		t.Errorf("expected maximum lbf 860, got %f", m.MaximumLBF)
	}
	if m.SIAtShearFailure != 970.0/860 {
		t.Errorf("expected si at shear failure %f, got %f", 970.0/860, m.SIAtShearFailure)
	}
	assert.InDelta(t, 0.8203, m.MinimumPostNotchLength, 0.0001)
}

func TestCalculateMainBeam(t *testing.T) {
	m := mustCalculate(t, DefaultDesign())

	assert.InDelta(t, 2.572, m.BeamIntersection, 0.01)
	assert.InDelta(t, m.BeamIntersection+m.OtherOffsets, m.NotchHoleDistance, 1e-12)
	assert.InDelta(t, 26+m.BeamIntersection+m.OtherOffsets+3, m.MainBeamMinimumLength, 1e-12)
	assert.InDelta(t, (m.MainBeamMinimumLength-4)*SinDeg(m.SeatAngle), m.MainBeamDrop, 1e-12)
}

func TestCalculateRearSupport(t *testing.T) {
	m := mustCalculate(t, DefaultDesign())

	assert.InDelta(t, 16-5-m.MainBeamDrop, m.RearSupportHeight, 1e-12)
	// The hand-rounded 3.22 comes from this value.
	assert.InDelta(t, 3.21, m.RearSupportHeight, 0.005)
	assert.InDelta(t, 4.902, m.RearSupportWedgeHeight, 0.001)
	assert.InDelta(t, 8.122, m.RearSupportTotalHeight, 0.001)
}

func TestCalculateIsIdempotent(t *testing.T) {
	first := mustCalculate(t, DefaultDesign())
	second := mustCalculate(t, DefaultDesign())
	assert.Equal(t, first, second)

	var a, b bytes.Buffer
	require.NoError(t, WriteReport(&a, first))
	require.NoError(t, WriteReport(&b, second))
	assert.Equal(t, a.String(), b.String())
}

func TestCalculateBackLegLengthIsLinear(t *testing.T) {
	base := mustCalculate(t, DefaultDesign())

	for _, factor := range []float64{0.5, 2, 3.7} {
		d := DefaultDesign()
		d.BackLegLength *= factor
		m := mustCalculate(t, d)

		assert.InDelta(t, base.SinMultiplier*factor, m.SinMultiplier, 1e-9, "factor %.1f", factor)
		assert.InDelta(t, base.OtherOffsets*factor, m.OtherOffsets, 1e-9, "factor %.1f", factor)
		if factor > 1 {
			assert.Greater(t, m.OtherOffsets, base.OtherOffsets)
		}
	}
}

func TestCalculateZeroCompressionRatio(t *testing.T) {
	d := DefaultDesign()
	d.CompressionRatio = 0

	_, err := Calculate(d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonFinite))
	assert.Contains(t, err.Error(), "failure load top")
}

func TestCalculateZeroBoardThickness(t *testing.T) {
	d := DefaultDesign()
	d.BoardThickness = 0

	_, err := Calculate(d)
	require.ErrorIs(t, err, ErrNonFinite)
	assert.Contains(t, err.Error(), "minimum post notch length")
}

func TestWriteReportEndToEnd(t *testing.T) {
	m := mustCalculate(t, DefaultDesign())

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, m))

	expected := []string{
		"seat angle error = 0.690068",
		"back angle delta = 103.690068",
		"effective rear angle = 76.3099",
		"sin multiplier = 15.4386",
		"other angles = 51.8450, other offsets = 12.1400",
		"failure load top = 286.6667, failure load even = 573.3333",
		"maximum lbf = 860.0000, si at shear failure = 1.1279, minimum post notch length = 0.8203",
		"beam intersection = 2.5731",
		"notch hole distance = 14.7131",
		"main beam minimum length = 43.7131",
		"main beam drop = 7.7884, rear support height = 3.2116",
		"rear support wedge height = 4.9029, rear support total height = 8.1229",
	}
	got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, expected, got)
}

func TestLinesCoverEveryQuantity(t *testing.T) {
	m := mustCalculate(t, DefaultDesign())

	values := m.Quantities()
	if len(values) != 19 {
		t.Fatalf("expected 19 quantities, got %d", len(values))
	}
	if values[0].Label != "seat angle" {
		t.Errorf("expected seat angle first, got %q", values[0].Label)
	}
	for _, v := range values {
		if math.IsNaN(v.Value) {
			t.Errorf("%s is NaN", v.Label)
		}
	}
}
