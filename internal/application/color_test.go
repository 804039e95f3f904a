package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"delta-detect/internal/domain/entity"
)

func solidFrame(w, h int, b, g, r uint8) *entity.Frame {
	f := entity.NewFrame(w, h)
	f.Fill(b, g, r)
	return f
}

func TestDetectColors_SolidRed(t *testing.T) {
	svc := NewColorService()
	breakdown := svc.DetectColors(solidFrame(10, 10, 0, 0, 255))

	require.Equal(t, entity.ColorBreakdown{"red_low": 100.0}, breakdown)
}

func TestDetectColors_ZeroArea(t *testing.T) {
	svc := NewColorService()
	require.Empty(t, svc.DetectColors(&entity.Frame{}))
	require.Empty(t, svc.DetectColors(entity.NewFrame(10, 10).Region(entity.BoundingBox{X: 20, Y: 20, Width: 5, Height: 5})))
}

func TestDetectColors_RetentionThreshold(t *testing.T) {
	svc := NewColorService()

	// 4 of 100 pixels green: below the 5% retention bar.
	f := solidFrame(10, 10, 0, 0, 255)
	for x := 0; x < 4; x++ {
		f.SetBGR(x, 0, 0, 255, 0)
	}
	breakdown := svc.DetectColors(f)
	require.NotContains(t, breakdown, "green")
	require.InDelta(t, 96.0, breakdown["red_low"], 0.01)
}

func TestDetectColors_BothRedRanges(t *testing.T) {
	svc := NewColorService()

	// Top half low-hue red, bottom half high-hue red (H around 175).
	f := entity.NewFrame(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if y < 5 {
				f.SetBGR(x, y, 0, 0, 255)
			} else {
				f.SetBGR(x, y, 42, 0, 255)
			}
		}
	}

	breakdown := svc.DetectColors(f)
	require.InDelta(t, 50.0, breakdown["red_low"], 0.01)
	require.InDelta(t, 50.0, breakdown["red_high"], 0.01)
}

func TestDominantColors_DedupesDisplayNames(t *testing.T) {
	svc := NewColorService()
	breakdown := entity.ColorBreakdown{"red_low": 40.0, "red_high": 30.0, "green": 20.0, "blue": 10.0}

	dominant := svc.DominantColors(breakdown, 3)
	require.Equal(t, []string{"red", "green", "blue"}, dominant)
}

func TestDominantColors_CapAndOrder(t *testing.T) {
	svc := NewColorService()
	breakdown := entity.ColorBreakdown{"orange": 15.0, "yellow": 25.0, "green": 35.0, "blue": 45.0, "purple": 5.5}

	dominant := svc.DominantColors(breakdown, 3)
	require.Equal(t, []string{"blue", "green", "yellow"}, dominant)

	require.Empty(t, svc.DominantColors(entity.ColorBreakdown{}, 3))
}

func TestDominantColors_TiesFollowCatalogOrder(t *testing.T) {
	svc := NewColorService()
	breakdown := entity.ColorBreakdown{"blue": 20.0, "orange": 20.0, "green": 20.0}

	require.Equal(t, []string{"orange", "green", "blue"}, svc.DominantColors(breakdown, 3))
}

func TestEvaluateImpact_NormalNeverProblematic(t *testing.T) {
	svc := NewColorService()
	breakdown := entity.ColorBreakdown{"red_low": 90.0, "green": 90.0}

	problematic, warning := svc.EvaluateImpact(breakdown, entity.ProfileNormal)
	require.False(t, problematic)
	require.Empty(t, warning)
}

func TestEvaluateImpact_Protanopia(t *testing.T) {
	svc := NewColorService()

	problematic, warning := svc.EvaluateImpact(entity.ColorBreakdown{"red_low": 40.0}, entity.ProfileProtanopia)
	require.True(t, problematic)
	require.Equal(t, "Contains red - may be difficult to see", warning)
}

func TestEvaluateImpact_FlagThreshold(t *testing.T) {
	svc := NewColorService()

	// Green exceeds 10% and is problematic; yellow is retained but
	// stays below the flag bar.
	breakdown := entity.ColorBreakdown{"green": 12.0, "yellow": 8.0}
	problematic, warning := svc.EvaluateImpact(breakdown, entity.ProfileDeuteranomaly)
	require.True(t, problematic)
	require.Contains(t, warning, "green")
	require.NotContains(t, warning, "yellow")
}

func TestEvaluateImpact_WarningNamesAtMostTwo(t *testing.T) {
	svc := NewColorService()

	breakdown := entity.ColorBreakdown{"red_low": 30.0, "orange": 25.0, "green": 20.0}
	problematic, warning := svc.EvaluateImpact(breakdown, entity.ProfileProtanopia)
	require.True(t, problematic)
	require.Equal(t, "Contains red, orange - may be difficult to see", warning)
}

func TestEvaluateImpact_Achromatopsia(t *testing.T) {
	svc := NewColorService()

	problematic, _ := svc.EvaluateImpact(entity.ColorBreakdown{"purple": 10.5}, entity.ProfileAchromatopsia)
	require.True(t, problematic)

	problematic, _ = svc.EvaluateImpact(entity.ColorBreakdown{"purple": 9.0}, entity.ProfileAchromatopsia)
	require.False(t, problematic)
}

func TestTrafficLightState(t *testing.T) {
	svc := NewColorService()

	state, conf := svc.TrafficLightState(entity.ColorBreakdown{"red_low": 30.0, "red_high": 10.0, "black": 50.0})
	require.Equal(t, "red", state)
	require.InDelta(t, 0.4, conf, 0.001)

	state, _ = svc.TrafficLightState(entity.ColorBreakdown{"green": 45.0})
	require.Equal(t, "green", state)

	state, conf = svc.TrafficLightState(entity.ColorBreakdown{"blue": 80.0})
	require.Equal(t, "unknown", state)
	require.Zero(t, conf)
}

func TestBGRToHSV(t *testing.T) {
	// Pure hues land where the OpenCV-scaled catalog expects them.
	require.Equal(t, entity.HSV{H: 0, S: 255, V: 255}, bgrToHSV(0, 0, 255))    // red
	require.Equal(t, entity.HSV{H: 60, S: 255, V: 255}, bgrToHSV(0, 255, 0))   // green
	require.Equal(t, entity.HSV{H: 120, S: 255, V: 255}, bgrToHSV(255, 0, 0))  // blue
	require.Equal(t, entity.HSV{H: 30, S: 255, V: 255}, bgrToHSV(0, 255, 255)) // yellow
	require.Equal(t, entity.HSV{H: 0, S: 0, V: 255}, bgrToHSV(255, 255, 255))  // white
	require.Equal(t, entity.HSV{H: 0, S: 0, V: 0}, bgrToHSV(0, 0, 0))          // black
}
