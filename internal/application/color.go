package app

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"delta-detect/internal/domain/entity"
)

const (
	// retainThreshold is the minimum presence for a bucket to appear
	// in a breakdown at all.
	retainThreshold = 5.0
	// flagThreshold is the higher bar a problematic bucket must clear
	// before it triggers a warning.
	flagThreshold = 10.0
	// dominantColorCount caps the dominant color list.
	dominantColorCount = 3
)

// ColorService classifies region colors against the bucket catalog
// and evaluates their impact for a colorblindness profile.
type ColorService struct{}

// NewColorService creates the service.
func NewColorService() *ColorService {
	return &ColorService{}
}

// DetectColors returns the percentage breakdown of a BGR region over
// the bucket catalog. A zero-area region yields an empty breakdown.
func (s *ColorService) DetectColors(roi *entity.Frame) entity.ColorBreakdown {
	breakdown := entity.ColorBreakdown{}
	total := roi.Area()
	if total == 0 {
		return breakdown
	}

	counts := make([]int, len(entity.ColorBuckets))
	for y := 0; y < roi.Height; y++ {
		for x := 0; x < roi.Width; x++ {
			b, g, r := roi.At(x, y)
			c := bgrToHSV(b, g, r)
			for i, bucket := range entity.ColorBuckets {
				if bucket.Contains(c) {
					counts[i]++
				}
			}
		}
	}

	for i, bucket := range entity.ColorBuckets {
		pct := float64(counts[i]) / float64(total) * 100
		if pct > retainThreshold {
			breakdown[bucket.Name] = math.Round(pct*10) / 10
		}
	}
	return breakdown
}

// DominantColors reduces a breakdown to at most topN distinct display
// names, highest presence first. Ties keep catalog order, and buckets
// sharing a display name count once.
func (s *ColorService) DominantColors(breakdown entity.ColorBreakdown, topN int) []string {
	type bucketPct struct {
		name string
		pct  float64
	}
	ranked := make([]bucketPct, 0, len(breakdown))
	for _, bucket := range entity.ColorBuckets {
		if pct, ok := breakdown[bucket.Name]; ok {
			ranked = append(ranked, bucketPct{bucket.Name, pct})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].pct > ranked[j].pct
	})

	seen := make(map[string]bool)
	dominant := make([]string, 0, topN)
	for _, bp := range ranked {
		display := entity.DisplayName(bp.name)
		if !seen[display] {
			seen[display] = true
			dominant = append(dominant, display)
		}
		if len(dominant) >= topN {
			break
		}
	}
	return dominant
}

// EvaluateImpact decides whether a breakdown is visually risky for a
// profile. Only problematic buckets above the flag threshold trigger a
// warning; the warning names at most the first two of them.
func (s *ColorService) EvaluateImpact(breakdown entity.ColorBreakdown, profile entity.Profile) (bool, string) {
	problematic := profile.ProblematicBuckets()
	if len(problematic) == 0 {
		return false, ""
	}

	var found []string
	for _, bucket := range entity.ColorBuckets {
		pct, ok := breakdown[bucket.Name]
		if !ok {
			continue
		}
		if problematic[bucket.Name] && pct > flagThreshold {
			found = append(found, bucket.Display)
		}
	}
	if len(found) == 0 {
		return false, ""
	}

	if len(found) > 2 {
		found = found[:2]
	}
	return true, fmt.Sprintf("Contains %s - may be difficult to see", strings.Join(found, ", "))
}

// AnalyzeRegion runs the full color analysis of one region.
func (s *ColorService) AnalyzeRegion(roi *entity.Frame, profile entity.Profile) (dominant []string, isProblematic bool, warning string, breakdown entity.ColorBreakdown) {
	breakdown = s.DetectColors(roi)
	dominant = s.DominantColors(breakdown, dominantColorCount)
	isProblematic, warning = s.EvaluateImpact(breakdown, profile)
	return dominant, isProblematic, warning, breakdown
}

// TrafficLightState infers which lamp of a traffic light dominates a
// breakdown. Returns "unknown" with zero confidence when no color
// clearly leads.
func (s *ColorService) TrafficLightState(breakdown entity.ColorBreakdown) (string, float64) {
	red := breakdown["red_low"] + breakdown["red_high"]
	yellow := breakdown["yellow"]
	green := breakdown["green"]

	switch {
	case red > yellow && red > green && red > flagThreshold:
		return "red", math.Min(red/100, 1.0)
	case yellow > red && yellow > green && yellow > flagThreshold:
		return "yellow", math.Min(yellow/100, 1.0)
	case green > red && green > yellow && green > flagThreshold:
		return "green", math.Min(green/100, 1.0)
	}
	return "unknown", 0
}

// bgrToHSV converts one 8-bit BGR pixel to HSV in OpenCV scaling:
// hue halved into [0,180], saturation and value in [0,255].
func bgrToHSV(b, g, r uint8) entity.HSV {
	rf, gf, bf := float64(r), float64(g), float64(b)
	v := math.Max(rf, math.Max(gf, bf))
	m := math.Min(rf, math.Min(gf, bf))
	delta := v - m

	var s float64
	if v > 0 {
		s = delta / v * 255
	}

	var h float64
	if delta > 0 {
		switch v {
		case rf:
			h = 60 * (gf - bf) / delta
		case gf:
			h = 120 + 60*(bf-rf)/delta
		default:
			h = 240 + 60*(rf-gf)/delta
		}
		if h < 0 {
			h += 360
		}
	}

	return entity.HSV{
		H: uint8(h/2 + 0.5),
		S: uint8(s + 0.5),
		V: uint8(v),
	}
}
