package app

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"delta-detect/internal/domain/entity"
	"delta-detect/internal/domain/port"
)

// defaultWarning is used in alerts when a problematic object carries
// no specific color warning.
const defaultWarning = "color may be hard to see"

// AnalysisService runs the full per-frame pipeline: detection,
// per-region color analysis and alert synthesis.
type AnalysisService struct {
	detections *DetectionService
	colors     *ColorService
	notifier   port.AlertNotifier
	log        *logrus.Logger
}

// NewAnalysisService wires the pipeline. The notifier may be nil.
func NewAnalysisService(detections *DetectionService, colors *ColorService, notifier port.AlertNotifier, log *logrus.Logger) *AnalysisService {
	if log == nil {
		log = logrus.New()
	}
	return &AnalysisService{
		detections: detections,
		colors:     colors,
		notifier:   notifier,
		log:        log,
	}
}

// Analyze processes one frame for a colorblindness profile and returns
// the ranked objects plus the capped frame alert.
func (s *AnalysisService) Analyze(ctx context.Context, frame *entity.Frame, profile entity.Profile, minConfidence float64) (*entity.DetectionResult, error) {
	start := time.Now()

	detections, err := s.detections.Detect(ctx, frame, minConfidence)
	if err != nil {
		return nil, fmt.Errorf("analyze frame: %w", err)
	}

	objects := make([]entity.AnalyzedObject, 0, len(detections))
	var alerts []string

	for _, det := range detections {
		roi := frame.Region(det.Box)
		dominant, isProblematic, warning, breakdown := s.colors.AnalyzeRegion(roi, profile)
		priority := FinalPriority(det.Label, isProblematic)

		obj := entity.AnalyzedObject{
			Label:              det.Label,
			Confidence:         det.Confidence,
			Box:                det.Box,
			DominantColors:     dominant,
			IsProblematicColor: isProblematic,
			ColorWarning:       warning,
			Priority:           priority,
		}

		if strings.Contains(strings.ToLower(det.Label), "traffic light") {
			if state, _ := s.colors.TrafficLightState(breakdown); state != "unknown" {
				obj.TrafficLightState = state
			}
		}

		objects = append(objects, obj)

		if isProblematic && (priority == entity.PriorityCritical || priority == entity.PriorityHigh) {
			text := warning
			if text == "" {
				text = defaultWarning
			}
			alerts = append(alerts, fmt.Sprintf("%s: %s", det.Label, text))
		}
	}

	alertMessage := buildAlertMessage(alerts)
	if alertMessage != "" && s.notifier != nil {
		if err := s.notifier.Notify(ctx, alertMessage); err != nil {
			s.log.WithError(err).Error("failed to push alert")
		}
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000

	return &entity.DetectionResult{
		Success:          true,
		Objects:          objects,
		FrameWidth:       frame.Width,
		FrameHeight:      frame.Height,
		ProcessingTimeMS: math.Round(elapsed*100) / 100,
		AlertMessage:     alertMessage,
	}, nil
}
