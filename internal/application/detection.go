package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"delta-detect/internal/domain/entity"
	"delta-detect/internal/domain/port"
)

// nmsThreshold is the IoU above which a lower-scoring box is
// suppressed as a duplicate.
const nmsThreshold = 0.4

// DetectionService turns raw anchor output from the inference engine
// into final, deduplicated, priority-sorted detections.
type DetectionService struct {
	engine port.InferenceEngine
	log    *logrus.Logger
}

// NewDetectionService creates the service around an engine.
func NewDetectionService(engine port.InferenceEngine, log *logrus.Logger) *DetectionService {
	if log == nil {
		log = logrus.New()
	}
	return &DetectionService{engine: engine, log: log}
}

// Detect runs the engine on a frame and postprocesses its output. An
// unloaded engine yields an empty list; an engine failure is the one
// terminal error for the request.
func (s *DetectionService) Detect(ctx context.Context, frame *entity.Frame, confThreshold float64) ([]entity.Detection, error) {
	if s.engine == nil || !s.engine.IsLoaded() {
		s.log.Warn("model not loaded, skipping detection")
		return []entity.Detection{}, nil
	}

	rows, err := s.engine.Detect(ctx, frame, confThreshold)
	if err != nil {
		return nil, fmt.Errorf("inference: %w", err)
	}

	return s.postprocess(rows, frame.Width, frame.Height, confThreshold), nil
}

type candidate struct {
	x, y, w, h int
	classID    int
	score      float64
}

// postprocess decodes anchor rows into pixel boxes, suppresses
// overlapping duplicates, clips to frame bounds and sorts by static
// priority.
func (s *DetectionService) postprocess(rows [][]float32, width, height int, confThreshold float64) []entity.Detection {
	candidates := make([]candidate, 0, len(rows))
	for _, row := range rows {
		if len(row) < 5 {
			continue
		}

		// Highest-scoring class wins the row.
		classID := 0
		score := row[4]
		for i, v := range row[4:] {
			if v > score {
				score = v
				classID = i
			}
		}
		if float64(score) <= confThreshold {
			continue
		}

		// Normalized center/size to absolute top-left box.
		cx := int(float64(row[0]) * float64(width))
		cy := int(float64(row[1]) * float64(height))
		w := int(float64(row[2]) * float64(width))
		h := int(float64(row[3]) * float64(height))

		candidates = append(candidates, candidate{
			x:       cx - w/2,
			y:       cy - h/2,
			w:       w,
			h:       h,
			classID: classID,
			score:   float64(score),
		})
	}

	kept := suppressOverlaps(candidates)

	detections := make([]entity.Detection, 0, len(kept))
	for _, c := range kept {
		if c.classID >= len(entity.COCOClasses) {
			continue
		}
		label := entity.COCOClasses[c.classID]

		// Clip to frame bounds.
		x, y, w, h := c.x, c.y, c.w, c.h
		if x < 0 {
			x = 0
		}
		if y < 0 {
			y = 0
		}
		if w > width-x {
			w = width - x
		}
		if h > height-y {
			h = height - y
		}
		if w < 0 {
			w = 0
		}
		if h < 0 {
			h = 0
		}

		traits := entity.TraitsFor(label)
		detections = append(detections, entity.Detection{
			Label:          label,
			Confidence:     c.score,
			Box:            entity.BoundingBox{X: x, Y: y, Width: w, Height: h},
			StaticPriority: traits.Priority,
			ColorRelevant:  traits.ColorRelevant,
		})
	}

	sort.SliceStable(detections, func(i, j int) bool {
		return detections[i].StaticPriority.Rank() < detections[j].StaticPriority.Rank()
	})

	return detections
}

// suppressOverlaps keeps the highest-scoring box of each overlapping
// neighborhood (greedy NMS).
func suppressOverlaps(candidates []candidate) []candidate {
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return candidates[order[i]].score > candidates[order[j]].score
	})

	suppressed := make([]bool, len(candidates))
	kept := make([]candidate, 0, len(candidates))
	for i, oi := range order {
		if suppressed[oi] {
			continue
		}
		kept = append(kept, candidates[oi])
		for _, oj := range order[i+1:] {
			if suppressed[oj] {
				continue
			}
			if iou(candidates[oi], candidates[oj]) > nmsThreshold {
				suppressed[oj] = true
			}
		}
	}
	return kept
}

// iou computes intersection-over-union of two candidate boxes.
func iou(a, b candidate) float64 {
	ix := max(a.x, b.x)
	iy := max(a.y, b.y)
	ix2 := min(a.x+a.w, b.x+b.w)
	iy2 := min(a.y+a.h, b.y+b.h)

	iw := ix2 - ix
	ih := iy2 - iy
	if iw <= 0 || ih <= 0 {
		return 0
	}

	inter := float64(iw * ih)
	union := float64(a.w*a.h+b.w*b.h) - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}
