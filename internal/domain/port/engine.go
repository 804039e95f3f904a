package port

import (
	"context"

	"delta-detect/internal/domain/entity"
)

// InferenceEngine runs the detection model's forward pass.
type InferenceEngine interface {
	// Detect returns the raw pre-NMS anchor rows for a frame. Each row
	// is [cx, cy, w, h, class scores...] with normalized coordinates.
	// The confidence threshold is advisory: implementations may
	// pre-filter rows but are not required to.
	Detect(ctx context.Context, frame *entity.Frame, confThreshold float64) ([][]float32, error)

	// IsLoaded reports whether the model is ready. When false, callers
	// skip detection and degrade to an empty result.
	IsLoaded() bool
}
