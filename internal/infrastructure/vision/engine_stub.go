//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"delta-detect/internal/domain/entity"
	"delta-detect/internal/domain/port"
)

// YOLOEngine is the detector stub for builds without the gocv tag. It
// never reports loaded, so the pipeline degrades to empty detections.
type YOLOEngine struct {
	log *logrus.Logger
}

// NewYOLOEngine creates the stub engine.
func NewYOLOEngine(modelDir string, log *logrus.Logger) *YOLOEngine {
	_ = modelDir
	if log == nil {
		log = logrus.New()
	}
	log.Warn("built without gocv tag, detection disabled")
	return &YOLOEngine{log: log}
}

// IsLoaded always reports false for the stub.
func (e *YOLOEngine) IsLoaded() bool {
	return false
}

// Detect returns an error; callers gate on IsLoaded and never reach it.
func (e *YOLOEngine) Detect(ctx context.Context, frame *entity.Frame, confThreshold float64) ([][]float32, error) {
	_ = ctx
	_ = frame
	_ = confThreshold
	return nil, errors.New("gocv build tag is not enabled")
}

// Close is a no-op for the stub.
func (e *YOLOEngine) Close() error {
	return nil
}

var _ port.InferenceEngine = (*YOLOEngine)(nil)
