package container

import (
	"github.com/sirupsen/logrus"

	app "delta-detect/internal/application"
	"delta-detect/internal/domain/port"
)

type Container struct {
	DetectionService *app.DetectionService
	ColorService     *app.ColorService
	AnalysisService  *app.AnalysisService
}

func New(engine port.InferenceEngine, notifier port.AlertNotifier, log *logrus.Logger) *Container {
	detectionService := app.NewDetectionService(engine, log)
	colorService := app.NewColorService()
	analysisService := app.NewAnalysisService(detectionService, colorService, notifier, log)

	return &Container{
		DetectionService: detectionService,
		ColorService:     colorService,
		AnalysisService:  analysisService,
	}
}
