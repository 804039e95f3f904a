package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"delta-detect/config"
	"delta-detect/internal/api"
	"delta-detect/internal/container"
	"delta-detect/internal/domain/port"
	"delta-detect/internal/infrastructure/imaging"
	"delta-detect/internal/infrastructure/notify"
	"delta-detect/internal/infrastructure/vision"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Info("Loading YOLO model...")
	engine := vision.NewYOLOEngine(cfg.ModelDir, log)
	if !engine.IsLoaded() {
		log.Warn("Model not loaded, /detect will return empty results")
	}
	defer engine.Close()

	var notifier port.AlertNotifier
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.WithError(err).Warn("Telegram notifier disabled")
		} else {
			notifier = tg
			log.Info("Telegram alert notifier enabled")
		}
	}

	services := container.New(engine, notifier, log)
	server := api.NewServer(services.AnalysisService, engine, imaging.NewStdDecoder(), cfg.ConfidenceThreshold, log)

	addr := ":" + cfg.Port
	log.Infof("Detection service listening on %s", addr)
	if err := http.ListenAndServe(addr, server.Routes()); err != nil {
		log.Fatal(err)
	}
}
