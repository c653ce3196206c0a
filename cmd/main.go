package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"traffic-density/config"
	telegram "traffic-density/internal/api"
	"traffic-density/internal/container"
	"traffic-density/internal/domain/port"
	"traffic-density/internal/infrastructure/fetch"
	"traffic-density/internal/infrastructure/storage"
	"traffic-density/internal/infrastructure/vision"
	"traffic-density/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// логгер ещё не настроен, пишем в stderr
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Маски зон строятся один раз на файл эталона
	masks := storage.NewMemoryMaskCache(vision.NewZoneBuilder(cfg.Marker))
	frames := fetch.NewHTTPFrameSource(cfg.FetchTimeout)

	var detector port.VehicleDetector
	switch cfg.Detector {
	case config.DetectorONNX:
		onnx, err := vision.NewONNXDetector(cfg.DetectorModel)
		if err != nil {
			log.Fatal().Err(err).Str("model", cfg.DetectorModel).Msg("failed to load detector model")
		}
		defer onnx.Close()
		detector = onnx
	default:
		detector = vision.NewHTTPDetector(cfg.DetectorEndpoint, cfg.DetectorTimeout)
	}

	// Хранилище замеров опционально
	var repo port.ObservationRepository
	if cfg.DBPath != "" {
		sqliteRepo, err := storage.NewSQLiteObservationRepository(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open observation store")
		}
		defer sqliteRepo.Close()
		repo = sqliteRepo
	}

	appContainer := container.New(container.Options{
		Cameras:    cfg.Cameras,
		Routes:     cfg.Routes,
		Confidence: cfg.Confidence,
		Workers:    cfg.Workers,
	}, masks, frames, detector, repo)

	log.Info().
		Int("cameras", len(cfg.Cameras)).
		Int("routes", len(cfg.Routes)).
		Str("detector", cfg.Detector).
		Int("workers", cfg.Workers).
		Msg("services ready")

	if cfg.TelegramToken == "" {
		// Без токена выполняем один прогон и выходим
		run, err := appContainer.CollectionService.Run(ctx, cfg.Routes)
		if err != nil {
			log.Error().Err(err).Msg("collection run")
		}
		for _, rr := range run.Routes {
			if rr.CameraID == "" {
				continue
			}
			fmt.Printf("%s -> %s: %s\n", rr.Route.Origin, rr.Route.Destination, rr.Result.Level)
		}
		log.Info().Str("run_id", run.ID).Int("cameras", run.Cameras).Msg("collection run finished")
		return
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot")
	}

	log.Info().Msg("bot is running")
	if err := bot.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("bot error")
	}
	log.Info().Msg("bot stopped")
}
