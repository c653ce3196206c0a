package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"traffic-density/internal/domain/entity"
	"traffic-density/internal/domain/port"
)

// DefaultConfidence порог уверенности детектора по умолчанию
const DefaultConfidence = 0.25

// CongestionService оценивает загруженность одной камеры:
// маска зоны, живой кадр, детекция, классификация.
type CongestionService struct {
	cameras    map[string]entity.Camera
	masks      port.ZoneMaskBuilder
	frames     port.FrameSource
	detector   port.VehicleDetector
	confidence float64
}

// NewCongestionService создаёт сервис оценки загруженности.
// Детектор создаётся один раз на процесс и передаётся сюда явно.
func NewCongestionService(cameras []entity.Camera, masks port.ZoneMaskBuilder, frames port.FrameSource, detector port.VehicleDetector, confidence float64) *CongestionService {
	if confidence <= 0 {
		confidence = DefaultConfidence
	}
	byID := make(map[string]entity.Camera, len(cameras))
	for _, c := range cameras {
		byID[c.ID] = c
	}
	return &CongestionService{
		cameras:    byID,
		masks:      masks,
		frames:     frames,
		detector:   detector,
		confidence: confidence,
	}
}

// Cameras возвращает таблицу камер по идентификатору
func (s *CongestionService) Cameras() map[string]entity.Camera {
	return s.cameras
}

// Evaluate оценивает камеру. Любая ошибка даёт NA вместе с причиной;
// ошибки одной камеры не влияют на остальные.
func (s *CongestionService) Evaluate(ctx context.Context, cameraID string) (entity.DensityResult, error) {
	res, err := s.evaluate(ctx, cameraID)
	if err == nil {
		log.Info().
			Str("camera_id", cameraID).
			Str("level", string(res.Level)).
			Float64("density", res.Density).
			Msg("camera evaluated")
		return res, nil
	}

	if errors.Is(err, entity.ErrEmptyZone) {
		log.Warn().Err(err).Str("camera_id", cameraID).Msg("reference image has no zone markers")
	} else {
		log.Error().Err(err).Str("camera_id", cameraID).Msg("camera evaluation failed")
	}
	return entity.NotAvailable(), err
}

func (s *CongestionService) evaluate(ctx context.Context, cameraID string) (entity.DensityResult, error) {
	cam, ok := s.cameras[cameraID]
	if !ok {
		return entity.NotAvailable(), fmt.Errorf("%w: %s", entity.ErrUnknownCamera, cameraID)
	}
	if s.masks == nil || s.frames == nil || s.detector == nil {
		return entity.NotAvailable(), errors.New("congestion pipeline is not configured")
	}

	mask, err := s.masks.Build(ctx, cam.ReferencePath)
	if err != nil {
		return entity.NotAvailable(), err
	}
	if mask.Size() == 0 {
		return entity.NotAvailable(), entity.ErrEmptyZone
	}

	frame, err := s.frames.Fetch(ctx, cam.URL)
	if err != nil {
		return entity.NotAvailable(), err
	}

	detections, err := s.detector.Detect(ctx, frame, s.confidence)
	if err != nil {
		if !errors.Is(err, entity.ErrDetection) {
			err = fmt.Errorf("%w: %v", entity.ErrDetection, err)
		}
		return entity.NotAvailable(), err
	}

	log.Debug().
		Str("camera_id", cameraID).
		Int("detections", len(detections)).
		Int("zone_size", mask.Size()).
		Msg("detections received")

	return Classify(mask, frame.Width, frame.Height, detections)
}
