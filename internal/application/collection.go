package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"traffic-density/internal/domain/entity"
	"traffic-density/internal/domain/port"
)

// RouteResult оценка маршрута за прогон
type RouteResult struct {
	Route    entity.Route
	CameraID string // пусто, если у маршрута нет камеры
	Result   entity.DensityResult
}

// Run итог одного прогона сбора
type Run struct {
	ID        string
	StartedAt time.Time
	Routes    []RouteResult
	Cameras   int // число камер, оценённых за прогон
}

// CollectionService выполняет прогон по всем маршрутам
type CollectionService struct {
	congestion *CongestionService
	repo       port.ObservationRepository
	workers    int
	now        func() time.Time
}

// NewCollectionService создаёт сервис сбора. repo может быть nil.
// workers = 1 даёт последовательную обработку камер в порядке маршрутов.
func NewCollectionService(congestion *CongestionService, repo port.ObservationRepository, workers int) *CollectionService {
	if workers < 1 {
		workers = 1
	}
	return &CollectionService{
		congestion: congestion,
		repo:       repo,
		workers:    workers,
		now:        time.Now,
	}
}

// Run оценивает маршруты. Маршруты с общей камерой используют один результат.
// Ошибка возвращается только при сбое сохранения; сам прогон при этом заполнен.
func (s *CollectionService) Run(ctx context.Context, routes []entity.Route) (*Run, error) {
	run := &Run{
		ID:        uuid.New().String(),
		StartedAt: s.now(),
		Routes:    make([]RouteResult, len(routes)),
	}
	logger := log.With().Str("run_id", run.ID).Logger()
	logger.Info().Int("routes", len(routes)).Int("workers", s.workers).Msg("collection run started")

	cache := NewRunCache()
	causes := make(map[string]error)
	var causesMu sync.Mutex

	var g errgroup.Group
	g.SetLimit(s.workers)

	cameras := s.congestion.Cameras()
	for i, route := range routes {
		run.Routes[i] = RouteResult{Route: route, Result: entity.NotAvailable()}

		cameraID, ok := route.CameraID(cameras)
		if !ok {
			continue
		}
		run.Routes[i].CameraID = cameraID

		g.Go(func() error {
			res := cache.GetOrCompute(ctx, cameraID, func(ctx context.Context) entity.DensityResult {
				res, err := s.congestion.Evaluate(ctx, cameraID)
				if err != nil {
					causesMu.Lock()
					causes[cameraID] = err
					causesMu.Unlock()
				}
				return res
			})
			run.Routes[i].Result = res
			return nil
		})
	}
	_ = g.Wait()

	run.Cameras = cache.Len()
	logger.Info().Int("cameras", run.Cameras).Msg("collection run finished")

	if s.repo == nil || run.Cameras == 0 {
		return run, nil
	}

	observations := s.observations(run, cache, causes)
	if err := s.repo.Save(ctx, observations); err != nil {
		return run, fmt.Errorf("save observations: %w", err)
	}
	return run, nil
}

// observations собирает по одной записи на камеру в порядке маршрутов
func (s *CollectionService) observations(run *Run, cache *RunCache, causes map[string]error) []entity.Observation {
	seen := make(map[string]bool)
	out := make([]entity.Observation, 0, run.Cameras)
	for _, rr := range run.Routes {
		if rr.CameraID == "" || seen[rr.CameraID] {
			continue
		}
		seen[rr.CameraID] = true

		res, ok := cache.Get(rr.CameraID)
		if !ok {
			continue
		}
		obs := entity.Observation{
			RunID:      run.ID,
			CameraID:   rr.CameraID,
			Level:      res.Level,
			Density:    res.Density,
			ObservedAt: run.StartedAt,
		}
		if err := causes[rr.CameraID]; err != nil {
			obs.Err = err.Error()
		}
		out = append(out, obs)
	}
	return out
}
