package container

import (
	app "traffic-density/internal/application"
	"traffic-density/internal/domain/entity"
	"traffic-density/internal/domain/port"
)

type Container struct {
	CongestionService *app.CongestionService
	CollectionService *app.CollectionService
	Observations      port.ObservationRepository
	Routes            []entity.Route
}

// Options параметры сборки сервисов
type Options struct {
	Cameras    []entity.Camera
	Routes     []entity.Route
	Confidence float64
	Workers    int
}

func New(opts Options, masks port.ZoneMaskBuilder, frames port.FrameSource, detector port.VehicleDetector, repo port.ObservationRepository) *Container {
	congestion := app.NewCongestionService(opts.Cameras, masks, frames, detector, opts.Confidence)
	collection := app.NewCollectionService(congestion, repo, opts.Workers)

	return &Container{
		CongestionService: congestion,
		CollectionService: collection,
		Observations:      repo,
		Routes:            opts.Routes,
	}
}
