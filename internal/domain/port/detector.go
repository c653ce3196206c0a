package port

import (
	"context"

	"traffic-density/internal/domain/entity"
)

// VehicleDetector интерфейс внешнего детектора транспорта
type VehicleDetector interface {
	// Detect возвращает рамки объектов с уверенностью не ниже confidence
	// в пиксельных координатах кадра
	Detect(ctx context.Context, frame *entity.Frame, confidence float64) ([]entity.Detection, error)
}
