package port

import (
	"context"

	"traffic-density/internal/domain/entity"
)

// ObservationRepository интерфейс хранилища результатов прогонов
type ObservationRepository interface {
	// Save сохраняет результаты одного прогона
	Save(ctx context.Context, observations []entity.Observation) error

	// Latest возвращает последний результат камеры, nil если результатов нет
	Latest(ctx context.Context, cameraID string) (*entity.Observation, error)

	// History возвращает последние limit результатов камеры, новые первыми
	History(ctx context.Context, cameraID string, limit int) ([]entity.Observation, error)
}
