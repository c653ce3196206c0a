package port

import (
	"context"

	"traffic-density/internal/domain/entity"
)

// FrameSource интерфейс загрузки живого кадра камеры
type FrameSource interface {
	// Fetch загружает и декодирует текущий снимок
	Fetch(ctx context.Context, url string) (*entity.Frame, error)
}
