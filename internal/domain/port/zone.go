package port

import (
	"context"

	"traffic-density/internal/domain/entity"
)

// ZoneMaskBuilder интерфейс построителя маски зоны детекции
type ZoneMaskBuilder interface {
	// Build строит маску по эталонному изображению с отмеченными границами
	Build(ctx context.Context, referencePath string) (*entity.ZoneMask, error)
}
