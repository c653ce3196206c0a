package app

import (
	"fmt"

	"traffic-density/internal/domain/entity"
)

// Classify считает занятость зоны по рамкам детектора.
// Рамка попадает в зону, если её центр лежит на пикселе маски; площади
// попавших рамок суммируются без обрезки и без учёта перекрытий.
func Classify(mask *entity.ZoneMask, frameWidth, frameHeight int, detections []entity.Detection) (entity.DensityResult, error) {
	if mask == nil || mask.Size() == 0 {
		return entity.NotAvailable(), entity.ErrEmptyZone
	}
	if mask.Width() != frameWidth || mask.Height() != frameHeight {
		return entity.NotAvailable(), fmt.Errorf("%w: mask %dx%d, frame %dx%d",
			entity.ErrDimensionMismatch, mask.Width(), mask.Height(), frameWidth, frameHeight)
	}

	var vehicleArea float64
	for _, d := range detections {
		cx, cy := d.Center()
		if mask.At(cx, cy) {
			vehicleArea += d.Area()
		}
	}

	density := vehicleArea / float64(mask.Size()) * 100
	return entity.NewDensityResult(density), nil
}
