//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"fmt"
	"image"
	"os"

	"traffic-density/internal/domain/entity"
)

// Build читает эталон и восстанавливает зону по пикселям разметки.
func (b *ZoneBuilder) Build(ctx context.Context, referencePath string) (*entity.ZoneMask, error) {
	_ = ctx
	data, err := os.ReadFile(referencePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrReferenceUnavailable, err)
	}

	img, _, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", entity.ErrReferenceUnavailable, referencePath, err)
	}

	return b.FromImage(img), nil
}

// FromImage строит маску по уже декодированному эталону.
func (b *ZoneBuilder) FromImage(img image.Image) *entity.ZoneMask {
	bounds := img.Bounds()
	return entity.NewZoneMask(bounds.Dx(), bounds.Dy(), func(x, y int) bool {
		r, g, bl, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
		return b.Marker.Contains(rgbToHSV(uint8(r>>8), uint8(g>>8), uint8(bl>>8)))
	})
}
