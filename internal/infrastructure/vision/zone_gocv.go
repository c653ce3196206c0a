//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"
	"os"

	"gocv.io/x/gocv"

	"traffic-density/internal/domain/entity"
)

// Build читает эталон через OpenCV и восстанавливает зону по пикселям разметки.
func (b *ZoneBuilder) Build(ctx context.Context, referencePath string) (*entity.ZoneMask, error) {
	_ = ctx
	if _, err := os.Stat(referencePath); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrReferenceUnavailable, err)
	}

	img := gocv.IMRead(referencePath, gocv.IMReadColor)
	defer img.Close()
	if img.Empty() {
		return nil, fmt.Errorf("%w: failed to read %s", entity.ErrReferenceUnavailable, referencePath)
	}

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(img, &hsv, gocv.ColorBGRToHSV)

	lower := gocv.NewScalar(float64(b.Marker.Lower.H), float64(b.Marker.Lower.S), float64(b.Marker.Lower.V), 0)
	upper := gocv.NewScalar(float64(b.Marker.Upper.H), float64(b.Marker.Upper.S), float64(b.Marker.Upper.V), 0)

	boundary := gocv.NewMat()
	defer boundary.Close()
	gocv.InRangeWithScalar(hsv, lower, upper, &boundary)

	return entity.NewZoneMask(boundary.Cols(), boundary.Rows(), func(x, y int) bool {
		return boundary.GetUCharAt(y, x) > 0
	}), nil
}
