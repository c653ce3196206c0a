//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"traffic-density/internal/domain/entity"
	"traffic-density/internal/domain/port"
)

var errNoGoCV = errors.New("gocv build tag is not enabled")

// ONNXDetector заглушка детектора (без OpenCV).
type ONNXDetector struct {
	InputSize    int
	NMSThreshold float32
	Classes      []string
}

// NewONNXDetector возвращает ошибку, если сборка без тега gocv.
func NewONNXDetector(modelPath string) (*ONNXDetector, error) {
	_ = modelPath
	return nil, errNoGoCV
}

// Detect возвращает ошибку, если сборка без тега gocv.
func (d *ONNXDetector) Detect(ctx context.Context, frame *entity.Frame, confidence float64) ([]entity.Detection, error) {
	_ = ctx
	_ = frame
	_ = confidence
	return nil, errNoGoCV
}

// Close ничего не делает без тега gocv.
func (d *ONNXDetector) Close() error {
	return nil
}

var _ port.VehicleDetector = (*ONNXDetector)(nil)
