//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"sync"

	"gocv.io/x/gocv"

	"traffic-density/internal/domain/entity"
	"traffic-density/internal/domain/port"
)

// ONNXDetector детектор на локальной модели YOLO в формате ONNX.
type ONNXDetector struct {
	InputSize    int
	NMSThreshold float32
	Classes      []string

	net gocv.Net
	mu  sync.Mutex
}

// NewONNXDetector загружает модель один раз на процесс.
func NewONNXDetector(modelPath string) (*ONNXDetector, error) {
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("model file not found: %s", modelPath)
	}

	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load network from %s", modelPath)
	}
	if err := net.SetPreferableBackend(gocv.NetBackendDefault); err != nil {
		net.Close()
		return nil, fmt.Errorf("set backend: %w", err)
	}
	if err := net.SetPreferableTarget(gocv.NetTargetCPU); err != nil {
		net.Close()
		return nil, fmt.Errorf("set target: %w", err)
	}

	return &ONNXDetector{
		InputSize:    640,
		NMSThreshold: 0.45,
		Classes:      cocoClasses,
		net:          net,
	}, nil
}

// Detect прогоняет кадр через сеть и возвращает рамки в координатах кадра.
func (d *ONNXDetector) Detect(ctx context.Context, frame *entity.Frame, confidence float64) ([]entity.Detection, error) {
	_ = ctx
	mat, err := decodeToMat(frame.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrDetection, err)
	}
	defer mat.Close()

	blob := gocv.BlobFromImage(mat, 1.0/255.0, image.Pt(d.InputSize, d.InputSize), gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	d.mu.Lock()
	d.net.SetInput(blob, "")
	output := d.net.Forward("")
	d.mu.Unlock()
	defer output.Close()

	// Выход YOLOv8/11: [1, 4+классы, кандидаты]
	dims := output.Size()
	if len(dims) != 3 || dims[1] <= 4 {
		return nil, fmt.Errorf("%w: unexpected output shape %v", entity.ErrDetection, dims)
	}

	raw := output.Reshape(1, dims[1])
	defer raw.Close()
	preds := gocv.NewMat()
	defer preds.Close()
	gocv.Transpose(raw, &preds)

	xScale := float32(mat.Cols()) / float32(d.InputSize)
	yScale := float32(mat.Rows()) / float32(d.InputSize)

	boxes := make([]image.Rectangle, 0)
	scores := make([]float32, 0)
	candidates := make([]entity.Detection, 0)
	for i := 0; i < preds.Rows(); i++ {
		best, classID := float32(0), -1
		for c := 4; c < preds.Cols(); c++ {
			if s := preds.GetFloatAt(i, c); s > best {
				best, classID = s, c-4
			}
		}
		if float64(best) < confidence {
			continue
		}

		cx, cy := preds.GetFloatAt(i, 0), preds.GetFloatAt(i, 1)
		w, h := preds.GetFloatAt(i, 2), preds.GetFloatAt(i, 3)
		x1, y1 := (cx-w/2)*xScale, (cy-h/2)*yScale
		x2, y2 := (cx+w/2)*xScale, (cy+h/2)*yScale

		boxes = append(boxes, image.Rect(int(x1), int(y1), int(x2), int(y2)))
		scores = append(scores, best)
		candidates = append(candidates, entity.Detection{
			X1: float64(x1), Y1: float64(y1), X2: float64(x2), Y2: float64(y2),
			Confidence: float64(best),
			Class:      d.className(classID),
		})
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	indices := gocv.NMSBoxes(boxes, scores, float32(confidence), d.NMSThreshold)
	detections := make([]entity.Detection, 0, len(indices))
	for _, idx := range indices {
		detections = append(detections, candidates[idx])
	}
	return detections, nil
}

// Close освобождает сеть
func (d *ONNXDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.net.Close()
}

func (d *ONNXDetector) className(id int) string {
	if id >= 0 && id < len(d.Classes) {
		return d.Classes[id]
	}
	return fmt.Sprintf("class%d", id)
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}

var _ port.VehicleDetector = (*ONNXDetector)(nil)
