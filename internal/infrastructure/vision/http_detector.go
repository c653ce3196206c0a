package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"traffic-density/internal/domain/entity"
	"traffic-density/internal/domain/port"
)

// HTTPDetector клиент внешнего сервиса детекции YOLO
type HTTPDetector struct {
	endpoint string
	client   *http.Client
}

type httpDetection struct {
	Class      string    `json:"class"`
	Confidence float64   `json:"confidence"`
	BBox       []float64 `json:"bbox"` // [x1, y1, x2, y2]
}

type httpDetectResponse struct {
	Detections []httpDetection `json:"detections"`
}

// NewHTTPDetector создаёт клиента сервиса детекции
func NewHTTPDetector(endpoint string, timeout time.Duration) *HTTPDetector {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPDetector{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: timeout},
	}
}

// Detect отправляет кадр в сервис и возвращает рамки не ниже порога уверенности.
// Классы не фильтруются: в занятость идут все найденные объекты.
func (d *HTTPDetector) Detect(ctx context.Context, frame *entity.Frame, confidence float64) ([]entity.Detection, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	fw, err := w.CreateFormFile("file", "frame."+formatExt(frame.Format))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrDetection, err)
	}
	if _, err := fw.Write(frame.Data); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrDetection, err)
	}
	if err := w.WriteField("conf_threshold", fmt.Sprintf("%.3f", confidence)); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrDetection, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrDetection, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint+"/detect", &body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrDetection, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrDetection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: service returned status %d: %s", entity.ErrDetection, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var result httpDetectResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", entity.ErrDetection, err)
	}

	detections := make([]entity.Detection, 0, len(result.Detections))
	for _, det := range result.Detections {
		if len(det.BBox) != 4 {
			return nil, fmt.Errorf("%w: bbox must have 4 values, got %d", entity.ErrDetection, len(det.BBox))
		}
		if det.Confidence < confidence {
			continue
		}
		detections = append(detections, entity.Detection{
			X1:         det.BBox[0],
			Y1:         det.BBox[1],
			X2:         det.BBox[2],
			Y2:         det.BBox[3],
			Confidence: det.Confidence,
			Class:      det.Class,
		})
	}

	return detections, nil
}

func formatExt(format string) string {
	switch format {
	case "":
		return "jpg"
	case "jpeg":
		return "jpg"
	default:
		return format
	}
}

var _ port.VehicleDetector = (*HTTPDetector)(nil)
