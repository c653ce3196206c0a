package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"traffic-density/internal/domain/entity"
	"traffic-density/internal/domain/port"
	"traffic-density/internal/infrastructure/vision"
)

// DefaultTimeout ограничение ожидания одного снимка
const DefaultTimeout = 10 * time.Second

// maxFrameBytes предел размера снимка
const maxFrameBytes = 32 << 20

// HTTPFrameSource загружает живые снимки камер по HTTP без повторов.
type HTTPFrameSource struct {
	client *http.Client
}

// NewHTTPFrameSource создаёт источник кадров с ограничением времени ожидания
func NewHTTPFrameSource(timeout time.Duration) *HTTPFrameSource {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPFrameSource{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch загружает и декодирует снимок. Сетевая ошибка, ответ не 2xx
// или нечитаемое изображение дают ErrFetch.
func (s *HTTPFrameSource) Fetch(ctx context.Context, url string) (*entity.Frame, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrFetch, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned status %d", entity.ErrFetch, url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFrameBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", entity.ErrFetch, err)
	}

	img, format, err := vision.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", entity.ErrFetch, url, err)
	}

	bounds := img.Bounds()
	return &entity.Frame{
		Data:   data,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}, nil
}

var _ port.FrameSource = (*HTTPFrameSource)(nil)
