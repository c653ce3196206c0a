package app

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"traffic-density/internal/domain/entity"
)

// rectMask строит маску, в которой зона — прямоугольник [x0..x1]×[y0..y1]
func rectMask(width, height, x0, y0, x1, y1 int) *entity.ZoneMask {
	return entity.NewZoneMask(width, height, func(x, y int) bool {
		return y >= y0 && y <= y1 && (x == x0 || x == x1)
	})
}

type fakeMasks struct {
	masks map[string]*entity.ZoneMask
	err   error
}

func (f *fakeMasks) Build(ctx context.Context, referencePath string) (*entity.ZoneMask, error) {
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.masks[referencePath]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrReferenceUnavailable, referencePath)
	}
	return m, nil
}

type fakeFrames struct {
	frames map[string]*entity.Frame
	calls  atomic.Int32
}

func (f *fakeFrames) Fetch(ctx context.Context, url string) (*entity.Frame, error) {
	f.calls.Add(1)
	fr, ok := f.frames[url]
	if !ok {
		return nil, fmt.Errorf("%w: timeout fetching %s", entity.ErrFetch, url)
	}
	return fr, nil
}

type fakeDetector struct {
	mu         sync.Mutex
	detections map[int][]entity.Detection // по ширине кадра
	err        error
	calls      int
	confidence float64
}

func (f *fakeDetector) Detect(ctx context.Context, frame *entity.Frame, confidence float64) ([]entity.Detection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.confidence = confidence
	if f.err != nil {
		return nil, f.err
	}
	return f.detections[frame.Width], nil
}

func (f *fakeDetector) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeRepo struct {
	saved []entity.Observation
	err   error
}

func (r *fakeRepo) Save(ctx context.Context, observations []entity.Observation) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, observations...)
	return nil
}

func (r *fakeRepo) Latest(ctx context.Context, cameraID string) (*entity.Observation, error) {
	for i := len(r.saved) - 1; i >= 0; i-- {
		if r.saved[i].CameraID == cameraID {
			obs := r.saved[i]
			return &obs, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) History(ctx context.Context, cameraID string, limit int) ([]entity.Observation, error) {
	return nil, nil
}
