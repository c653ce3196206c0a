package app

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"traffic-density/internal/domain/entity"
)

// RunCache хранит результаты камер в пределах одного прогона.
// Для каждого идентификатора вычисление выполняется не более одного раза,
// в том числе при параллельных запросах.
type RunCache struct {
	mu      sync.RWMutex
	results map[string]entity.DensityResult
	group   singleflight.Group
}

// NewRunCache создаёт пустой кэш прогона
func NewRunCache() *RunCache {
	return &RunCache{
		results: make(map[string]entity.DensityResult),
	}
}

// GetOrCompute возвращает сохранённый результат камеры или вычисляет его через compute
func (c *RunCache) GetOrCompute(ctx context.Context, cameraID string, compute func(ctx context.Context) entity.DensityResult) entity.DensityResult {
	if res, ok := c.Get(cameraID); ok {
		return res
	}

	v, _, _ := c.group.Do(cameraID, func() (interface{}, error) {
		// Повторная проверка: результат мог появиться, пока ждали группу.
		if res, ok := c.Get(cameraID); ok {
			return res, nil
		}

		res := compute(ctx)

		c.mu.Lock()
		c.results[cameraID] = res
		c.mu.Unlock()
		return res, nil
	})

	return v.(entity.DensityResult)
}

// Get возвращает результат камеры, если он уже вычислен
func (c *RunCache) Get(cameraID string) (entity.DensityResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.results[cameraID]
	return res, ok
}

// Len количество камер в кэше
func (c *RunCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}
