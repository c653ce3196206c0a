package storage

import (
	"context"
	"os"
	"sync"
	"time"

	"traffic-density/internal/domain/entity"
	"traffic-density/internal/domain/port"
)

type maskKey struct {
	path    string
	size    int64
	modTime time.Time
}

// MemoryMaskCache in-memory кэш масок зон между прогонами.
// Маска пересобирается, если файл эталона изменился.
type MemoryMaskCache struct {
	builder port.ZoneMaskBuilder

	mu    sync.RWMutex
	masks map[string]cachedMask
}

type cachedMask struct {
	key  maskKey
	mask *entity.ZoneMask
}

// NewMemoryMaskCache оборачивает построитель масок кэшем
func NewMemoryMaskCache(builder port.ZoneMaskBuilder) *MemoryMaskCache {
	return &MemoryMaskCache{
		builder: builder,
		masks:   make(map[string]cachedMask),
	}
}

// Build возвращает маску из кэша или строит её заново
func (c *MemoryMaskCache) Build(ctx context.Context, referencePath string) (*entity.ZoneMask, error) {
	info, err := os.Stat(referencePath)
	if err != nil {
		// Построитель сам вернёт ErrReferenceUnavailable
		c.Invalidate(referencePath)
		return c.builder.Build(ctx, referencePath)
	}
	key := maskKey{path: referencePath, size: info.Size(), modTime: info.ModTime()}

	c.mu.RLock()
	cached, exists := c.masks[referencePath]
	c.mu.RUnlock()

	if exists && cached.key == key {
		return cached.mask, nil
	}

	mask, err := c.builder.Build(ctx, referencePath)
	if err != nil {
		c.Invalidate(referencePath)
		return nil, err
	}

	c.mu.Lock()
	c.masks[referencePath] = cachedMask{key: key, mask: mask}
	c.mu.Unlock()

	return mask, nil
}

// Invalidate удаляет маску эталона из кэша
func (c *MemoryMaskCache) Invalidate(referencePath string) {
	c.mu.Lock()
	delete(c.masks, referencePath)
	c.mu.Unlock()
}

// Len количество масок в кэше
func (c *MemoryMaskCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.masks)
}

// Проверка реализации интерфейса
var _ port.ZoneMaskBuilder = (*MemoryMaskCache)(nil)
