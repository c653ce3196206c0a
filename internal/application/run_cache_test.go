package app

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"traffic-density/internal/domain/entity"
)

func TestRunCache_ComputesOnce(t *testing.T) {
	cache := NewRunCache()
	ctx := context.Background()
	var calls int

	compute := func(ctx context.Context) entity.DensityResult {
		calls++
		return entity.NewDensityResult(45)
	}

	first := cache.GetOrCompute(ctx, "CAM-1", compute)
	second := cache.GetOrCompute(ctx, "CAM-1", compute)

	require.Equal(t, 1, calls)
	require.Equal(t, first, second)
	require.Equal(t, entity.LevelModerate, second.Level)
}

func TestRunCache_CachesNA(t *testing.T) {
	cache := NewRunCache()
	ctx := context.Background()
	var calls int

	compute := func(ctx context.Context) entity.DensityResult {
		calls++
		return entity.NotAvailable()
	}

	cache.GetOrCompute(ctx, "CAM-1", compute)
	res := cache.GetOrCompute(ctx, "CAM-1", compute)

	require.Equal(t, 1, calls)
	require.Equal(t, entity.LevelNA, res.Level)
}

func TestRunCache_ConcurrentAtMostOnce(t *testing.T) {
	cache := NewRunCache()
	ctx := context.Background()
	var calls atomic.Int32

	compute := func(ctx context.Context) entity.DensityResult {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return entity.NewDensityResult(70)
	}

	var wg sync.WaitGroup
	results := make([]entity.DensityResult, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = cache.GetOrCompute(ctx, "CAM-1", compute)
		}(i)
	}
	wg.Wait()

	require.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		require.Equal(t, entity.LevelHeavy, r.Level)
	}
	require.Equal(t, 1, cache.Len())
}

func TestRunCache_KeysIndependent(t *testing.T) {
	cache := NewRunCache()
	ctx := context.Background()

	a := cache.GetOrCompute(ctx, "CAM-A", func(context.Context) entity.DensityResult { return entity.NewDensityResult(10) })
	b := cache.GetOrCompute(ctx, "CAM-B", func(context.Context) entity.DensityResult { return entity.NewDensityResult(90) })

	require.Equal(t, entity.LevelLight, a.Level)
	require.Equal(t, entity.LevelHeavy, b.Level)

	_, ok := cache.Get("CAM-C")
	require.False(t, ok)
}
