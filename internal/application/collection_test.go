package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"traffic-density/internal/domain/entity"
)

func testRoutes() []entity.Route {
	return []entity.Route{
		{Origin: "GATE 1", Destination: "CAM-A", Direction: entity.DirectionLeaving, ActiveCamera: true},
		{Origin: "CAM-A", Destination: "GATE 1", Direction: entity.DirectionEntering, ActiveCamera: true},
		{Origin: "CAM-DOWN", Destination: "GATE 2", Direction: entity.DirectionEntering, ActiveCamera: true},
		{Origin: "CAM-B", Destination: "GATE 3", Direction: entity.DirectionEntering, ActiveCamera: true},
		{Origin: "CAM-B", Destination: "GATE 4", Direction: entity.DirectionEntering, ActiveCamera: false},
		{Origin: "FSKTM", Destination: "GATE 1", Direction: entity.DirectionLeaving, ActiveCamera: true},
	}
}

func TestCollectionService_Run(t *testing.T) {
	for _, workers := range []int{1, 4} {
		f := newPipelineFixture()
		repo := &fakeRepo{}
		svc := NewCollectionService(f.service(), repo, workers)

		run, err := svc.Run(context.Background(), testRoutes())
		require.NoError(t, err)
		require.NotEmpty(t, run.ID)
		require.Len(t, run.Routes, 6)

		levels := make([]entity.DensityLevel, len(run.Routes))
		for i, rr := range run.Routes {
			levels[i] = rr.Result.Level
		}
		require.Equal(t, []entity.DensityLevel{
			entity.LevelHeavy,
			entity.LevelHeavy,
			entity.LevelNA,
			entity.LevelHeavy,
			entity.LevelNA,
			entity.LevelNA,
		}, levels, "workers=%d", workers)

		require.Equal(t, "CAM-A", run.Routes[0].CameraID)
		require.Empty(t, run.Routes[4].CameraID)
		require.Empty(t, run.Routes[5].CameraID)

		// CAM-A встречается дважды, но детектор вызывается один раз на камеру
		require.Equal(t, 3, run.Cameras)
		require.Equal(t, 2, f.detector.Calls())

		require.Len(t, repo.saved, 3)
		require.Equal(t, "CAM-A", repo.saved[0].CameraID)
		require.Equal(t, "CAM-DOWN", repo.saved[1].CameraID)
		require.Equal(t, entity.LevelNA, repo.saved[1].Level)
		require.Contains(t, repo.saved[1].Err, entity.ErrFetch.Error())
		require.Empty(t, repo.saved[0].Err)
		require.Equal(t, run.ID, repo.saved[2].RunID)
	}
}

func TestCollectionService_FreshCachePerRun(t *testing.T) {
	f := newPipelineFixture()
	svc := NewCollectionService(f.service(), nil, 1)
	routes := []entity.Route{{Origin: "CAM-A", ActiveCamera: true}}

	first, err := svc.Run(context.Background(), routes)
	require.NoError(t, err)
	second, err := svc.Run(context.Background(), routes)
	require.NoError(t, err)

	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, 2, f.detector.Calls())
}

func TestCollectionService_SaveFailure(t *testing.T) {
	f := newPipelineFixture()
	repo := &fakeRepo{err: errors.New("disk full")}
	svc := NewCollectionService(f.service(), repo, 1)

	run, err := svc.Run(context.Background(), testRoutes())
	require.Error(t, err)
	require.NotNil(t, run)
	require.Equal(t, entity.LevelHeavy, run.Routes[0].Result.Level)
}
