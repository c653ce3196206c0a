package telegram

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"traffic-density/internal/container"
	"traffic-density/internal/domain/entity"
	"traffic-density/internal/domain/port"
)

type stubMasks struct{}

func (stubMasks) Build(ctx context.Context, referencePath string) (*entity.ZoneMask, error) {
	if referencePath == "missing.png" {
		return nil, fmt.Errorf("%w: %s", entity.ErrReferenceUnavailable, referencePath)
	}
	// зона 10×10 = 100 пикселей
	return entity.NewZoneMask(10, 10, func(x, y int) bool { return x == 0 || x == 9 }), nil
}

type stubFrames struct{}

func (stubFrames) Fetch(ctx context.Context, url string) (*entity.Frame, error) {
	return &entity.Frame{Width: 10, Height: 10}, nil
}

type stubDetector struct{}

func (stubDetector) Detect(ctx context.Context, frame *entity.Frame, confidence float64) ([]entity.Detection, error) {
	return []entity.Detection{{X1: 2, Y1: 2, X2: 8, Y2: 9}}, nil // 42 пикселя
}

type stubRepo struct {
	history []entity.Observation
}

func (r *stubRepo) Save(ctx context.Context, observations []entity.Observation) error { return nil }

func (r *stubRepo) Latest(ctx context.Context, cameraID string) (*entity.Observation, error) {
	return nil, nil
}

func (r *stubRepo) History(ctx context.Context, cameraID string, limit int) ([]entity.Observation, error) {
	return r.history, nil
}

func newTestBot(repo *stubRepo) *Bot {
	opts := container.Options{
		Cameras: []entity.Camera{
			{ID: "NPE (E10) CAM 23 BRIDGE 19 KM12.8 WB", URL: "u1", ReferencePath: "npe23.png"},
			{ID: "SRT (E23) CAM 03 SEK17 KM2.6 EB", URL: "u2", ReferencePath: "missing.png"},
			{ID: "SRT (E23) CAM 06 KIARA KM5.65 MED", URL: "u3", ReferencePath: "srt06.png"},
		},
		Routes: []entity.Route{
			{Origin: "NPE (E10) CAM 23 BRIDGE 19 KM12.8 WB", Destination: "GATE 1", ActiveCamera: true},
			{Origin: "FSKTM", Destination: "GATE 1", ActiveCamera: false},
		},
		Workers: 1,
	}
	var observations port.ObservationRepository
	if repo != nil {
		observations = repo
	}
	return &Bot{container: container.New(opts, stubMasks{}, stubFrames{}, stubDetector{}, observations)}
}

func TestBot_StaticCommands(t *testing.T) {
	b := newTestBot(nil)
	ctx := context.Background()

	require.Equal(t, msgStart, b.reply(ctx, "start", ""))
	require.Equal(t, msgHelp, b.reply(ctx, "help", ""))
	require.Equal(t, msgUnknownCommand, b.reply(ctx, "weather", ""))
	require.Contains(t, b.reply(ctx, "cameras", ""), "SRT (E23) CAM 06 KIARA KM5.65 MED")
}

func TestBot_Density(t *testing.T) {
	b := newTestBot(nil)
	ctx := context.Background()

	require.Equal(t, "🟡 NPE (E10) CAM 23 BRIDGE 19 KM12.8 WB: MODERATE (42.0%)", b.reply(ctx, "density", "cam 23"))
	require.Contains(t, b.reply(ctx, "density", "CAM 03"), "NA (reference image unavailable")
	require.Equal(t, msgNeedCamera, b.reply(ctx, "density", "  "))
	require.Contains(t, b.reply(ctx, "density", "SRT"), "несколько камер")
	require.Contains(t, b.reply(ctx, "density", "CAM 99"), "не найдена")
}

func TestBot_Run(t *testing.T) {
	b := newTestBot(nil)
	out := b.reply(context.Background(), "run", "")
	require.Contains(t, out, "NPE (E10) CAM 23 BRIDGE 19 KM12.8 WB → GATE 1: MODERATE")
	require.NotContains(t, out, "FSKTM")
	require.Contains(t, out, "Камер опрошено: 1")
}

func TestBot_History(t *testing.T) {
	require.Equal(t, msgNoStorage, newTestBot(nil).reply(context.Background(), "history", "CAM 23"))

	repo := &stubRepo{}
	b := newTestBot(repo)
	require.Equal(t, msgNoHistory, b.reply(context.Background(), "history", "CAM 23"))

	at := time.Date(2026, 10, 16, 8, 30, 0, 0, time.Local)
	repo.history = []entity.Observation{
		{CameraID: "NPE (E10) CAM 23 BRIDGE 19 KM12.8 WB", Level: entity.LevelHeavy, Density: 71.25, ObservedAt: at},
		{CameraID: "NPE (E10) CAM 23 BRIDGE 19 KM12.8 WB", Level: entity.LevelNA, ObservedAt: at.Add(-30 * time.Minute)},
	}
	out := b.reply(context.Background(), "history", "CAM 23")
	require.Contains(t, out, "🔴 16.10 08:30 HEAVY (71.2%)")
	require.Contains(t, out, "⚪ 16.10 08:00 NA")
}

func TestFormatDensity_NAWithoutError(t *testing.T) {
	require.Equal(t, "⚪ CAM: NA (нет данных)", formatDensity("CAM", entity.NotAvailable(), nil))
}
