package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"traffic-density/internal/domain/entity"
	"traffic-density/internal/infrastructure/vision"
)

// Типы детектора
const (
	DetectorHTTP = "http"
	DetectorONNX = "onnx"
)

type Config struct {
	TelegramToken string

	CamerasFile  string
	ReferenceDir string
	Cameras      []entity.Camera
	Routes       []entity.Route

	FetchTimeout time.Duration
	Marker       vision.MarkerRange

	Detector         string
	DetectorEndpoint string
	DetectorModel    string
	DetectorTimeout  time.Duration
	Confidence       float64

	Workers int
	DBPath  string

	LogLevel  string
	LogPretty bool
}

// CameraTable формат файла CAMERAS_FILE
type CameraTable struct {
	Cameras []entity.Camera `yaml:"cameras"`
	Routes  []entity.Route  `yaml:"routes"`
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:    os.Getenv("TELEGRAM_TOKEN"),
		CamerasFile:      getEnv("CAMERAS_FILE", ""),
		ReferenceDir:     getEnv("REFERENCE_DIR", "references"),
		Detector:         strings.ToLower(getEnv("DETECTOR", DetectorHTTP)),
		DetectorEndpoint: getEnv("DETECTOR_ENDPOINT", "http://localhost:8000"),
		DetectorModel:    getEnv("DETECTOR_MODEL", "yolo11n.onnx"),
		DBPath:           getEnv("DB_PATH", "traffic.db"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.FetchTimeout, err = getEnvAsDuration("FETCH_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.DetectorTimeout, err = getEnvAsDuration("DETECTOR_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.Confidence, err = getEnvAsFloat("CONFIDENCE_THRESHOLD", 0.25); err != nil {
		return nil, err
	}
	if cfg.Confidence <= 0 || cfg.Confidence > 1 {
		return nil, fmt.Errorf("CONFIDENCE_THRESHOLD must be in (0, 1], got %v", cfg.Confidence)
	}
	if cfg.Workers, err = getEnvAsInt("WORKERS", 1); err != nil {
		return nil, err
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("WORKERS must be positive, got %d", cfg.Workers)
	}
	if cfg.LogPretty, err = getEnvAsBool("LOG_PRETTY", false); err != nil {
		return nil, err
	}

	cfg.Marker = vision.DefaultMarker
	if v := os.Getenv("MARKER_HSV_LOWER"); v != "" {
		if cfg.Marker.Lower, err = vision.ParseHSV(v); err != nil {
			return nil, fmt.Errorf("MARKER_HSV_LOWER: %w", err)
		}
	}
	if v := os.Getenv("MARKER_HSV_UPPER"); v != "" {
		if cfg.Marker.Upper, err = vision.ParseHSV(v); err != nil {
			return nil, fmt.Errorf("MARKER_HSV_UPPER: %w", err)
		}
	}

	switch cfg.Detector {
	case DetectorHTTP, DetectorONNX:
	default:
		return nil, fmt.Errorf("DETECTOR must be %q or %q, got %q", DetectorHTTP, DetectorONNX, cfg.Detector)
	}

	cfg.Cameras, cfg.Routes = DefaultCameras(), DefaultRoutes()
	if cfg.CamerasFile != "" {
		table, err := LoadCameraTable(cfg.CamerasFile)
		if err != nil {
			return nil, err
		}
		cfg.Cameras = table.Cameras
		if len(table.Routes) > 0 {
			cfg.Routes = table.Routes
		}
	}
	cfg.Cameras = resolveReferences(cfg.Cameras, cfg.ReferenceDir)

	return cfg, nil
}

// LoadCameraTable читает YAML-таблицу камер и маршрутов
func LoadCameraTable(path string) (*CameraTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read camera table: %w", err)
	}

	var table CameraTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse camera table %s: %w", path, err)
	}

	seen := make(map[string]bool, len(table.Cameras))
	for _, c := range table.Cameras {
		if c.ID == "" || c.URL == "" || c.ReferencePath == "" {
			return nil, fmt.Errorf("camera table %s: id, url and reference_path are required", path)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("camera table %s: duplicate camera %q", path, c.ID)
		}
		seen[c.ID] = true
	}

	return &table, nil
}

// resolveReferences делает относительные пути эталонов относительными к dir
func resolveReferences(cameras []entity.Camera, dir string) []entity.Camera {
	out := make([]entity.Camera, len(cameras))
	for i, c := range cameras {
		if dir != "" && !filepath.IsAbs(c.ReferencePath) {
			c.ReferencePath = filepath.Join(dir, c.ReferencePath)
		}
		out[i] = c
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}
