package entity

import "time"

// Observation сохранённый результат камеры в рамках одного прогона
type Observation struct {
	RunID      string
	CameraID   string
	Level      DensityLevel
	Density    float64
	Err        string // причина NA, пусто при успешной оценке
	ObservedAt time.Time
}
