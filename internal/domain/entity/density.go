package entity

// DensityLevel уровень загруженности зоны
type DensityLevel string

const (
	LevelNA       DensityLevel = "NA"       // оценка невозможна
	LevelLight    DensityLevel = "LIGHT"    // свободно
	LevelModerate DensityLevel = "MODERATE" // умеренно
	LevelHeavy    DensityLevel = "HEAVY"    // затор
)

// Пороги плотности в процентах, нижние границы включительно.
const (
	HeavyThreshold    = 60.0
	ModerateThreshold = 40.0
)

// ClassifyDensity переводит плотность в уровень загруженности.
// Плотность выше 100% (перекрывающиеся рамки) остаётся HEAVY.
func ClassifyDensity(density float64) DensityLevel {
	switch {
	case density >= HeavyThreshold:
		return LevelHeavy
	case density >= ModerateThreshold:
		return LevelModerate
	default:
		return LevelLight
	}
}

// DensityResult итог оценки одной камеры за прогон
type DensityResult struct {
	Level   DensityLevel
	Density float64 // процент занятости зоны, только если Level != NA
}

// NotAvailable результат для камеры, которую не удалось оценить
func NotAvailable() DensityResult {
	return DensityResult{Level: LevelNA}
}

// NewDensityResult классифицирует плотность
func NewDensityResult(density float64) DensityResult {
	return DensityResult{Level: ClassifyDensity(density), Density: density}
}

// HasDensity false для NA: такое значение нельзя путать с нулевой занятостью.
func (r DensityResult) HasDensity() bool {
	return r.Level != LevelNA && r.Level != ""
}
