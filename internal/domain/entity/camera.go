package entity

// Camera описывает камеру из статической таблицы конфигурации
type Camera struct {
	ID            string `yaml:"id"`             // идентификатор камеры
	URL           string `yaml:"url"`            // адрес живого снимка
	ReferencePath string `yaml:"reference_path"` // эталон с зелёными границами зоны
}

// Direction направление движения по маршруту
type Direction string

const (
	DirectionEntering Direction = "ENTERING"
	DirectionLeaving  Direction = "LEAVING"
)

// Route представляет отслеживаемый маршрут
type Route struct {
	Origin       string    `yaml:"origin"`
	Destination  string    `yaml:"destination"`
	Direction    Direction `yaml:"direction"`
	ActiveCamera bool      `yaml:"active_camera"` // маршрут оценивается по камере
}

// CameraID определяет камеру маршрута: сначала точка отправления, затем назначения.
// Возвращает false, если камера у маршрута отключена или не найдена.
func (r Route) CameraID(known map[string]Camera) (string, bool) {
	if !r.ActiveCamera {
		return "", false
	}
	if _, ok := known[r.Origin]; ok {
		return r.Origin, true
	}
	if _, ok := known[r.Destination]; ok {
		return r.Destination, true
	}
	return "", false
}
