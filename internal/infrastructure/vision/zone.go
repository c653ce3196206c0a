package vision

import "traffic-density/internal/domain/port"

// ZoneBuilder строит маску зоны детекции по эталону с цветной разметкой
type ZoneBuilder struct {
	Marker MarkerRange
}

// NewZoneBuilder создаёт построитель с заданным цветом разметки
func NewZoneBuilder(marker MarkerRange) *ZoneBuilder {
	return &ZoneBuilder{Marker: marker}
}

var _ port.ZoneMaskBuilder = (*ZoneBuilder)(nil)
