package vision

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HSV цвет в 8-битной шкале OpenCV: H 0..179, S и V 0..255
type HSV struct {
	H, S, V uint8
}

// ParseHSV разбирает строку вида "40,100,100"
func ParseHSV(s string) (HSV, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return HSV{}, fmt.Errorf("invalid hsv %q: want h,s,v", s)
	}
	var vals [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return HSV{}, fmt.Errorf("invalid hsv %q: %w", s, err)
		}
		vals[i] = uint8(n)
	}
	if vals[0] > 179 {
		return HSV{}, fmt.Errorf("invalid hsv %q: hue must be 0..179", s)
	}
	return HSV{H: vals[0], S: vals[1], V: vals[2]}, nil
}

// MarkerRange диапазон цвета разметки, границы включительно
type MarkerRange struct {
	Lower HSV
	Upper HSV
}

// DefaultMarker зелёная разметка эталонных снимков
var DefaultMarker = MarkerRange{
	Lower: HSV{H: 40, S: 100, V: 100},
	Upper: HSV{H: 80, S: 255, V: 255},
}

// Contains проверяет попадание цвета в диапазон
func (r MarkerRange) Contains(c HSV) bool {
	return c.H >= r.Lower.H && c.H <= r.Upper.H &&
		c.S >= r.Lower.S && c.S <= r.Upper.S &&
		c.V >= r.Lower.V && c.V <= r.Upper.V
}

// rgbToHSV повторяет преобразование COLOR_RGB2HSV для 8-битных изображений.
func rgbToHSV(r, g, b uint8) HSV {
	maxC := max(r, g, b)
	minC := min(r, g, b)

	v := maxC
	var s float64
	if v != 0 {
		s = 255 * float64(maxC-minC) / float64(v)
	}

	var h float64
	if diff := float64(maxC - minC); diff != 0 {
		switch maxC {
		case r:
			h = 60 * (float64(g) - float64(b)) / diff
		case g:
			h = 120 + 60*(float64(b)-float64(r))/diff
		default:
			h = 240 + 60*(float64(r)-float64(g))/diff
		}
		if h < 0 {
			h += 360
		}
	}

	return HSV{
		H: uint8(math.Round(h / 2)),
		S: uint8(math.Round(s)),
		V: v,
	}
}
