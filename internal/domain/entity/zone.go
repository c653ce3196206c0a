package entity

// ZoneMask бинарная маска зоны детекции того же размера, что и эталон.
// После создания маска не изменяется.
type ZoneMask struct {
	width  int
	height int
	cells  []bool
	size   int
}

// NewZoneMask восстанавливает зону по граничным пикселям построчно:
// в строке с двумя и более граничными пикселями заполняется отрезок
// от крайнего левого до крайнего правого включительно.
func NewZoneMask(width, height int, isBoundary func(x, y int) bool) *ZoneMask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	m := &ZoneMask{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}

	for y := 0; y < height; y++ {
		first, last, count := -1, -1, 0
		for x := 0; x < width; x++ {
			if !isBoundary(x, y) {
				continue
			}
			if first < 0 {
				first = x
			}
			last = x
			count++
		}
		if count < 2 {
			continue
		}

		row := m.cells[y*width : (y+1)*width]
		for x := first; x <= last; x++ {
			row[x] = true
		}
		m.size += last - first + 1
	}

	return m
}

// Width ширина маски в пикселях
func (m *ZoneMask) Width() int { return m.width }

// Height высота маски в пикселях
func (m *ZoneMask) Height() int { return m.height }

// Size количество пикселей внутри зоны
func (m *ZoneMask) Size() int { return m.size }

// At сообщает, принадлежит ли пиксель зоне. Вне границ маски — false.
func (m *ZoneMask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.cells[y*m.width+x]
}

// RowSpan возвращает число пикселей зоны в строке y.
func (m *ZoneMask) RowSpan(y int) int {
	if y < 0 || y >= m.height {
		return 0
	}
	n := 0
	for _, in := range m.cells[y*m.width : (y+1)*m.width] {
		if in {
			n++
		}
	}
	return n
}
