package entity

import "math"

// Detection рамка обнаруженного объекта в пиксельных координатах кадра
type Detection struct {
	X1, Y1     float64 // левый верхний угол
	X2, Y2     float64 // правый нижний угол
	Confidence float64 // уверенность модели
	Class      string  // класс объекта, для подсчёта не используется
}

// Center возвращает центр рамки, усечённый до целого пикселя
func (d Detection) Center() (x, y int) {
	return int(math.Floor((d.X1 + d.X2) / 2)), int(math.Floor((d.Y1 + d.Y2) / 2))
}

// Area возвращает площадь рамки без обрезки по границам кадра
func (d Detection) Area() float64 {
	return (d.X2 - d.X1) * (d.Y2 - d.Y1)
}
