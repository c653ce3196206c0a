package entity

// Frame живой кадр одной загрузки
type Frame struct {
	Data   []byte // исходные байты изображения
	Width  int
	Height int
	Format string // формат, определённый декодером (jpeg, png, ...)
}
