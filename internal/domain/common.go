package domain

// Point - точка в планарной системе координат плана этажа.
// Одна и та же система координат используется для изображения плана,
// контура здания и всех секторов; преобразование единиц нигде не выполняется.
type Point struct {
	X float64 `json:"x" validate:"required"`
	Y float64 `json:"y" validate:"required"`
}

// BoundingBox - ограничивающий прямоугольник контура.
// CenterX/CenterY - арифметическая середина min/max, не центроид.
type BoundingBox struct {
	MinX    float64 `json:"min_x"`
	MaxX    float64 `json:"max_x"`
	MinY    float64 `json:"min_y"`
	MaxY    float64 `json:"max_y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
}

// Radius возвращает радиус окружности, описывающей bounding box.
// Используется как внешний радиус секторной модели.
func (b BoundingBox) Radius() float64 {
	half := b.Width
	if b.Height > b.Width {
		half = b.Height
	}
	return half / 2
}
