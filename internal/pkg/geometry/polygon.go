package geometry

import (
	"math"

	"github.com/vastu-microservice/internal/domain"
	"github.com/vastu-microservice/internal/pkg/errors"
)

// degenerateAreaEps - порог, ниже которого signed area считается нулевой
// и полигон вырожденным.
const degenerateAreaEps = 1e-9

// BoundingBox вычисляет ограничивающий прямоугольник контура за один
// проход. Пустой вход - ошибка, вызывающий код обязан проверять.
func BoundingBox(points []domain.Point) (domain.BoundingBox, error) {
	if len(points) == 0 {
		return domain.BoundingBox{}, errors.ErrInvalidBoundary
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	return domain.BoundingBox{
		MinX:    minX,
		MaxX:    maxX,
		MinY:    minY,
		MaxY:    maxY,
		Width:   maxX - minX,
		Height:  maxY - minY,
		CenterX: (minX + maxX) / 2,
		CenterY: (minY + maxY) / 2,
	}, nil
}

// SignedArea возвращает знаковую площадь полигона по формуле шнуровки.
// Знак зависит от обхода: положительный для обхода против часовой
// стрелки в экранных координатах (Y вниз - по часовой на экране).
func SignedArea(points []domain.Point) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return area / 2
}

// Centroid вычисляет центроид полигона через формулу шнуровки.
// Отличается от центра bounding box и используется там, где важен
// взвешенный по площади центр. Для вырожденного (нулевая площадь,
// самопересекающегося) полигона возвращает ErrDegenerateBoundary -
// NaN наружу не распространяется.
func Centroid(points []domain.Point) (domain.Point, error) {
	if len(points) < domain.MinBoundaryPoints {
		return domain.Point{}, errors.ErrInvalidBoundary
	}

	area := SignedArea(points)
	if math.Abs(area) < degenerateAreaEps {
		return domain.Point{}, errors.ErrDegenerateBoundary
	}

	var cx, cy float64
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := points[i].X*points[j].Y - points[j].X*points[i].Y
		cx += (points[i].X + points[j].X) * cross
		cy += (points[i].Y + points[j].Y) * cross
	}

	factor := 1 / (6 * area)
	return domain.Point{X: cx * factor, Y: cy * factor}, nil
}

// PointInPolygon - классический ray-casting тест четности.
// Для точки строго на ребре результат не определен (стандартное
// свойство ray-casting, принято как есть).
func PointInPolygon(p domain.Point, polygon []domain.Point) bool {
	n := len(polygon)
	if n < domain.MinBoundaryPoints {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := polygon[i].X, polygon[i].Y
		xj, yj := polygon[j].X, polygon[j].Y

		if ((yi > p.Y) != (yj > p.Y)) &&
			(p.X < (xj-xi)*(p.Y-yi)/(yj-yi)+xi) {
			inside = !inside
		}
	}
	return inside
}

// DistanceToSegment возвращает евклидово расстояние от точки до
// ближайшей точки отрезка [a, b]; параметр проекции зажат в [0, 1],
// за концами отрезка расстояние меряется до концов.
func DistanceToSegment(p, a, b domain.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		// Отрезок выродился в точку
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lengthSq
	t = math.Max(0, math.Min(1, t))

	closest := domain.Point{X: a.X + t*dx, Y: a.Y + t*dy}
	return math.Hypot(p.X-closest.X, p.Y-closest.Y)
}

// DistanceToBoundary возвращает минимальное расстояние от точки до
// ребер контура. Используется редактором для подсветки ближайшего ребра.
func DistanceToBoundary(p domain.Point, polygon []domain.Point) float64 {
	n := len(polygon)
	if n == 0 {
		return math.Inf(1)
	}
	if n == 1 {
		return math.Hypot(p.X-polygon[0].X, p.Y-polygon[0].Y)
	}

	best := math.Inf(1)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if d := DistanceToSegment(p, polygon[i], polygon[j]); d < best {
			best = d
		}
	}
	return best
}

// AngleFromCenter возвращает компасный угол из центра к точке в
// экранных координатах: 0° = север = -Y, рост по часовой стрелке,
// результат в [0, 360).
func AngleFromCenter(center, p domain.Point) float64 {
	angle := math.Atan2(p.X-center.X, -(p.Y - center.Y)) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	return angle
}

// ValidateBoundary проверяет контур перед анализом: минимум 3 вершины
// и невырожденная площадь.
func ValidateBoundary(points []domain.Point) error {
	if len(points) < domain.MinBoundaryPoints {
		return errors.ErrInvalidBoundary
	}
	if math.Abs(SignedArea(points)) < degenerateAreaEps {
		return errors.ErrDegenerateBoundary
	}
	return nil
}
