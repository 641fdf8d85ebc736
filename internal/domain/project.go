package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MinBoundaryPoints - минимальное число вершин контура для любого
// секторного анализа.
const MinBoundaryPoints = 3

// Boundary - контур здания: упорядоченная последовательность вершин,
// ребра между соседними точками, последняя замыкается на первую.
// Порядок вставки значим. Ядро рассматривает контур как неизменяемый
// вход на время вычисления.
type Boundary []Point

// HasEnoughPoints проверяет минимальное число вершин.
func (b Boundary) HasEnoughPoints() bool {
	return len(b) >= MinBoundaryPoints
}

// Value сериализует контур в jsonb для хранения в PostgreSQL.
func (b Boundary) Value() (driver.Value, error) {
	return json.Marshal(b)
}

// Scan читает контур из jsonb.
func (b *Boundary) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	case nil:
		*b = nil
		return nil
	}
	return fmt.Errorf("unsupported boundary scan type %T", src)
}

// Project - проект анализа плана этажа: загруженное изображение,
// обведенный контур здания и ориентация севера.
type Project struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Boundary       Boundary  `json:"boundary" db:"boundary"`
	RotationOffset float64   `json:"rotation_offset" db:"rotation_offset"`
	Granularity    int       `json:"granularity" db:"granularity"`
	ImageFile      string    `json:"image_file,omitempty" db:"image_file"`
	ImageWidth     int       `json:"image_width,omitempty" db:"image_width"`
	ImageHeight    int       `json:"image_height,omitempty" db:"image_height"`
	ThumbnailFile  string    `json:"thumbnail_file,omitempty" db:"thumbnail_file"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
