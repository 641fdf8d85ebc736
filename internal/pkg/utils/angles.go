package utils

import "math"

// NormalizeAngle приводит угол в градусах к диапазону [0, 360).
func NormalizeAngle(deg float64) float64 {
	n := math.Mod(deg, 360)
	if n < 0 {
		n += 360
	}
	return n
}

// Clamp ограничивает значение диапазоном [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ValidateGranularity проверяет поддерживаемую гранулярность разбиения.
func ValidateGranularity(count int) bool {
	return count == 8 || count == 16 || count == 32
}
