package palette

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Крайние точки шкалы оценок: красный для 0, зеленый для 100.
// Смешивание в HCL дает перцептивно ровный градиент без грязных
// промежуточных тонов, которые дает RGB-интерполяция.
var (
	lowColor, _  = colorful.Hex("#c0392b")
	highColor, _ = colorful.Hex("#27ae60")
)

// ScoreColor возвращает hex-цвет для оценки в [0, 100].
// Значения вне диапазона зажимаются.
func ScoreColor(score float64) string {
	t := score / 100
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lowColor.BlendHcl(highColor, t).Clamped().Hex()
}

// CoverageColor возвращает hex-цвет для процента покрытия сектора.
// Та же шкала, что и для оценок: слой отрисовки использует единую
// легенду.
func CoverageColor(percent float64) string {
	return ScoreColor(percent)
}
