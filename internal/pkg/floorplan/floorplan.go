package floorplan

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// maxThumbnailSide - ограничение стороны миниатюры в пикселях.
const maxThumbnailSide = 480

// Metadata - результат обработки загруженного плана этажа.
// Ширина и высота задают общую систему координат для контура здания.
type Metadata struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Process декодирует изображение плана, нормализует ориентацию по
// EXIF и возвращает размеры вместе с PNG-миниатюрой ограниченного
// размера. Формат определяется по содержимому, не по расширению.
func Process(r io.Reader) (Metadata, []byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return Metadata{}, nil, fmt.Errorf("decode floorplan image: %w", err)
	}

	bounds := img.Bounds()
	meta := Metadata{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	thumb := imaging.Fit(img, maxThumbnailSide, maxThumbnailSide, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.PNG); err != nil {
		return Metadata{}, nil, fmt.Errorf("encode thumbnail: %w", err)
	}

	return meta, buf.Bytes(), nil
}

// SupportedExtension проверяет расширение файла до чтения содержимого.
func SupportedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff":
		return true
	}
	return false
}
