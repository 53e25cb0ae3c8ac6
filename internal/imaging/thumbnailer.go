package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/gen2brain/avif"
	"github.com/gen2brain/go-fitz"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"

	"github.com/plastinin/mediashelf/internal/domain"
)

// Thumbnailer генерирует PNG миниатюры для изображений и PDF документов
type Thumbnailer struct {
	maxSize int // Максимальная сторона миниатюры в пикселях
}

// NewThumbnailer создаёт новый Thumbnailer
func NewThumbnailer(maxSize int) *Thumbnailer {
	return &Thumbnailer{maxSize: maxSize}
}

// Generate создаёт PNG миниатюру для файла с указанным типом контента.
// Поддерживаются изображения словаря форматов и PDF (первая страница).
func (t *Thumbnailer) Generate(data []byte, contentType domain.ContentType) ([]byte, error) {
	if contentType == domain.ContentTypePDF {
		return t.fromPDF(data)
	}

	format, err := FormatFromContentType(contentType)
	if err != nil {
		return nil, err
	}

	img, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s image: %w", format, err)
	}

	return t.encode(img)
}

// Decode декодирует изображение указанного формата
func Decode(data []byte, format Format) (image.Image, error) {
	switch format {
	case FormatPNG:
		return png.Decode(bytes.NewReader(data))
	case FormatJPEG:
		return jpeg.Decode(bytes.NewReader(data))
	case FormatWEBP:
		return webp.Decode(bytes.NewReader(data))
	case FormatAVIF:
		return avif.Decode(bytes.NewReader(data))
	case FormatGIF:
		return gif.Decode(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// fromPDF рендерит первую страницу PDF и строит миниатюру
func (t *Thumbnailer) fromPDF(pdfData []byte) ([]byte, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}

	return t.encode(img)
}

// encode масштабирует изображение до maxSize и кодирует в PNG
func (t *Thumbnailer) encode(img image.Image) ([]byte, error) {
	scaled := t.scale(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	return buf.Bytes(), nil
}

// scale уменьшает изображение так, чтобы большая сторона была не больше maxSize.
// Маленькие изображения не увеличиваются.
func (t *Thumbnailer) scale(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w <= t.maxSize && h <= t.maxSize {
		return img
	}

	if w > h {
		h = h * t.maxSize / w
		w = t.maxSize
	} else {
		w = w * t.maxSize / h
		h = t.maxSize
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
