// Package imaging отвечает за работу с изображениями: классификацию форматов,
// декодирование и генерацию миниатюр. Это единственный шов между доменным
// словарём типов и сторонними кодеками изображений.
package imaging

import (
	"errors"
	"fmt"

	"github.com/plastinin/mediashelf/internal/domain"
)

// ErrUnsupportedFormat тип контента нельзя обработать как изображение
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format представляет формат изображения, поддерживаемый слоем обработки.
// Словарь форматов — строгое подмножество доменного словаря типов контента.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatWEBP Format = "webp"
	FormatAVIF Format = "avif"
	FormatGIF  Format = "gif"
)

func (f Format) String() string {
	return string(f)
}

// FormatFromContentType конвертирует тип контента в формат изображения.
// Для архивов, документов и Unknown возвращается ErrUnsupportedFormat
// с именем отклонённого типа.
func FormatFromContentType(contentType domain.ContentType) (Format, error) {
	switch contentType {
	case domain.ContentTypePNG:
		return FormatPNG, nil
	case domain.ContentTypeJPEG:
		return FormatJPEG, nil
	case domain.ContentTypeWEBP:
		return FormatWEBP, nil
	case domain.ContentTypeAVIF:
		return FormatAVIF, nil
	case domain.ContentTypeGIF:
		return FormatGIF, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, contentType)
	}
}

// ContentType конвертирует формат изображения в тип контента.
// Обратное преобразование всегда успешно: словарь форматов — подмножество
// словаря типов.
func (f Format) ContentType() domain.ContentType {
	switch f {
	case FormatPNG:
		return domain.ContentTypePNG
	case FormatJPEG:
		return domain.ContentTypeJPEG
	case FormatWEBP:
		return domain.ContentTypeWEBP
	case FormatAVIF:
		return domain.ContentTypeAVIF
	case FormatGIF:
		return domain.ContentTypeGIF
	default:
		return domain.ContentTypeUnknown
	}
}
