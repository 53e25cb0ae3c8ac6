// Package filetype определяет тип контента файла по сигнатурам байтов
// с откатом на расширение файла, когда сигнатура не распознана.
package filetype

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"go.uber.org/zap"

	"github.com/plastinin/mediashelf/internal/domain"
)

// Для сниффинга достаточно заголовка файла
const sniffHeaderSize = 8192

// typeAVIF тип для AVIF, которого нет среди встроенных матчеров filetype
var typeAVIF = types.NewType("avif", "image/avif")

func init() {
	filetype.AddMatcher(typeAVIF, avifMatcher)
}

// avifMatcher проверяет сигнатуру AVIF: ISO BMFF контейнер с брендом avif/avis
func avifMatcher(data []byte) bool {
	if len(data) < 12 {
		return false
	}

	return data[0] == 0x00 &&
		data[1] == 0x00 &&
		data[4] == 'f' &&
		data[5] == 't' &&
		data[6] == 'y' &&
		data[7] == 'p' &&
		data[8] == 'a' &&
		data[9] == 'v' &&
		data[10] == 'i' &&
		(data[11] == 's' || data[11] == 'f' || data[11] == 'o')
}

// Detector определяет тип контента файлов и буферов.
// Определение никогда не возвращает ошибку: худший результат — Unknown.
type Detector struct {
	logger *zap.Logger
}

// NewDetector создаёт новый Detector
func NewDetector(logger *zap.Logger) *Detector {
	return &Detector{logger: logger}
}

// sniffMIME ищет известную сигнатуру в начале буфера и возвращает MIME строку.
// Если сигнатура не распознана, возвращает false.
func sniffMIME(data []byte) (string, bool) {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return "", false
	}
	return kind.MIME.Value, true
}

// FromExtension определяет тип контента по расширению файла (без точки)
func (d *Detector) FromExtension(extension string) domain.ContentType {
	return domain.ContentTypeFromExtension(extension)
}

// FromBytes определяет тип контента по сигнатуре байтов.
// Если сигнатура не распознана или MIME вне словаря — Unknown.
func (d *Detector) FromBytes(data []byte) domain.ContentType {
	mime, ok := sniffMIME(data)
	if !ok {
		return domain.ContentTypeUnknown
	}
	return domain.ParseContentType(mime)
}

// FromBytesWithFallback определяет тип контента по сигнатуре байтов,
// а при неудаче — по переданному расширению.
// Сниффинг по байтам точнее, поэтому его неудача логируется на уровне warn:
// это может говорить о проблеме с данными выше по потоку.
func (d *Detector) FromBytesWithFallback(data []byte, extension string) domain.ContentType {
	mime, ok := sniffMIME(data)
	if !ok {
		d.logger.Warn("Failed to infer content type from bytes, falling back to extension",
			zap.Int("bytes_len", len(data)),
			zap.String("extension", extension),
		)
		return domain.ContentTypeFromExtension(extension)
	}
	return domain.ParseContentType(mime)
}

// FromPath читает заголовок файла и определяет тип контента по сигнатуре,
// а при неудаче — по расширению пути. Ошибки чтения не пробрасываются:
// они трактуются как нераспознанная сигнатура.
func (d *Detector) FromPath(path string) domain.ContentType {
	header, err := readHeader(path)
	if err != nil {
		d.logger.Debug("Failed to read file header for sniffing",
			zap.String("path", path),
			zap.Error(err),
		)
		return d.fromPathExtension(path)
	}

	mime, ok := sniffMIME(header)
	if !ok {
		return d.fromPathExtension(path)
	}
	return domain.ParseContentType(mime)
}

// fromPathExtension определяет тип контента по расширению пути
func (d *Detector) fromPathExtension(path string) domain.ContentType {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return domain.ContentTypeFromExtension(ext)
}

// readHeader читает первые sniffHeaderSize байт файла
func readHeader(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header := make([]byte, sniffHeaderSize)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return header[:n], nil
}
