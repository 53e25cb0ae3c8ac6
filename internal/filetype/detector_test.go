package filetype

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/plastinin/mediashelf/internal/domain"
)

// Сигнатуры форматов для тестов
var (
	pngHeader  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46}
	gifHeader  = []byte("GIF89a")
	pdfHeader  = []byte("%PDF-1.7")
	webpHeader = []byte{'R', 'I', 'F', 'F', 0x24, 0x00, 0x00, 0x00, 'W', 'E', 'B', 'P'}
	avifHeader = []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'a', 'v', 'i', 'f'}
	zipHeader  = []byte{0x50, 0x4B, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00}
	garbage    = []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
)

func TestDetectorFromBytes(t *testing.T) {
	d := NewDetector(zap.NewNop())

	tests := []struct {
		name string
		data []byte
		want domain.ContentType
	}{
		{"png", pngHeader, domain.ContentTypePNG},
		{"jpeg", jpegHeader, domain.ContentTypeJPEG},
		{"gif", gifHeader, domain.ContentTypeGIF},
		{"pdf", pdfHeader, domain.ContentTypePDF},
		{"webp", webpHeader, domain.ContentTypeWEBP},
		{"avif", avifHeader, domain.ContentTypeAVIF},
		{"zip", zipHeader, domain.ContentTypeZip},
		{"garbage", garbage, domain.ContentTypeUnknown},
		{"empty", nil, domain.ContentTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.FromBytes(tt.data))
		})
	}
}

func TestDetectorFromBytesWithFallback(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := NewDetector(zap.New(core))

	// Сигнатура не распознана — откат на расширение с warn логом
	got := d.FromBytesWithFallback(garbage, "png")
	assert.Equal(t, domain.ContentTypePNG, got)

	entries := logs.FilterLevelExact(zap.WarnLevel).All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "falling back to extension")

	// Откат с неизвестным расширением — Unknown
	assert.Equal(t, domain.ContentTypeUnknown, d.FromBytesWithFallback(garbage, "foobar"))
}

func TestDetectorFromBytesWithFallbackPrefersSniffing(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := NewDetector(zap.New(core))

	// Сигнатура распознана — расширение игнорируется, лога нет
	got := d.FromBytesWithFallback(pngHeader, "cbz")
	assert.Equal(t, domain.ContentTypePNG, got)
	assert.Zero(t, logs.Len())
}

func TestDetectorFromPath(t *testing.T) {
	d := NewDetector(zap.NewNop())
	dir := t.TempDir()

	write := func(name string, data []byte) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, data, 0o644))
		return path
	}

	// Сигнатура важнее расширения
	assert.Equal(t, domain.ContentTypePNG, d.FromPath(write("image.bin", pngHeader)))

	// Сигнатура не распознана — откат на расширение пути
	assert.Equal(t, domain.ContentTypeComicZip, d.FromPath(write("comic.cbz", garbage)))
	assert.Equal(t, domain.ContentTypeComicZip, d.FromPath(write("comic2.CBZ", garbage)))

	// Без расширения и без сигнатуры — Unknown
	assert.Equal(t, domain.ContentTypeUnknown, d.FromPath(write("noext", garbage)))
}

func TestDetectorFromPathReadError(t *testing.T) {
	d := NewDetector(zap.NewNop())

	// Ошибка чтения маскируется: определяем по расширению пути
	missing := filepath.Join(t.TempDir(), "missing.pdf")
	assert.Equal(t, domain.ContentTypePDF, d.FromPath(missing))

	// Ошибка чтения и неизвестное расширение — Unknown
	assert.Equal(t, domain.ContentTypeUnknown, d.FromPath(filepath.Join(t.TempDir(), "missing.foo")))
}

func TestDetectorFromExtension(t *testing.T) {
	d := NewDetector(zap.NewNop())

	assert.Equal(t, domain.ContentTypeEPUB, d.FromExtension("epub"))
	assert.Equal(t, domain.ContentTypeXML, d.FromExtension("opf"))
	assert.Equal(t, domain.ContentTypeUnknown, d.FromExtension(""))
}
