package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plastinin/mediashelf/internal/domain"
)

func TestFormatFromContentType(t *testing.T) {
	tests := []struct {
		contentType domain.ContentType
		want        Format
	}{
		{domain.ContentTypePNG, FormatPNG},
		{domain.ContentTypeJPEG, FormatJPEG},
		{domain.ContentTypeWEBP, FormatWEBP},
		{domain.ContentTypeAVIF, FormatAVIF},
		{domain.ContentTypeGIF, FormatGIF},
	}

	for _, tt := range tests {
		t.Run(string(tt.contentType), func(t *testing.T) {
			got, err := FormatFromContentType(tt.contentType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromContentTypeUnsupported(t *testing.T) {
	unsupported := []domain.ContentType{
		domain.ContentTypeXHTML,
		domain.ContentTypeXML,
		domain.ContentTypeHTML,
		domain.ContentTypePDF,
		domain.ContentTypeEPUB,
		domain.ContentTypeZip,
		domain.ContentTypeComicZip,
		domain.ContentTypeRar,
		domain.ContentTypeComicRar,
		domain.ContentTypeText,
		domain.ContentTypeUnknown,
	}

	for _, ct := range unsupported {
		t.Run(string(ct), func(t *testing.T) {
			_, err := FormatFromContentType(ct)
			require.ErrorIs(t, err, ErrUnsupportedFormat)
			// Ошибка называет отклонённый тип
			assert.Contains(t, err.Error(), ct.String())
		})
	}
}

func TestFormatContentType(t *testing.T) {
	assert.Equal(t, domain.ContentTypePNG, FormatPNG.ContentType())
	assert.Equal(t, domain.ContentTypeJPEG, FormatJPEG.ContentType())
	assert.Equal(t, domain.ContentTypeWEBP, FormatWEBP.ContentType())
	assert.Equal(t, domain.ContentTypeAVIF, FormatAVIF.ContentType())
	assert.Equal(t, domain.ContentTypeGIF, FormatGIF.ContentType())
}

func TestFormatRoundTrip(t *testing.T) {
	// Словарь форматов — подмножество словаря типов, конверсия обратима
	for _, format := range []Format{FormatPNG, FormatJPEG, FormatWEBP, FormatAVIF, FormatGIF} {
		got, err := FormatFromContentType(format.ContentType())
		require.NoError(t, err)
		assert.Equal(t, format, got)
	}
}
