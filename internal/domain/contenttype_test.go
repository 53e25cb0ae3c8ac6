package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Все типы словаря, кроме Unknown
var knownContentTypes = []ContentType{
	ContentTypeXHTML,
	ContentTypeXML,
	ContentTypeHTML,
	ContentTypePDF,
	ContentTypeEPUB,
	ContentTypeZip,
	ContentTypeComicZip,
	ContentTypeRar,
	ContentTypeComicRar,
	ContentTypePNG,
	ContentTypeJPEG,
	ContentTypeWEBP,
	ContentTypeAVIF,
	ContentTypeGIF,
	ContentTypeText,
}

func TestContentTypeFromExtension(t *testing.T) {
	tests := []struct {
		extension string
		want      ContentType
	}{
		{"xhtml", ContentTypeXHTML},
		{"xml", ContentTypeXML},
		{"html", ContentTypeHTML},
		{"pdf", ContentTypePDF},
		{"epub", ContentTypeEPUB},
		{"zip", ContentTypeZip},
		{"cbz", ContentTypeComicZip},
		{"rar", ContentTypeRar},
		{"cbr", ContentTypeComicRar},
		{"png", ContentTypePNG},
		{"jpg", ContentTypeJPEG},
		{"jpeg", ContentTypeJPEG},
		{"webp", ContentTypeWEBP},
		{"avif", ContentTypeAVIF},
		{"gif", ContentTypeGIF},
		{"txt", ContentTypeText},
		// Регистр не важен
		{"PNG", ContentTypePNG},
		{"Jpeg", ContentTypeJPEG},
		{"CBZ", ContentTypeComicZip},
		// Workaround для EPUB метаданных
		{"opf", ContentTypeXML},
		{"ncx", ContentTypeXML},
		{"OPF", ContentTypeXML},
		// Неизвестные расширения
		{"foobar", ContentTypeUnknown},
		{"", ContentTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.extension, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentTypeFromExtension(tt.extension))
		})
	}
}

func TestParseContentType(t *testing.T) {
	tests := []struct {
		mime string
		want ContentType
	}{
		{"image/png", ContentTypePNG},
		{"IMAGE/PNG", ContentTypePNG},
		{"application/vnd.comicbook+zip", ContentTypeComicZip},
		{"text/html; charset=utf-8", ContentTypeHTML},
		{" text/plain ", ContentTypeText},
		{"unknown", ContentTypeUnknown},
		{"application/octet-stream", ContentTypeUnknown},
		{"garbage", ContentTypeUnknown},
		{"", ContentTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseContentType(tt.mime))
		})
	}
}

func TestContentTypeMIMERoundTrip(t *testing.T) {
	// MIME строка каждого известного типа парсится обратно в него же
	for _, ct := range knownContentTypes {
		assert.Equal(t, ct, ParseContentType(ct.MIME()), "round trip for %s", ct)
	}
}

func TestContentTypeExtensionRoundTrip(t *testing.T) {
	// Каноническое расширение каждого известного типа резолвится в тип
	// с той же MIME строкой (jpg/jpeg — алиасы одного типа)
	for _, ct := range knownContentTypes {
		resolved := ContentTypeFromExtension(ct.Extension())
		assert.Equal(t, ct.MIME(), resolved.MIME(), "extension round trip for %s", ct)
	}
}

func TestContentTypeExtension(t *testing.T) {
	assert.Equal(t, "jpg", ContentTypeJPEG.Extension())
	assert.Equal(t, "cbz", ContentTypeComicZip.Extension())
	assert.Equal(t, "", ContentTypeUnknown.Extension())
}

func TestContentTypeIsImage(t *testing.T) {
	images := map[ContentType]bool{
		ContentTypePNG:  true,
		ContentTypeJPEG: true,
		ContentTypeWEBP: true,
		ContentTypeAVIF: true,
		ContentTypeGIF:  true,
	}

	for _, ct := range knownContentTypes {
		assert.Equal(t, images[ct], ct.IsImage(), "IsImage for %s", ct)
	}
	assert.False(t, ContentTypeUnknown.IsImage())
}

func TestContentTypeIsOPDSLegacyImage(t *testing.T) {
	assert.True(t, ContentTypePNG.IsOPDSLegacyImage())
	assert.True(t, ContentTypeJPEG.IsOPDSLegacyImage())
	assert.True(t, ContentTypeGIF.IsOPDSLegacyImage())

	// WEBP и AVIF — изображения, но старый OPDS формат их не допускает
	assert.False(t, ContentTypeWEBP.IsOPDSLegacyImage())
	assert.False(t, ContentTypeAVIF.IsOPDSLegacyImage())
	assert.False(t, ContentTypeZip.IsOPDSLegacyImage())
	assert.False(t, ContentTypeUnknown.IsOPDSLegacyImage())
}

func TestContentTypeArchivePredicates(t *testing.T) {
	assert.True(t, ContentTypeZip.IsZip())
	assert.True(t, ContentTypeComicZip.IsZip())
	assert.False(t, ContentTypeRar.IsZip())

	assert.True(t, ContentTypeRar.IsRar())
	assert.True(t, ContentTypeComicRar.IsRar())
	assert.False(t, ContentTypeZip.IsRar())

	assert.True(t, ContentTypeEPUB.IsEPUB())
	assert.False(t, ContentTypeZip.IsEPUB())
}

func TestContentTypeIsValid(t *testing.T) {
	for _, ct := range knownContentTypes {
		assert.True(t, ct.IsValid(), "IsValid for %s", ct)
	}
	assert.True(t, ContentTypeUnknown.IsValid())
	assert.False(t, ContentType("").IsValid())
	assert.False(t, ContentType("application/bogus").IsValid())
}
