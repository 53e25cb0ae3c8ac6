package domain

import (
	"strings"
)

// ContentType представляет MIME тип контента. Это закрытый набор типов,
// которые умеет отдавать mediashelf: документы, архивы комиксов и изображения.
// Значением константы является канонический MIME тип.
type ContentType string

const (
	ContentTypeXHTML    ContentType = "application/xhtml+xml"
	ContentTypeXML      ContentType = "application/xml"
	ContentTypeHTML     ContentType = "text/html"
	ContentTypePDF      ContentType = "application/pdf"
	ContentTypeEPUB     ContentType = "application/epub+zip"
	ContentTypeZip      ContentType = "application/zip"
	ContentTypeComicZip ContentType = "application/vnd.comicbook+zip"
	ContentTypeRar      ContentType = "application/vnd.rar"
	ContentTypeComicRar ContentType = "application/vnd.comicbook-rar"
	ContentTypePNG      ContentType = "image/png"
	ContentTypeJPEG     ContentType = "image/jpeg"
	ContentTypeWEBP     ContentType = "image/webp"
	ContentTypeAVIF     ContentType = "image/avif"
	ContentTypeGIF      ContentType = "image/gif"
	ContentTypeText     ContentType = "text/plain"
	ContentTypeUnknown  ContentType = "unknown"
)

// Маппинг расширений (без точки, в нижнем регистре) на типы контента
var extensionToContentType = map[string]ContentType{
	"xhtml": ContentTypeXHTML,
	"xml":   ContentTypeXML,
	"html":  ContentTypeHTML,
	"pdf":   ContentTypePDF,
	"epub":  ContentTypeEPUB,
	"zip":   ContentTypeZip,
	"cbz":   ContentTypeComicZip,
	"rar":   ContentTypeRar,
	"cbr":   ContentTypeComicRar,
	"png":   ContentTypePNG,
	"jpg":   ContentTypeJPEG,
	"jpeg":  ContentTypeJPEG,
	"webp":  ContentTypeWEBP,
	"avif":  ContentTypeAVIF,
	"gif":   ContentTypeGIF,
	"txt":   ContentTypeText,
}

// Маппинг MIME строк на типы контента
var mimeToContentType = map[string]ContentType{
	"application/xhtml+xml":         ContentTypeXHTML,
	"application/xml":               ContentTypeXML,
	"text/html":                     ContentTypeHTML,
	"application/pdf":               ContentTypePDF,
	"application/epub+zip":          ContentTypeEPUB,
	"application/zip":               ContentTypeZip,
	"application/vnd.comicbook+zip": ContentTypeComicZip,
	"application/vnd.rar":           ContentTypeRar,
	"application/vnd.comicbook-rar": ContentTypeComicRar,
	"image/png":                     ContentTypePNG,
	"image/jpeg":                    ContentTypeJPEG,
	"image/webp":                    ContentTypeWEBP,
	"image/avif":                    ContentTypeAVIF,
	"image/gif":                     ContentTypeGIF,
	"text/plain":                    ContentTypeText,
}

// Канонические расширения типов контента
var contentTypeToExtension = map[ContentType]string{
	ContentTypeXHTML:    "xhtml",
	ContentTypeXML:      "xml",
	ContentTypeHTML:     "html",
	ContentTypePDF:      "pdf",
	ContentTypeEPUB:     "epub",
	ContentTypeZip:      "zip",
	ContentTypeComicZip: "cbz",
	ContentTypeRar:      "rar",
	ContentTypeComicRar: "cbr",
	ContentTypePNG:      "png",
	ContentTypeJPEG:     "jpg",
	ContentTypeWEBP:     "webp",
	ContentTypeAVIF:     "avif",
	ContentTypeGIF:      "gif",
	ContentTypeText:     "txt",
}

// contentTypeWorkarounds разрешает расширения, для которых нет отдельного типа.
// opf и ncx — это XML файлы внутри EPUB (метаданные и навигация).
func contentTypeWorkarounds(extension string) ContentType {
	if extension == "opf" || extension == "ncx" {
		return ContentTypeXML
	}
	return ContentTypeUnknown
}

// ContentTypeFromExtension определяет тип контента по расширению файла
// (без ведущей точки, регистр не важен). Неизвестное расширение — Unknown.
func ContentTypeFromExtension(extension string) ContentType {
	ext := strings.ToLower(extension)
	if ct, ok := extensionToContentType[ext]; ok {
		return ct
	}
	return contentTypeWorkarounds(ext)
}

// ParseContentType определяет тип контента по MIME строке.
// Параметры вида charset отбрасываются, регистр не важен.
// Неизвестная строка — Unknown, ошибок не бывает.
func ParseContentType(mime string) ContentType {
	s := strings.Split(mime, ";")[0]
	s = strings.TrimSpace(strings.ToLower(s))

	if ct, ok := mimeToContentType[s]; ok {
		return ct
	}
	return ContentTypeUnknown
}

// MIME возвращает каноническую MIME строку типа контента
func (c ContentType) MIME() string {
	return string(c)
}

func (c ContentType) String() string {
	return string(c)
}

// Extension возвращает каноническое расширение файла (без точки).
// Для Unknown возвращается пустая строка.
func (c ContentType) Extension() string {
	return contentTypeToExtension[c]
}

// IsValid проверяет, что значение принадлежит словарю типов.
// Unknown считается валидным значением, пустая строка — нет.
func (c ContentType) IsValid() bool {
	if c == ContentTypeUnknown {
		return true
	}
	_, ok := contentTypeToExtension[c]
	return ok
}

// IsImage проверяет, является ли тип изображением
func (c ContentType) IsImage() bool {
	return strings.HasPrefix(string(c), "image/")
}

// IsOPDSLegacyImage проверяет, допустим ли тип как изображение по спецификации
// OPDS 1.2: только PNG, JPEG и GIF. WEBP и AVIF фиды старого формата не поддерживают.
func (c ContentType) IsOPDSLegacyImage() bool {
	return c == ContentTypePNG || c == ContentTypeJPEG || c == ContentTypeGIF
}

// IsZip проверяет, является ли тип ZIP архивом (включая CBZ)
func (c ContentType) IsZip() bool {
	return c == ContentTypeZip || c == ContentTypeComicZip
}

// IsRar проверяет, является ли тип RAR архивом (включая CBR)
func (c ContentType) IsRar() bool {
	return c == ContentTypeRar || c == ContentTypeComicRar
}

// IsEPUB проверяет, является ли тип EPUB архивом
func (c ContentType) IsEPUB() bool {
	return c == ContentTypeEPUB
}
