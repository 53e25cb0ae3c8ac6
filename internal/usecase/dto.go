package usecase

import (
	"io"
)

// UploadDocumentInput входные данные для загрузки документа
type UploadDocumentInput struct {
	FileName   string    // Имя файла
	FileSize   int64     // Размер файла
	FileReader io.Reader // Содержимое файла
}
