package domain

// ThumbnailStatus представляет статус миниатюры документа
type ThumbnailStatus string

const (
	ThumbnailStatusPending    ThumbnailStatus = "pending"    // Миниатюра ожидает генерации
	ThumbnailStatusProcessing ThumbnailStatus = "processing" // Миниатюра генерируется
	ThumbnailStatusReady      ThumbnailStatus = "ready"      // Миниатюра готова
	ThumbnailStatusFailed     ThumbnailStatus = "failed"     // Генерация завершилась с ошибкой
	ThumbnailStatusNone       ThumbnailStatus = "none"       // Для этого типа миниатюра не генерируется
)

// IsValid проверяет валидность статуса
func (s ThumbnailStatus) IsValid() bool {
	switch s {
	case ThumbnailStatusPending, ThumbnailStatusProcessing, ThumbnailStatusReady,
		ThumbnailStatusFailed, ThumbnailStatusNone:
		return true
	}
	return false
}

// IsFinal проверяет, является ли статус финальным
func (s ThumbnailStatus) IsFinal() bool {
	return s == ThumbnailStatusReady || s == ThumbnailStatusFailed || s == ThumbnailStatusNone
}

func (s ThumbnailStatus) String() string {
	return string(s)
}
