package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/plastinin/mediashelf/internal/adapter/http/dto"
	"github.com/plastinin/mediashelf/internal/domain"
	"github.com/plastinin/mediashelf/internal/usecase"
	"go.uber.org/zap"
)

const (
	maxUploadSize = 256 << 20 // 256 MB, комиксы бывают большими
)

// DocumentHandler обработчик HTTP запросов для документов
type DocumentHandler struct {
	docUC  *usecase.DocumentUseCase
	logger *zap.Logger
}

// NewDocumentHandler создаёт новый DocumentHandler
func NewDocumentHandler(docUC *usecase.DocumentUseCase, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		docUC:  docUC,
		logger: logger,
	}
}

// Upload загружает новый документ
// POST /api/v1/documents
// Content-Type: multipart/form-data
// - file: файл документа
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Ограничиваем размер загрузки
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	// Парсим multipart форму
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.logger.Warn("Failed to parse multipart form", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "invalid_request", "Failed to parse form data")
		return
	}

	// Получаем файл
	file, header, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("Failed to get file from form", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "file_required", "File is required")
		return
	}
	defer file.Close()

	input := usecase.UploadDocumentInput{
		FileName:   header.Filename,
		FileSize:   header.Size,
		FileReader: file,
	}

	doc, err := h.docUC.Upload(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFileType) {
			h.respondError(w, http.StatusUnsupportedMediaType, "unsupported_file_type",
				"Unsupported file type. Supported: PDF, EPUB, ZIP, CBZ, RAR, CBR, PNG, JPEG, WEBP, AVIF, GIF, HTML, XML, TXT")
			return
		}

		h.logger.Error("Failed to upload document", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal_error", "Failed to upload document")
		return
	}

	h.respondJSON(w, http.StatusCreated, dto.DocumentFromDomain(doc))
}

// GetByID возвращает документ по ID
// GET /api/v1/documents/{id}
func (h *DocumentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	doc, err := h.docUC.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			h.respondError(w, http.StatusNotFound, "not_found", "Document not found")
			return
		}
		h.logger.Error("Failed to get document", zap.String("document_id", id.String()), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal_error", "Failed to get document")
		return
	}

	h.respondJSON(w, http.StatusOK, dto.DocumentFromDomain(doc))
}

// Download отдаёт содержимое файла документа
// GET /api/v1/documents/{id}/file
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	doc, reader, err := h.docUC.Download(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			h.respondError(w, http.StatusNotFound, "not_found", "Document not found")
			return
		}
		h.logger.Error("Failed to download document", zap.String("document_id", id.String()), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal_error", "Failed to download document")
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", doc.ContentType.MIME())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.DownloadName()))
	if doc.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(doc.Size, 10))
	}

	if _, err := io.Copy(w, reader); err != nil {
		// Ответ уже начат, остаётся только залогировать
		h.logger.Warn("Failed to stream document",
			zap.String("document_id", id.String()),
			zap.Error(err),
		)
	}
}

// Thumbnail отдаёт миниатюру документа
// GET /api/v1/documents/{id}/thumbnail
func (h *DocumentHandler) Thumbnail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	reader, err := h.docUC.DownloadThumbnail(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			h.respondError(w, http.StatusNotFound, "not_found", "Document not found")
			return
		}
		if errors.Is(err, domain.ErrThumbnailNotReady) {
			h.respondError(w, http.StatusNotFound, "thumbnail_not_ready", "Thumbnail is not ready")
			return
		}
		h.logger.Error("Failed to download thumbnail", zap.String("document_id", id.String()), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal_error", "Failed to download thumbnail")
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", domain.ContentTypePNG.MIME())

	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Warn("Failed to stream thumbnail",
			zap.String("document_id", id.String()),
			zap.Error(err),
		)
	}
}

// List возвращает список документов
// GET /api/v1/documents?page=1&page_size=20&content_type=image/png&images_only=true
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	// Парсим параметры пагинации
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	pagination := domain.NewPagination(page, pageSize)

	// Парсим фильтры
	filter := domain.DocumentFilter{}
	if ctStr := r.URL.Query().Get("content_type"); ctStr != "" {
		ct := domain.ParseContentType(ctStr)
		if ct != domain.ContentTypeUnknown {
			filter.ContentType = &ct
		}
	}
	if imagesOnly, _ := strconv.ParseBool(r.URL.Query().Get("images_only")); imagesOnly {
		filter.ImagesOnly = true
	}

	result, err := h.docUC.List(r.Context(), filter, pagination)
	if err != nil {
		h.logger.Error("Failed to list documents", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal_error", "Failed to list documents")
		return
	}

	h.respondJSON(w, http.StatusOK, dto.DocumentListFromDomain(result))
}

// Delete удаляет документ
// DELETE /api/v1/documents/{id}
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	err := h.docUC.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			h.respondError(w, http.StatusNotFound, "not_found", "Document not found")
			return
		}
		h.logger.Error("Failed to delete document", zap.String("document_id", id.String()), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal_error", "Failed to delete document")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseID извлекает и валидирует ID документа из URL
func (h *DocumentHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_id", "Invalid document ID format")
		return uuid.Nil, false
	}
	return id, true
}

// respondJSON отправляет JSON ответ
func (h *DocumentHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// respondError отправляет ответ с ошибкой
func (h *DocumentHandler) respondError(w http.ResponseWriter, status int, errCode string, message string) {
	h.respondJSON(w, status, dto.NewErrorResponse(errCode, message))
}
