package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/krishnavamsip/pdf-assistant/middleware"
	"github.com/krishnavamsip/pdf-assistant/repository"
	"github.com/krishnavamsip/pdf-assistant/service"
	"github.com/krishnavamsip/pdf-assistant/types"
)

const maxUploadSize = 50 << 20 // 50MB

type UploadHandler struct {
	pdfService     *service.PDFService
	storage        *service.StorageService
	chapterService *service.ChapterService
	documents      repository.DocumentRepo
}

func NewUploadHandler(
	pdfService *service.PDFService,
	storage *service.StorageService,
	chapterService *service.ChapterService,
	documents repository.DocumentRepo,
) *UploadHandler {
	return &UploadHandler{
		pdfService:     pdfService,
		storage:        storage,
		chapterService: chapterService,
		documents:      documents,
	}
}

// UploadDocumentHandler accepts a multipart PDF, extracts its text, stores
// the file in the bucket and records the document for later operations.
func (h *UploadHandler) UploadDocumentHandler(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid file",
		})
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "File too large",
		})
		return
	}
	if strings.ToLower(filepath.Ext(header.Filename)) != ".pdf" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Only PDF files are supported",
		})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: "Failed to read file",
		})
		return
	}

	text, pages, err := h.pdfService.ExtractBytes(data)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	userID := middleware.UserID(c)
	publicURL, storageKey, err := h.storage.Upload(c.Request.Context(), data, header.Filename, userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	chapters := h.chapterService.DetectChapters(text)

	doc := &types.StoredDocument{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      header.Filename,
		StorageKey: storageKey,
		PublicURL:  publicURL,
		Pages:      pages,
		Chars:      len(text),
		Text:       text,
		Chapters:   chapters,
		CreateAt:   time.Now().Unix(),
	}
	if err := h.documents.Create(c.Request.Context(), doc); err != nil {
		// The file is already in the bucket; roll it back so storage and
		// records stay consistent.
		h.storage.Delete(c.Request.Context(), storageKey)
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.UploadResponse{
			ID:        doc.ID,
			Title:     doc.Title,
			PublicURL: doc.PublicURL,
			Pages:     doc.Pages,
			Chars:     doc.Chars,
			Chapters:  len(chapters),
		},
	})
}
