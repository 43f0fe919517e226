package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krishnavamsip/pdf-assistant/middleware"
	"github.com/krishnavamsip/pdf-assistant/repository"
	"github.com/krishnavamsip/pdf-assistant/service"
	"github.com/krishnavamsip/pdf-assistant/types"
)

type DocumentHandler struct {
	documents repository.DocumentRepo
	storage   *service.StorageService
}

func NewDocumentHandler(documents repository.DocumentRepo, storage *service.StorageService) *DocumentHandler {
	return &DocumentHandler{
		documents: documents,
		storage:   storage,
	}
}

func (h *DocumentHandler) HandleListDocuments(c *gin.Context) {
	docs, err := h.documents.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   docs,
	})
}

func (h *DocumentHandler) HandleGetDocument(c *gin.Context) {
	doc, err := h.documents.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  false,
			Message: "Document not found",
		})
		return
	}

	doc.Text = ""
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   doc,
	})
}

// HandleDeleteDocument removes both the stored file and its record.
func (h *DocumentHandler) HandleDeleteDocument(c *gin.Context) {
	id := c.Param("id")
	doc, err := h.documents.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  false,
			Message: "Document not found",
		})
		return
	}

	if err := h.storage.Delete(c.Request.Context(), doc.StorageKey); err != nil {
		c.JSON(http.StatusBadGateway, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	if err := h.documents.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
	})
}
