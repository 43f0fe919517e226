package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krishnavamsip/pdf-assistant/service"
	"github.com/krishnavamsip/pdf-assistant/types"
)

type ChapterHandler struct {
	chapters *service.ChapterService
	resolver *service.DocumentService
}

func NewChapterHandler(chapters *service.ChapterService, resolver *service.DocumentService) *ChapterHandler {
	return &ChapterHandler{
		chapters: chapters,
		resolver: resolver,
	}
}

func (h *ChapterHandler) HandleDetectChapters(c *gin.Context) {
	var req types.ChaptersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}
	req.Chapter = 0 // detection always runs over the whole document

	text, err := h.resolver.ResolveText(c.Request.Context(), req.DocumentRequest)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.ChaptersResponse{
			Chapters: h.chapters.DetectChapters(text),
		},
	})
}
