package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krishnavamsip/pdf-assistant/service"
	"github.com/krishnavamsip/pdf-assistant/types"
)

type SummaryHandler struct {
	summaries *service.SummaryService
	resolver  *service.DocumentService
}

func NewSummaryHandler(summaries *service.SummaryService, resolver *service.DocumentService) *SummaryHandler {
	return &SummaryHandler{
		summaries: summaries,
		resolver:  resolver,
	}
}

func (h *SummaryHandler) HandleSummarize(c *gin.Context) {
	var req types.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	text, err := h.resolver.ResolveText(c.Request.Context(), req.DocumentRequest)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	summary, err := h.summaries.Summarize(c.Request.Context(), text, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   types.SummaryResponse{Summary: summary},
	})
}
