package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krishnavamsip/pdf-assistant/service"
	"github.com/krishnavamsip/pdf-assistant/types"
)

type StatsHandler struct {
	ai service.AIService
}

func NewStatsHandler(ai service.AIService) *StatsHandler {
	return &StatsHandler{ai: ai}
}

func (h *StatsHandler) HandleStats(c *gin.Context) {
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   h.ai.UsageStats(),
	})
}
