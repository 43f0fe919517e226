package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krishnavamsip/pdf-assistant/service"
	"github.com/krishnavamsip/pdf-assistant/types"
)

type QAHandler struct {
	qa       *service.QAService
	resolver *service.DocumentService
}

func NewQAHandler(qa *service.QAService, resolver *service.DocumentService) *QAHandler {
	return &QAHandler{
		qa:       qa,
		resolver: resolver,
	}
}

func (h *QAHandler) HandleAsk(c *gin.Context) {
	var req types.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}
	if req.Question == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Question is required",
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

	answer, used := h.qa.Answer(c.Request.Context(), text, req.Question)

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.AnswerResponse{
			Answer:  answer,
			Context: used,
		},
	})
}
