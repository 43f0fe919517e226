package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krishnavamsip/pdf-assistant/service"
	"github.com/krishnavamsip/pdf-assistant/types"
)

type QuizHandler struct {
	quizzes  *service.QuizService
	resolver *service.DocumentService
}

func NewQuizHandler(quizzes *service.QuizService, resolver *service.DocumentService) *QuizHandler {
	return &QuizHandler{
		quizzes:  quizzes,
		resolver: resolver,
	}
}

func (h *QuizHandler) HandleQuiz(c *gin.Context) {
	var req types.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}
	if req.Count <= 0 {
		req.Count = 5
	}

	text, err := h.resolver.ResolveText(c.Request.Context(), req.DocumentRequest)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	questions := h.quizzes.Generate(c.Request.Context(), text, req.Count, req.Offset)

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.QuizResponse{
			Questions: questions,
			Requested: req.Count,
		},
	})
}
