package handlers

import (
	"context"
	"errors"
	"net/http"

	"reading-service/internal/quiz"
	"reading-service/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

// GetForm loads the authoring form for a story. When no quiz exists
// yet the form comes back blank and exists=false.
func (h *QuizHandler) GetForm(c *gin.Context) {
	storyID := c.Param("storyId")
	form, exists, err := h.Service.LoadForm(context.Background(), storyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	message := "No quiz yet. Start creating one."
	if exists {
		message = "Quiz loaded."
	}
	c.JSON(http.StatusOK, gin.H{
		"form":    form,
		"exists":  exists,
		"message": message,
	})
}

// SaveForm validates the submitted authoring form and upserts the quiz.
func (h *QuizHandler) SaveForm(c *gin.Context) {
	storyID := c.Param("storyId")
	if storyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Choose a story."})
		return
	}

	var form quiz.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid quiz format",
			"details": err.Error(),
		})
		return
	}

	questions, err := h.Service.SaveForm(context.Background(), storyID, form)
	if err != nil {
		var vErr *quiz.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Quiz saved.",
		"questions": questions,
	})
}

// SampleForm returns the fixed illustrative template for the "fill
// sample" authoring action. Never persisted here.
func (h *QuizHandler) SampleForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"form":    quiz.LoadForm(quiz.SampleQuiz()),
		"message": "Sample quiz filled.",
	})
}

// DeliverQuiz returns the answerable student view of a story's quiz.
func (h *QuizHandler) DeliverQuiz(c *gin.Context) {
	storyID := c.Param("id")
	view, err := h.Service.DeliverQuiz(context.Background(), storyID)
	if err != nil {
		if errors.Is(err, quiz.ErrQuizUnavailable) {
			c.JSON(http.StatusNotFound, gin.H{"error": "This story has no quiz yet (needs exactly 5 questions)."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}
