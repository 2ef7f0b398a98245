package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"reading-service/internal/quiz"
	"reading-service/internal/service"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	Service *service.AttemptService
}

func NewAttemptHandler(s *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{Service: s}
}

// SubmitAttempt scores a student's five answers and records the
// attempt. Null entries mean unanswered and reject the submission.
func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	storyID := c.Param("id")

	var req struct {
		Answers []*int `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid submission format",
			"details": err.Error(),
		})
		return
	}

	userID := c.GetHeader("X-User-ID")

	attempt, err := h.Service.SubmitAttempt(context.Background(), storyID, userID, req.Answers)
	if err != nil {
		var incomplete *quiz.IncompleteError
		if errors.As(err, &incomplete) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":    incomplete.Error(),
				"question": incomplete.Question,
			})
			return
		}
		if errors.Is(err, quiz.ErrQuizUnavailable) {
			c.JSON(http.StatusNotFound, gin.H{"error": "This story has no quiz yet (needs exactly 5 questions)."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to submit attempt",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"attempt":  attempt,
		"feedback": quiz.FeedbackFor(attempt.Score, attempt.Total),
	})
}

// GetAttempt returns one attempt with its feedback for the score page.
func (h *AttemptHandler) GetAttempt(c *gin.Context) {
	id := c.Param("id")
	attempt, feedback, err := h.Service.GetAttempt(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not load score."})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"attempt":  attempt,
		"feedback": feedback,
	})
}

// ListAttempts returns the newest attempts for the teacher summary.
func (h *AttemptHandler) ListAttempts(c *gin.Context) {
	limit := int64(24)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	attempts, err := h.Service.ListRecent(context.Background(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, attempts)
}
