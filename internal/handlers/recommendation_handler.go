package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"reading-service/internal/service"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	Service *service.RecommendationService
}

func NewRecommendationHandler(s *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{Service: s}
}

func (h *RecommendationHandler) CreateRecommendation(c *gin.Context) {
	var req struct {
		StoryID    string `json:"story_id"`
		GradeLevel *int   `json:"grade_level"`
		Note       string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	teacherID := c.GetHeader("X-User-ID")

	rec, err := h.Service.CreateRecommendation(context.Background(), req.StoryID, teacherID, req.GradeLevel, req.Note)
	if err != nil {
		if errors.Is(err, service.ErrStoryRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"recommendation": rec,
		"message":        "Recommendation saved. Students will see it as Recommended.",
	})
}

func (h *RecommendationHandler) ListRecommendations(c *gin.Context) {
	limit := int64(36)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	recs, err := h.Service.ListRecent(context.Background(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *RecommendationHandler) DeleteRecommendation(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteRecommendation(context.Background(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recommendation deleted."})
}
