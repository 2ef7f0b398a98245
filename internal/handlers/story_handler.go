package handlers

import (
	"context"
	"net/http"

	"reading-service/internal/service"

	"github.com/gin-gonic/gin"
)

type StoryHandler struct {
	Service *service.StoryService
}

func NewStoryHandler(s *service.StoryService) *StoryHandler {
	return &StoryHandler{Service: s}
}

func (h *StoryHandler) ListStories(c *gin.Context) {
	stories, err := h.Service.ListStories(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stories)
}

func (h *StoryHandler) GetStory(c *gin.Context) {
	id := c.Param("id")
	story, err := h.Service.GetStory(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		return
	}
	c.JSON(http.StatusOK, story)
}
