package handlers

import (
	"context"
	"errors"
	"net/http"

	"reading-service/internal/narration"
	"reading-service/internal/service"

	"github.com/gin-gonic/gin"
)

type NarrationHandler struct {
	Engine       *narration.Engine
	StoryService *service.StoryService
}

func NewNarrationHandler(engine *narration.Engine, stories *service.StoryService) *NarrationHandler {
	return &NarrationHandler{Engine: engine, StoryService: stories}
}

// StartNarration begins reading a story aloud. Any narration already
// playing is stopped first; at most one utterance is ever active.
func (h *NarrationHandler) StartNarration(c *gin.Context) {
	var req struct {
		StoryID string `json:"story_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid narration request",
			"details": err.Error(),
		})
		return
	}

	story, err := h.StoryService.GetStory(context.Background(), req.StoryID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		return
	}

	status, err := h.Engine.Start(story)
	if err != nil {
		if errors.Is(err, narration.ErrNarrationUnsupported) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Text-to-speech is not supported on this device.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to start narration",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, status)
}

func (h *NarrationHandler) PauseNarration(c *gin.Context) {
	h.control(c, h.Engine.Pause, "Narration paused")
}

func (h *NarrationHandler) ResumeNarration(c *gin.Context) {
	h.control(c, h.Engine.Resume, "Narration resumed")
}

func (h *NarrationHandler) StopNarration(c *gin.Context) {
	h.control(c, h.Engine.Stop, "Narration stopped")
}

// control runs one pause/resume/stop action and returns the session
// snapshot. Without speech support the controls are inert no-ops.
func (h *NarrationHandler) control(c *gin.Context, action func(string) error, message string) {
	id := c.Param("id")
	if err := action(id); err != nil {
		if errors.Is(err, narration.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Narration session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !h.Engine.Supported() {
		c.JSON(http.StatusOK, gin.H{"message": message})
		return
	}
	status, err := h.Engine.Status(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Narration session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"session": status,
	})
}

// NarrationStatus reports the session state and current highlight.
func (h *NarrationHandler) NarrationStatus(c *gin.Context) {
	id := c.Param("id")
	status, err := h.Engine.Status(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Narration session not found"})
		return
	}
	c.JSON(http.StatusOK, status)
}
