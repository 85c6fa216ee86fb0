package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"learning-service/internal/catalog"
	"learning-service/internal/common"
	"learning-service/internal/models"
	"learning-service/internal/progress"
	"learning-service/internal/service"
)

type ProgressHandler struct {
	Tracker *progress.Tracker
	Catalog *catalog.Catalog
	Users   *service.UserService
}

func NewProgressHandler(tracker *progress.Tracker, cat *catalog.Catalog, users *service.UserService) *ProgressHandler {
	return &ProgressHandler{Tracker: tracker, Catalog: cat, Users: users}
}

// MarkTopicComplete records the topic as finished for the caller. The
// owning unit and subject are resolved from the topic itself so the
// stored references always agree.
func (h *ProgressHandler) MarkTopicComplete(c *gin.Context) {
	topicID := c.Param("id")
	topic, err := h.Catalog.TopicByID(context.Background(), topicID)
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}

	err = h.Tracker.MarkTopicComplete(context.Background(), currentUserID(c), topic.SubjectID.Hex(), topic.UnitID.Hex(), topicID)
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Topic marked complete"})
}

func (h *ProgressHandler) UnmarkTopicComplete(c *gin.Context) {
	topicID := c.Param("id")
	topic, err := h.Catalog.TopicByID(context.Background(), topicID)
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}

	err = h.Tracker.UnmarkTopicComplete(context.Background(), currentUserID(c), topic.SubjectID.Hex(), topic.UnitID.Hex(), topicID)
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Topic unmarked"})
}

func (h *ProgressHandler) GetSubjectProgress(c *gin.Context) {
	entry, err := h.Tracker.SubjectProgress(context.Background(), currentUserID(c), c.Param("id"))
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *ProgressHandler) GetUnitProgress(c *gin.Context) {
	completed, total, percentage, err := h.Tracker.UnitProgress(context.Background(), currentUserID(c), c.Param("id"))
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"completedTopics": completed,
		"totalTopics":     total,
		"percentage":      percentage,
	})
}

// GetAllProgress returns the caller's per-subject progress entries.
func (h *ProgressHandler) GetAllProgress(c *gin.Context) {
	user, err := h.Users.GetProfile(context.Background(), currentUserID(c))
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	entries := user.Progress
	if entries == nil {
		entries = []models.ProgressEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"progress": entries})
}
