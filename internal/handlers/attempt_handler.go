package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"learning-service/internal/common"
	"learning-service/internal/service"
)

type AttemptHandler struct {
	Service *service.AttemptService
}

func NewAttemptHandler(s *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{Service: s}
}

type startAttemptRequest struct {
	QuizID string `json:"quizId" binding:"required"`
}

type selectAnswerRequest struct {
	QuestionID  string `json:"questionId" binding:"required"`
	OptionIndex *int   `json:"optionIndex" binding:"required"`
}

func (h *AttemptHandler) Start(c *gin.Context) {
	var req startAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quizId is required"})
		return
	}

	snap, err := h.Service.Start(context.Background(), req.QuizID, currentUserID(c))
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, snap)
}

func (h *AttemptHandler) SelectAnswer(c *gin.Context) {
	var req selectAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "questionId and optionIndex are required"})
		return
	}

	err := h.Service.SelectAnswer(context.Background(), c.Param("id"), currentUserID(c), req.QuestionID, *req.OptionIndex)
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Answer recorded"})
}

// Advance moves to the next question; on the last answered question it
// completes the attempt and returns the result.
func (h *AttemptHandler) Advance(c *gin.Context) {
	result, snap, err := h.Service.Advance(context.Background(), c.Param("id"), currentUserID(c))
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	if result != nil {
		c.JSON(http.StatusOK, gin.H{"attempt": snap, "result": result})
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempt": snap})
}

func (h *AttemptHandler) Retreat(c *gin.Context) {
	snap, err := h.Service.Retreat(context.Background(), c.Param("id"), currentUserID(c))
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempt": snap})
}

func (h *AttemptHandler) Submit(c *gin.Context) {
	result, err := h.Service.Submit(context.Background(), c.Param("id"), currentUserID(c))
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

func (h *AttemptHandler) Abandon(c *gin.Context) {
	if err := h.Service.Abandon(context.Background(), c.Param("id"), currentUserID(c)); err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attempt abandoned"})
}

func (h *AttemptHandler) Status(c *gin.Context) {
	snap, err := h.Service.Snapshot(c.Param("id"), currentUserID(c))
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *AttemptHandler) Review(c *gin.Context) {
	result, err := h.Service.Review(c.Param("id"), currentUserID(c))
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

func (h *AttemptHandler) ReviewQuestion(c *gin.Context) {
	review, err := h.Service.ReviewQuestion(c.Param("id"), currentUserID(c), c.Param("questionId"))
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, review)
}
