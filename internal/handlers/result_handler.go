package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"learning-service/internal/common"
	"learning-service/internal/models"
	"learning-service/internal/service"
)

type ResultHandler struct {
	Service *service.ResultService
}

func NewResultHandler(s *service.ResultService) *ResultHandler {
	return &ResultHandler{Service: s}
}

// MyResults lists the caller's completed quiz results, newest first.
func (h *ResultHandler) MyResults(c *gin.Context) {
	results, err := h.Service.GetResultsByUser(context.Background(), currentUserID(c))
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	if results == nil {
		results = []models.QuizResult{}
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
