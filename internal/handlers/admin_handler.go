package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"learning-service/internal/common"
	"learning-service/internal/seed"
)

type AdminHandler struct {
	Seeder *seed.Seeder
}

func NewAdminHandler(seeder *seed.Seeder) *AdminHandler {
	return &AdminHandler{Seeder: seeder}
}

// Seed wipes the catalog collections and repopulates them with the
// starter dataset. User accounts are untouched.
func (h *AdminHandler) Seed(c *gin.Context) {
	summary, err := h.Seeder.Run(context.Background())
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database seeded", "summary": summary})
}

type createAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required"})
		return
	}

	user, err := h.Seeder.EnsureAdmin(context.Background(), req.Name, req.Email, req.Password)
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	user.Password = ""
	c.JSON(http.StatusCreated, gin.H{"user": user})
}
