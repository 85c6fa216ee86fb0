package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"learning-service/internal/catalog"
	"learning-service/internal/common"
	"learning-service/internal/models"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

// publicQuestion is a question stripped of its answer key; attempts in
// progress must never see correctAnswer or explanation.
type publicQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type publicQuiz struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	UnitID    string           `json:"unitId"`
	SubjectID string           `json:"subjectId"`
	TimeLimit int              `json:"timeLimit"`
	Questions []publicQuestion `json:"questions"`
}

func toPublicQuiz(q *models.Quiz) publicQuiz {
	out := publicQuiz{
		ID:        q.ID.Hex(),
		Title:     q.Title,
		UnitID:    q.UnitID.Hex(),
		SubjectID: q.SubjectID.Hex(),
		TimeLimit: q.TimeLimit,
	}
	for _, question := range q.Questions {
		out.Questions = append(out.Questions, publicQuestion{
			ID:       question.ID.Hex(),
			Question: question.Question,
			Options:  question.Options,
		})
	}
	return out
}

func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")
	if category != "" && !models.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	subjects, err := h.Catalog.ListSubjects(context.Background(), category, search)
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	if subjects == nil {
		subjects = []models.Subject{}
	}
	c.JSON(http.StatusOK, gin.H{"subjects": subjects})
}

func (h *CatalogHandler) GetSubject(c *gin.Context) {
	view, err := h.Catalog.GetSubjectWithUnits(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CatalogHandler) GetUnit(c *gin.Context) {
	detail, err := h.Catalog.GetUnit(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *CatalogHandler) GetTopic(c *gin.Context) {
	detail, err := h.Catalog.GetTopic(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetUnitQuiz serves the unit's quiz in its take-home form, without the
// answer key.
func (h *CatalogHandler) GetUnitQuiz(c *gin.Context) {
	quiz, err := h.Catalog.QuizForUnit(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toPublicQuiz(quiz))
}
