package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"learning-service/internal/bookmark"
	"learning-service/internal/common"
)

type BookmarkHandler struct {
	Store *bookmark.Store
}

func NewBookmarkHandler(store *bookmark.Store) *BookmarkHandler {
	return &BookmarkHandler{Store: store}
}

// Toggle flips the bookmark state of a topic and reports the new state.
func (h *BookmarkHandler) Toggle(c *gin.Context) {
	bookmarked, err := h.Store.Toggle(context.Background(), currentUserID(c), c.Param("id"))
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

func (h *BookmarkHandler) Remove(c *gin.Context) {
	if err := h.Store.Remove(context.Background(), currentUserID(c), c.Param("id")); err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bookmark removed"})
}

func (h *BookmarkHandler) Check(c *gin.Context) {
	bookmarked, err := h.Store.IsBookmarked(context.Background(), currentUserID(c), c.Param("id"))
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

func (h *BookmarkHandler) List(c *gin.Context) {
	ids, err := h.Store.List(context.Background(), currentUserID(c))
	if err != nil {
		c.JSON(common.HTTPStatusFromError(err), gin.H{"error": err.Error()})
		return
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	c.JSON(http.StatusOK, gin.H{"bookmarks": out})
}
