package community

import (
	"errors"
	"net/http"

	"rock-music-hub/database"
	"rock-music-hub/internal/domain/catalog"
	"rock-music-hub/internal/domain/community"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /comments/:kind/:id — kind is band, album or event.
func PostComment(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	kind, err := community.ParseTargetKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Body string `json:"body" binding:"required,min=5,max=500"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The (kind, id) pair has no storage-level foreign key; the existence
	// check here is what keeps it honest.
	exists, err := catalog.TargetExists(database.DB, kind, targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check comment target"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment target not found"})
		return
	}

	comment, err := community.PostComment(database.DB, userID, kind, targetID, req.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post comment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment, "message": "Comment posted.", "category": "success"})
}

// DELETE /comments/:id — author or admin.
func DeleteComment(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	err := community.DeleteComment(database.DB, userID, c.GetBool("is_admin"), commentID)
	if err != nil {
		if errors.Is(err, community.ErrNotCommentAuthor) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You don't have permission to delete this comment.", "category": "danger"})
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted.", "category": "info"})
}
