package admin

import (
	"errors"
	"net/http"
	"strconv"

	"rock-music-hub/database"
	"rock-music-hub/internal/domain/catalog"
	"rock-music-hub/internal/domain/community"
	"rock-music-hub/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return uint(id), true
}

// GET /admin/dashboard — every catalog entity, every comment (hidden ones
// included) and every user.
func Dashboard(c *gin.Context) {
	bands, err := catalog.FilterBands(database.DB, "", "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	var albums []catalog.Album
	if err := database.DB.Preload("Band").Order("title ASC").Find(&albums).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	events, err := catalog.FilterEvents(database.DB, "", nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	comments, err := community.AllComments(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	var allUsers []users.User
	if err := database.DB.Order("created_at DESC").Find(&allUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bands":    bands,
		"albums":   albums,
		"events":   events,
		"comments": comments,
		"users":    allUsers,
	})
}

// POST /admin/comments/:id/toggle — flips the moderation flag.
func ToggleCommentHidden(c *gin.Context) {
	commentID, ok := pathID(c)
	if !ok {
		return
	}
	comment, err := community.ToggleCommentHidden(database.DB, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update comment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment, "message": "Comment visibility updated.", "category": "success"})
}

// POST /admin/users/:id/toggle-admin — an admin may never flip their own
// flag, so the acting identity goes into the domain call.
func ToggleAdmin(c *gin.Context) {
	targetID, ok := pathID(c)
	if !ok {
		return
	}
	actorID := c.GetUint("user_id")

	user, err := users.ToggleAdmin(database.DB, actorID, targetID)
	if err != nil {
		if errors.Is(err, users.ErrSelfDemotion) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot change your own admin status.", "category": "warning"})
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "message": "User permissions updated.", "category": "success"})
}

// DELETE /admin/users/:id — removes the account and everything it owns.
func DeleteUser(c *gin.Context) {
	targetID, ok := pathID(c)
	if !ok {
		return
	}
	if c.GetUint("user_id") == targetID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot delete your own account.", "category": "warning"})
		return
	}
	if _, err := users.FindByID(database.DB, targetID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err := users.Delete(database.DB, targetID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted.", "category": "info"})
}
