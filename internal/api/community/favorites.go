package community

import (
	"net/http"
	"strconv"

	"rock-music-hub/database"
	"rock-music-hub/internal/domain/catalog"
	"rock-music-hub/internal/domain/community"

	"github.com/gin-gonic/gin"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return uint(id), true
}

// POST /favorites/bands/:id — one endpoint flips the favorite both ways.
func ToggleFavoriteBand(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	bandID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := catalog.FindBand(database.DB, bandID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Band not found"})
		return
	}

	favorited, err := community.ToggleFavoriteBand(database.DB, userID, bandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorites"})
		return
	}
	if favorited {
		c.JSON(http.StatusOK, gin.H{"favorited": true, "message": "Band added to favorites.", "category": "success"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": false, "message": "Band removed from favorites.", "category": "info"})
}

// POST /favorites/albums/:id
func ToggleFavoriteAlbum(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	albumID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := catalog.FindAlbum(database.DB, albumID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
		return
	}

	favorited, err := community.ToggleFavoriteAlbum(database.DB, userID, albumID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorites"})
		return
	}
	if favorited {
		c.JSON(http.StatusOK, gin.H{"favorited": true, "message": "Album added to favorites.", "category": "success"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": false, "message": "Album removed from favorites.", "category": "info"})
}
