package community

import (
	"net/http"

	"rock-music-hub/database"
	"rock-music-hub/internal/domain/catalog"
	"rock-music-hub/internal/domain/community"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /playlists — the actor's playlists with items.
func ListPlaylists(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	playlists, err := community.PlaylistsByUser(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load playlists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"playlists": playlists})
}

// POST /playlists
func CreatePlaylist(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name" binding:"required,max=120"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	playlist, err := community.CreatePlaylist(database.DB, userID, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create playlist"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"playlist": playlist, "message": "Playlist created.", "category": "success"})
}

// DELETE /playlists/:id — scoped to the owner; someone else's playlist is a 404.
func DeletePlaylist(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := community.DeletePlaylist(database.DB, userID, playlistID); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Playlist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete playlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Playlist deleted.", "category": "info"})
}

// POST /playlists/:id/items
func AddPlaylistItem(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		AlbumID   *uint   `json:"album_id"`
		TrackName *string `json:"track_name" binding:"omitempty,max=150"`
		Position  int     `json:"position" binding:"omitempty,min=1,max=500"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AlbumID == nil && (req.TrackName == nil || *req.TrackName == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide an album or a track name"})
		return
	}
	if req.AlbumID != nil {
		if _, err := catalog.FindAlbum(database.DB, *req.AlbumID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
			return
		}
	}

	item, err := community.AddPlaylistItem(database.DB, userID, playlistID, req.AlbumID, req.TrackName, req.Position)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Playlist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to playlist"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item, "message": "Album added to playlist.", "category": "success"})
}

// DELETE /playlists/:id/items/:itemID
func RemovePlaylistItem(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}
	if err := community.RemovePlaylistItem(database.DB, userID, playlistID, itemID); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Playlist item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed.", "category": "info"})
}
