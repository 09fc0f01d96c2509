package catalog

import (
	"net/http"

	"rock-music-hub/database"
	"rock-music-hub/internal/domain/catalog"
	"rock-music-hub/internal/domain/community"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /albums?query=&genre=
func ListAlbums(c *gin.Context) {
	albums, err := catalog.FilterAlbums(database.DB, c.Query("query"), c.Query("genre"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load albums"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"albums": albums})
}

// GET /albums/:id
func GetAlbum(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	album, err := catalog.FindAlbum(database.DB, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
		return
	}
	comments, err := community.VisibleComments(database.DB, community.TargetAlbum, album.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load comments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"album": album, "comments": comments})
}

// POST /admin/albums
func CreateAlbum(c *gin.Context) {
	var req AlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	album, err := catalog.CreateAlbum(database.DB, catalog.AlbumInput{
		BandID:      req.BandID,
		Title:       req.Title,
		ReleaseYear: req.ReleaseYear,
		Genre:       req.Genre,
		Description: req.Description,
		CoverURL:    req.CoverURL,
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Band not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create album"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"album": album, "message": "Album created.", "category": "success"})
}

// PUT /admin/albums/:id
func UpdateAlbum(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req AlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	album, err := catalog.UpdateAlbum(database.DB, id, catalog.AlbumInput{
		BandID:      req.BandID,
		Title:       req.Title,
		ReleaseYear: req.ReleaseYear,
		Genre:       req.Genre,
		Description: req.Description,
		CoverURL:    req.CoverURL,
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Album or band not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update album"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"album": album, "message": "Album updated.", "category": "success"})
}

// DELETE /admin/albums/:id
func DeleteAlbum(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := catalog.DeleteAlbum(database.DB, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete album"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Album deleted.", "category": "info"})
}
