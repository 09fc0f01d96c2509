package catalog

import (
	"net/http"
	"strconv"

	"rock-music-hub/database"
	"rock-music-hub/internal/domain/catalog"
	"rock-music-hub/internal/domain/community"

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

// GET /bands?query=&country=
func ListBands(c *gin.Context) {
	bands, err := catalog.FilterBands(database.DB, c.Query("query"), c.Query("country"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bands"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bands": bands})
}

// GET /bands/:id — the band, its albums and its visible comments.
func GetBand(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	band, err := catalog.FindBand(database.DB, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Band not found"})
		return
	}
	comments, err := community.VisibleComments(database.DB, community.TargetBand, band.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load comments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"band": band, "comments": comments})
}

// POST /admin/bands
func CreateBand(c *gin.Context) {
	var req BandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	band, err := catalog.CreateBand(database.DB, catalog.BandInput{
		Name:        req.Name,
		Country:     req.Country,
		FormedYear:  req.FormedYear,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create band"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"band": band, "message": "Band created.", "category": "success"})
}

// PUT /admin/bands/:id — full replace of every editable field.
func UpdateBand(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req BandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	band, err := catalog.UpdateBand(database.DB, id, catalog.BandInput{
		Name:        req.Name,
		Country:     req.Country,
		FormedYear:  req.FormedYear,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if err == gorm.ErrRecordNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "Failed to update band"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"band": band, "message": "Band updated.", "category": "success"})
}

// DELETE /admin/bands/:id — cascades to albums, favorites and comments.
func DeleteBand(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := catalog.DeleteBand(database.DB, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Band not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete band"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Band deleted.", "category": "info"})
}
