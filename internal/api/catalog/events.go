package catalog

import (
	"net/http"
	"time"

	"rock-music-hub/database"
	"rock-music-hub/internal/domain/catalog"
	"rock-music-hub/internal/domain/community"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /events?city=&after=2025-01-01
func ListEvents(c *gin.Context) {
	var after *time.Time
	if raw := c.Query("after"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid after date"})
			return
		}
		after = &parsed
	}
	events, err := catalog.FilterEvents(database.DB, c.Query("city"), after)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// GET /events/:id
func GetEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	event, err := catalog.FindEvent(database.DB, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	comments, err := community.VisibleComments(database.DB, community.TargetEvent, event.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load comments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event, "comments": comments})
}

// GET / — featured bands, recent albums, next events.
func Home(c *gin.Context) {
	bands, err := catalog.FeaturedBands(database.DB, 4)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load home feed"})
		return
	}
	albums, err := catalog.RecentAlbums(database.DB, 6)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load home feed"})
		return
	}
	events, err := catalog.UpcomingEvents(database.DB, 3)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load home feed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"featured_bands":  bands,
		"featured_albums": albums,
		"events":          events,
	})
}

// POST /admin/events
func CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	event, err := catalog.CreateEvent(database.DB, catalog.EventInput{
		Title:       req.Title,
		Venue:       req.Venue,
		City:        req.City,
		EventDate:   req.EventDate,
		Description: req.Description,
		LinkURL:     req.LinkURL,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"event": event, "message": "Event created.", "category": "success"})
}

// PUT /admin/events/:id
func UpdateEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	event, err := catalog.UpdateEvent(database.DB, id, catalog.EventInput{
		Title:       req.Title,
		Venue:       req.Venue,
		City:        req.City,
		EventDate:   req.EventDate,
		Description: req.Description,
		LinkURL:     req.LinkURL,
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event, "message": "Event updated.", "category": "success"})
}

// DELETE /admin/events/:id
func DeleteEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := catalog.DeleteEvent(database.DB, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted.", "category": "info"})
}
