package routes

import (
	adminapi "rock-music-hub/internal/api/admin"
	authapi "rock-music-hub/internal/api/auth"
	catalogapi "rock-music-hub/internal/api/catalog"
	communityapi "rock-music-hub/internal/api/community"
	usersapi "rock-music-hub/internal/api/users"
	"rock-music-hub/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public catalog browsing, anonymous.
	r.GET("/", catalogapi.Home)
	r.GET("/bands", catalogapi.ListBands)
	r.GET("/bands/:id", catalogapi.GetBand)
	r.GET("/albums", catalogapi.ListAlbums)
	r.GET("/albums/:id", catalogapi.GetAlbum)
	r.GET("/events", catalogapi.ListEvents)
	r.GET("/events/:id", catalogapi.GetEvent)

	public := r.Group("/auth")
	public.Use(middleware.SanitizeInputMiddleware())
	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)

	// Authenticated community features.
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.SanitizeInputMiddleware())
	auth.GET("/me", usersapi.GetProfile)
	auth.PUT("/me", usersapi.UpdateProfile)
	auth.POST("/auth/change-password", authapi.ChangePassword)

	auth.POST("/favorites/bands/:id", communityapi.ToggleFavoriteBand)
	auth.POST("/favorites/albums/:id", communityapi.ToggleFavoriteAlbum)

	auth.GET("/playlists", communityapi.ListPlaylists)
	auth.POST("/playlists", communityapi.CreatePlaylist)
	auth.DELETE("/playlists/:id", communityapi.DeletePlaylist)
	auth.POST("/playlists/:id/items", communityapi.AddPlaylistItem)
	auth.DELETE("/playlists/:id/items/:itemID", communityapi.RemovePlaylistItem)

	auth.POST("/comments/:kind/:id", communityapi.PostComment)
	auth.DELETE("/comments/:id", communityapi.DeleteComment)

	// Catalog mutations and moderation, admin only.
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin(), middleware.SanitizeInputMiddleware())
	admin.GET("/dashboard", adminapi.Dashboard)

	admin.POST("/bands", catalogapi.CreateBand)
	admin.PUT("/bands/:id", catalogapi.UpdateBand)
	admin.DELETE("/bands/:id", catalogapi.DeleteBand)

	admin.POST("/albums", catalogapi.CreateAlbum)
	admin.PUT("/albums/:id", catalogapi.UpdateAlbum)
	admin.DELETE("/albums/:id", catalogapi.DeleteAlbum)

	admin.POST("/events", catalogapi.CreateEvent)
	admin.PUT("/events/:id", catalogapi.UpdateEvent)
	admin.DELETE("/events/:id", catalogapi.DeleteEvent)

	admin.POST("/comments/:id/toggle", adminapi.ToggleCommentHidden)
	admin.POST("/users/:id/toggle-admin", adminapi.ToggleAdmin)
	admin.DELETE("/users/:id", adminapi.DeleteUser)
}
