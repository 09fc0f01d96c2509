package main

import (
	"os"
	"time"

	"rock-music-hub/config"
	"rock-music-hub/database"
	routes "rock-music-hub/internal/app/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadEnv()
	database.InitDB(config.DB_URL)

	err := database.Seed(database.DB, database.AdminCredentials{
		Username: config.ADMIN_USERNAME,
		Email:    config.ADMIN_EMAIL,
		Password: config.ADMIN_PASSWORD,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Seed failed")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	log.Info().Str("port", config.PORT).Msg("Starting server")
	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatal().Err(err).Msg("Server exited")
	}
}
