package database

import (
	"strings"

	"rock-music-hub/internal/domain/catalog"
	"rock-music-hub/internal/domain/community"
	"rock-music-hub/internal/domain/users"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the store behind the connection string: postgres for
// postgres:// style DSNs, otherwise a sqlite file (":memory:" included), and
// migrates the schema.
func Connect(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	isSQLite := false
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
		isSQLite = true
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if isSQLite {
		// sqlite is single-writer, and a pooled ":memory:" DSN would hand
		// every connection its own empty database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the schema: the unique indexes on usernames, emails and
// both favorite pairs are the storage-level invariants everything else
// leans on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&catalog.Band{},
		&catalog.Album{},
		&catalog.Event{},
		&community.Playlist{},
		&community.PlaylistItem{},
		&community.FavoriteBand{},
		&community.FavoriteAlbum{},
		&community.Comment{},
	)
}

// InitDB wires the process-wide handle used by the HTTP layer.
func InitDB(dsn string) {
	db, err := Connect(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	DB = db
	log.Info().Msg("Connected and migrated successfully")
}
