package database_test

import (
	"testing"

	"rock-music-hub/database"
	"rock-music-hub/internal/domain/catalog"
	"rock-music-hub/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testAdmin = database.AdminCredentials{
	Username: "admin",
	Email:    "Admin@Example.com",
	Password: "Admin123!",
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	return db
}

func TestSeedPopulatesEmptyStore(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, database.Seed(db, testAdmin))

	admin, err := users.FindByEmail(db, "admin@example.com")
	require.NoError(t, err, "email stored lowercase")
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, "admin", admin.Username)
	assert.True(t, admin.CheckPassword("Admin123!"))

	var bands, albums, events int64
	db.Model(&catalog.Band{}).Count(&bands)
	db.Model(&catalog.Album{}).Count(&albums)
	db.Model(&catalog.Event{}).Count(&events)
	assert.NotZero(t, bands)
	assert.NotZero(t, albums)
	assert.NotZero(t, events)

	// Every seeded album points at a seeded band.
	var orphans int64
	db.Model(&catalog.Album{}).
		Where("band_id NOT IN (?)", db.Model(&catalog.Band{}).Select("id")).
		Count(&orphans)
	assert.Zero(t, orphans)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, database.Seed(db, testAdmin))

	var usersBefore, bandsBefore, albumsBefore, eventsBefore int64
	db.Model(&users.User{}).Count(&usersBefore)
	db.Model(&catalog.Band{}).Count(&bandsBefore)
	db.Model(&catalog.Album{}).Count(&albumsBefore)
	db.Model(&catalog.Event{}).Count(&eventsBefore)

	require.NoError(t, database.Seed(db, testAdmin))

	var usersAfter, bandsAfter, albumsAfter, eventsAfter int64
	db.Model(&users.User{}).Count(&usersAfter)
	db.Model(&catalog.Band{}).Count(&bandsAfter)
	db.Model(&catalog.Album{}).Count(&albumsAfter)
	db.Model(&catalog.Event{}).Count(&eventsAfter)

	assert.Equal(t, usersBefore, usersAfter)
	assert.Equal(t, bandsBefore, bandsAfter)
	assert.Equal(t, albumsBefore, albumsAfter)
	assert.Equal(t, eventsBefore, eventsAfter)
}

func TestSeedSkippedWhenAnyUserExists(t *testing.T) {
	db := openTestDB(t)

	existing := users.User{Username: "alice", Email: "alice@x.com"}
	require.NoError(t, existing.SetPassword("Secret123"))
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, database.Seed(db, testAdmin))

	var userCount, bandCount int64
	db.Model(&users.User{}).Count(&userCount)
	db.Model(&catalog.Band{}).Count(&bandCount)
	assert.EqualValues(t, 1, userCount, "no admin created")
	assert.Zero(t, bandCount, "no catalog seeded")
}
