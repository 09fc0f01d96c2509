package catalog_test

import (
	"database/sql"
	"testing"
	"time"

	"rock-music-hub/database"
	"rock-music-hub/internal/domain/catalog"
	"rock-music-hub/internal/domain/community"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	return db
}

func createBand(t *testing.T, db *gorm.DB, name, country string) *catalog.Band {
	t.Helper()
	band, err := catalog.CreateBand(db, catalog.BandInput{
		Name:        name,
		Country:     country,
		FormedYear:  1970,
		Description: "A band that left a mark on the history of rock music.",
	})
	require.NoError(t, err)
	return band
}

func createAlbum(t *testing.T, db *gorm.DB, bandID uint, title, genre string, year int) *catalog.Album {
	t.Helper()
	album, err := catalog.CreateAlbum(db, catalog.AlbumInput{
		BandID:      bandID,
		Title:       title,
		ReleaseYear: year,
		Genre:       genre,
		Description: "A record that shaped the sound of its entire generation.",
	})
	require.NoError(t, err)
	return album
}

func TestFilterBandsCaseInsensitiveSubstring(t *testing.T) {
	db := openTestDB(t)
	createBand(t, db, "Queen", "United Kingdom")
	createBand(t, db, "Nirvana", "United States")

	bands, err := catalog.FilterBands(db, "quee", "")
	require.NoError(t, err)
	require.Len(t, bands, 1)
	assert.Equal(t, "Queen", bands[0].Name)

	bands, err = catalog.FilterBands(db, "", "united")
	require.NoError(t, err)
	assert.Len(t, bands, 2)

	bands, err = catalog.FilterBands(db, "", "kingdom")
	require.NoError(t, err)
	require.Len(t, bands, 1)
	assert.Equal(t, "Queen", bands[0].Name)
}

func TestFilterBandsOrderedByName(t *testing.T) {
	db := openTestDB(t)
	createBand(t, db, "Nirvana", "United States")
	createBand(t, db, "Arctic Monkeys", "United Kingdom")
	createBand(t, db, "Queen", "United Kingdom")

	bands, err := catalog.FilterBands(db, "", "")
	require.NoError(t, err)
	require.Len(t, bands, 3)
	assert.Equal(t, "Arctic Monkeys", bands[0].Name)
	assert.Equal(t, "Nirvana", bands[1].Name)
	assert.Equal(t, "Queen", bands[2].Name)
}

func TestFilterAlbumsByTitleAndGenre(t *testing.T) {
	db := openTestDB(t)
	queen := createBand(t, db, "Queen", "United Kingdom")
	nirvana := createBand(t, db, "Nirvana", "United States")
	createAlbum(t, db, queen.ID, "A Night at the Opera", "Classic Rock", 1975)
	createAlbum(t, db, nirvana.ID, "Nevermind", "Grunge", 1991)

	albums, err := catalog.FilterAlbums(db, "opera", "")
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "A Night at the Opera", albums[0].Title)

	albums, err = catalog.FilterAlbums(db, "", "grunge")
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "Nevermind", albums[0].Title)

	// Newest release first.
	albums, err = catalog.FilterAlbums(db, "", "")
	require.NoError(t, err)
	require.Len(t, albums, 2)
	assert.Equal(t, "Nevermind", albums[0].Title)
}

func TestFilterEventsByCityAndDate(t *testing.T) {
	db := openTestDB(t)

	_, err := catalog.CreateEvent(db, catalog.EventInput{
		Title: "Grunge & Grit", Venue: "The Crocodile", City: "Seattle",
		EventDate:   "2025-04-02",
		Description: "A night dedicated to the raw energy of 90s Seattle bands.",
	})
	require.NoError(t, err)
	_, err = catalog.CreateEvent(db, catalog.EventInput{
		Title: "Stadium Singalong", Venue: "Wembley Stadium", City: "London",
		EventDate:   "2025-09-05",
		Description: "A massive singalong celebrating iconic rock anthems.",
	})
	require.NoError(t, err)

	events, err := catalog.FilterEvents(db, "seat", nil)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Grunge & Grit", events[0].Title)

	after := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	events, err = catalog.FilterEvents(db, "", &after)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Stadium Singalong", events[0].Title)
}

func TestEventDateBounds(t *testing.T) {
	_, err := catalog.ParseEventDate("1949-12-31")
	assert.Error(t, err)
	_, err = catalog.ParseEventDate("not-a-date")
	assert.Error(t, err)
	parsed, err := catalog.ParseEventDate("2025-04-02")
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
}

func TestUpdateNormalizesEmptyOptionalFields(t *testing.T) {
	db := openTestDB(t)
	band, err := catalog.CreateBand(db, catalog.BandInput{
		Name:        "Queen",
		Country:     "United Kingdom",
		FormedYear:  1970,
		Description: "Theatrical rock legends blending operatic ambition with stadium anthems.",
		ImageURL:    "https://example.com/queen.jpg",
	})
	require.NoError(t, err)
	require.NotNil(t, band.ImageURL)

	updated, err := catalog.UpdateBand(db, band.ID, catalog.BandInput{
		Name:        "Queen",
		Country:     "United Kingdom",
		FormedYear:  1970,
		Description: "Theatrical rock legends blending operatic ambition with stadium anthems.",
		ImageURL:    "",
	})
	require.NoError(t, err)
	assert.Nil(t, updated.ImageURL, "empty optional field stored as absence, not empty string")

	var raw []sql.NullString
	require.NoError(t, db.Model(&catalog.Band{}).Where("id = ?", band.ID).Pluck("image_url", &raw).Error)
	require.Len(t, raw, 1)
	assert.False(t, raw[0].Valid)
}

func TestCreateAlbumRequiresBand(t *testing.T) {
	db := openTestDB(t)
	_, err := catalog.CreateAlbum(db, catalog.AlbumInput{
		BandID:      999,
		Title:       "Ghost Album",
		ReleaseYear: 2000,
		Genre:       "Rock",
		Description: "An album that references a band which does not exist at all.",
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteBandCascades(t *testing.T) {
	db := openTestDB(t)
	queen := createBand(t, db, "Queen", "United Kingdom")
	nirvana := createBand(t, db, "Nirvana", "United States")
	opera := createAlbum(t, db, queen.ID, "A Night at the Opera", "Classic Rock", 1975)
	news := createAlbum(t, db, queen.ID, "News of the World", "Classic Rock", 1977)
	nevermind := createAlbum(t, db, nirvana.ID, "Nevermind", "Grunge", 1991)

	// Hang community records off the doomed band and its albums.
	_, err := community.ToggleFavoriteBand(db, 1, queen.ID)
	require.NoError(t, err)
	_, err = community.ToggleFavoriteAlbum(db, 1, opera.ID)
	require.NoError(t, err)
	_, err = community.ToggleFavoriteAlbum(db, 2, news.ID)
	require.NoError(t, err)
	_, err = community.ToggleFavoriteAlbum(db, 1, nevermind.ID)
	require.NoError(t, err)

	playlist, err := community.CreatePlaylist(db, 1, "Rock Classics")
	require.NoError(t, err)
	_, err = community.AddPlaylistItem(db, 1, playlist.ID, &opera.ID, nil, 1)
	require.NoError(t, err)

	_, err = community.PostComment(db, 1, community.TargetBand, queen.ID, "legends")
	require.NoError(t, err)
	_, err = community.PostComment(db, 1, community.TargetAlbum, opera.ID, "a masterpiece")
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteBand(db, queen.ID))

	var count int64
	db.Model(&catalog.Album{}).Where("band_id = ?", queen.ID).Count(&count)
	assert.Zero(t, count, "all albums of the band removed")
	db.Model(&community.FavoriteBand{}).Where("band_id = ?", queen.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&community.FavoriteAlbum{}).Where("album_id IN ?", []uint{opera.ID, news.ID}).Count(&count)
	assert.Zero(t, count, "favorites of the band's albums removed")
	db.Model(&community.PlaylistItem{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&community.Comment{}).Count(&count)
	assert.Zero(t, count, "comments targeting the band and its albums swept")

	// The other band is untouched.
	_, err = catalog.FindAlbum(db, nevermind.ID)
	require.NoError(t, err)
	db.Model(&community.FavoriteAlbum{}).Where("album_id = ?", nevermind.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDeleteAlbumCascades(t *testing.T) {
	db := openTestDB(t)
	queen := createBand(t, db, "Queen", "United Kingdom")
	opera := createAlbum(t, db, queen.ID, "A Night at the Opera", "Classic Rock", 1975)

	_, err := community.ToggleFavoriteAlbum(db, 1, opera.ID)
	require.NoError(t, err)
	playlist, err := community.CreatePlaylist(db, 1, "Mix")
	require.NoError(t, err)
	_, err = community.AddPlaylistItem(db, 1, playlist.ID, &opera.ID, nil, 1)
	require.NoError(t, err)
	_, err = community.PostComment(db, 1, community.TargetAlbum, opera.ID, "a masterpiece")
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteAlbum(db, opera.ID))

	_, err = catalog.FindBand(db, queen.ID)
	require.NoError(t, err, "the band survives its album")

	var count int64
	db.Model(&community.FavoriteAlbum{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&community.PlaylistItem{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&community.Comment{}).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteEventSweepsComments(t *testing.T) {
	db := openTestDB(t)
	event, err := catalog.CreateEvent(db, catalog.EventInput{
		Title: "Grunge & Grit", Venue: "The Crocodile", City: "Seattle",
		EventDate:   "2025-04-02",
		Description: "A night dedicated to the raw energy of 90s Seattle bands.",
	})
	require.NoError(t, err)

	_, err = community.PostComment(db, 1, community.TargetEvent, event.ID, "see you there")
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteEvent(db, event.ID))

	var count int64
	db.Model(&community.Comment{}).Count(&count)
	assert.Zero(t, count)
	_, err = catalog.FindEvent(db, event.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTargetExists(t *testing.T) {
	db := openTestDB(t)
	queen := createBand(t, db, "Queen", "United Kingdom")

	exists, err := catalog.TargetExists(db, community.TargetBand, queen.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = catalog.TargetExists(db, community.TargetAlbum, queen.ID)
	require.NoError(t, err)
	assert.False(t, exists, "same id, different kind")

	exists, err = catalog.TargetExists(db, community.TargetEvent, 12345)
	require.NoError(t, err)
	assert.False(t, exists)
}
