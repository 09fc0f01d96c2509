package community

import (
	"time"

	"gorm.io/gorm"
)

type Playlist struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"size:120;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`

	Items []PlaylistItem `gorm:"foreignKey:PlaylistID" json:"items,omitempty"`
}

// PlaylistItem references a catalog album, or carries just a free-text track
// name when AlbumID is nil. Positions default to 1 and may repeat; they only
// affect display order.
type PlaylistItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	PlaylistID uint    `gorm:"not null;index" json:"playlist_id"`
	AlbumID    *uint   `json:"album_id,omitempty"`
	TrackName  *string `gorm:"size:150" json:"track_name,omitempty"`
	Position   int     `gorm:"not null;default:1" json:"position"`
}

// CreatePlaylist makes a playlist owned by userID.
func CreatePlaylist(db *gorm.DB, userID uint, name string) (*Playlist, error) {
	playlist := Playlist{UserID: userID, Name: name}
	if err := db.Create(&playlist).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

// FindPlaylistScoped fetches a playlist by id only when it belongs to
// userID. A playlist owned by someone else comes back as
// gorm.ErrRecordNotFound, never as a permission error.
func FindPlaylistScoped(db *gorm.DB, userID, playlistID uint) (*Playlist, error) {
	var playlist Playlist
	err := db.Where("id = ? AND user_id = ?", playlistID, userID).First(&playlist).Error
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// DeletePlaylist removes an owned playlist and its items in one transaction.
func DeletePlaylist(db *gorm.DB, userID, playlistID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		playlist, err := FindPlaylistScoped(tx, userID, playlistID)
		if err != nil {
			return err
		}
		if err := tx.Where("playlist_id = ?", playlist.ID).Delete(&PlaylistItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(playlist).Error
	})
}

// AddPlaylistItem appends an entry to an owned playlist. Position falls back
// to 1 when not supplied. Album existence must be checked by the caller when
// albumID is set.
func AddPlaylistItem(db *gorm.DB, userID, playlistID uint, albumID *uint, trackName *string, position int) (*PlaylistItem, error) {
	if _, err := FindPlaylistScoped(db, userID, playlistID); err != nil {
		return nil, err
	}
	if position < 1 {
		position = 1
	}
	item := PlaylistItem{
		PlaylistID: playlistID,
		AlbumID:    albumID,
		TrackName:  trackName,
		Position:   position,
	}
	if err := db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// RemovePlaylistItem deletes an item, scoped through the owning playlist.
func RemovePlaylistItem(db *gorm.DB, userID, playlistID, itemID uint) error {
	if _, err := FindPlaylistScoped(db, userID, playlistID); err != nil {
		return err
	}
	res := db.Where("id = ? AND playlist_id = ?", itemID, playlistID).Delete(&PlaylistItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PlaylistsByUser lists a user's playlists with items, position order.
func PlaylistsByUser(db *gorm.DB, userID uint) ([]Playlist, error) {
	var playlists []Playlist
	err := db.Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		Order("created_at DESC").
		Find(&playlists).Error
	return playlists, err
}
