package community

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteBand struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_fav_user_band" json:"user_id"`
	BandID uint `gorm:"not null;uniqueIndex:idx_fav_user_band" json:"band_id"`
}

type FavoriteAlbum struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserID  uint `gorm:"not null;uniqueIndex:idx_fav_user_album" json:"user_id"`
	AlbumID uint `gorm:"not null;uniqueIndex:idx_fav_user_album" json:"album_id"`
}

// ToggleFavoriteBand flips the (user, band) favorite row and reports whether
// it now exists. The delete-then-insert runs in one transaction and the
// insert ignores a conflicting row, so two concurrent toggles for the same
// pair cannot trip the unique index.
func ToggleFavoriteBand(db *gorm.DB, userID, bandID uint) (favorited bool, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND band_id = ?", userID, bandID).Delete(&FavoriteBand{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			favorited = false
			return nil
		}
		favorited = true
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&FavoriteBand{UserID: userID, BandID: bandID}).Error
	})
	return favorited, err
}

// ToggleFavoriteAlbum is the album counterpart of ToggleFavoriteBand.
func ToggleFavoriteAlbum(db *gorm.DB, userID, albumID uint) (favorited bool, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND album_id = ?", userID, albumID).Delete(&FavoriteAlbum{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			favorited = false
			return nil
		}
		favorited = true
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&FavoriteAlbum{UserID: userID, AlbumID: albumID}).Error
	})
	return favorited, err
}

func IsFavoriteBand(db *gorm.DB, userID, bandID uint) (bool, error) {
	var count int64
	err := db.Model(&FavoriteBand{}).
		Where("user_id = ? AND band_id = ?", userID, bandID).
		Count(&count).Error
	return count > 0, err
}

func IsFavoriteAlbum(db *gorm.DB, userID, albumID uint) (bool, error) {
	var count int64
	err := db.Model(&FavoriteAlbum{}).
		Where("user_id = ? AND album_id = ?", userID, albumID).
		Count(&count).Error
	return count > 0, err
}

// FavoriteBandIDs returns the band ids a user has favorited.
func FavoriteBandIDs(db *gorm.DB, userID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&FavoriteBand{}).Where("user_id = ?", userID).Pluck("band_id", &ids).Error
	return ids, err
}

// FavoriteAlbumIDs returns the album ids a user has favorited.
func FavoriteAlbumIDs(db *gorm.DB, userID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&FavoriteAlbum{}).Where("user_id = ?", userID).Pluck("album_id", &ids).Error
	return ids, err
}
