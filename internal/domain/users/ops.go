package users

import (
	"errors"

	"rock-music-hub/internal/domain/community"

	"gorm.io/gorm"
)

// ErrSelfDemotion is returned when an administrator tries to flip their own
// admin flag.
var ErrSelfDemotion = errors.New("users: cannot change own admin status")

// ToggleAdmin flips the admin flag of the target user on behalf of actorID.
// The caller is responsible for the admin-only guard; the self-protection
// rule is enforced here regardless of the actor's role.
func ToggleAdmin(db *gorm.DB, actorID, targetID uint) (*User, error) {
	if actorID == targetID {
		return nil, ErrSelfDemotion
	}

	var target User
	if err := db.First(&target, targetID).Error; err != nil {
		return nil, err
	}

	target.IsAdmin = !target.IsAdmin
	if err := db.Model(&target).Update("is_admin", target.IsAdmin).Error; err != nil {
		return nil, err
	}
	return &target, nil
}

// Rename updates the username, keeping it unique.
func Rename(db *gorm.DB, userID uint, username string) error {
	var count int64
	err := db.Model(&User{}).
		Where("username = ? AND id <> ?", username, userID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return gorm.ErrDuplicatedKey
	}
	return db.Model(&User{}).Where("id = ?", userID).Update("username", username).Error
}

// Delete removes the user together with everything they own: playlists and
// their items, comments, and both favorite join tables. One transaction.
func Delete(db *gorm.DB, userID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var playlistIDs []uint
		if err := tx.Model(&community.Playlist{}).
			Where("user_id = ?", userID).
			Pluck("id", &playlistIDs).Error; err != nil {
			return err
		}
		if len(playlistIDs) > 0 {
			if err := tx.Where("playlist_id IN ?", playlistIDs).
				Delete(&community.PlaylistItem{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&community.Playlist{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&community.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&community.FavoriteBand{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&community.FavoriteAlbum{}).Error; err != nil {
			return err
		}
		return tx.Delete(&User{}, userID).Error
	})
}
