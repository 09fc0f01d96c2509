package community

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// TargetKind tags the entity a comment is attached to. The pair
// (TargetKind, TargetID) is not backed by a foreign key since the referenced
// table varies; integrity is enforced by the callers.
type TargetKind string

const (
	TargetBand  TargetKind = "band"
	TargetAlbum TargetKind = "album"
	TargetEvent TargetKind = "event"
)

func ParseTargetKind(s string) (TargetKind, error) {
	switch TargetKind(s) {
	case TargetBand, TargetAlbum, TargetEvent:
		return TargetKind(s), nil
	}
	return "", fmt.Errorf("community: unknown comment target kind %q", s)
}

type Comment struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	TargetKind TargetKind `gorm:"size:20;not null;index:idx_comments_target" json:"target_kind"`
	TargetID   uint       `gorm:"not null;index:idx_comments_target" json:"target_id"`
	Body       string     `gorm:"type:text;not null" json:"body"`
	Hidden     bool       `gorm:"not null;default:false" json:"hidden"`

	CreatedAt time.Time `json:"created_at"`
}

// ErrNotCommentAuthor marks a comment deletion attempt by someone who is
// neither the author nor an administrator.
var ErrNotCommentAuthor = errors.New("community: not the comment author")

// PostComment attaches a comment to the given target on behalf of userID.
// The caller must have verified that the target row exists.
func PostComment(db *gorm.DB, userID uint, target TargetKind, targetID uint, body string) (*Comment, error) {
	comment := Comment{
		UserID:     userID,
		TargetKind: target,
		TargetID:   targetID,
		Body:       body,
	}
	if err := db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment for its author, or for an administrator
// acting on anyone's comment.
func DeleteComment(db *gorm.DB, actorID uint, actorIsAdmin bool, commentID uint) error {
	var comment Comment
	if err := db.First(&comment, commentID).Error; err != nil {
		return err
	}
	if comment.UserID != actorID && !actorIsAdmin {
		return ErrNotCommentAuthor
	}
	return db.Delete(&comment).Error
}

// ToggleCommentHidden flips the moderation flag. Hidden comments stay in
// storage and keep showing up in admin listings.
func ToggleCommentHidden(db *gorm.DB, commentID uint) (*Comment, error) {
	var comment Comment
	if err := db.First(&comment, commentID).Error; err != nil {
		return nil, err
	}
	comment.Hidden = !comment.Hidden
	if err := db.Model(&comment).Update("hidden", comment.Hidden).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// VisibleComments lists the non-hidden comments of a target, newest first.
func VisibleComments(db *gorm.DB, target TargetKind, targetID uint) ([]Comment, error) {
	var comments []Comment
	err := db.Where("target_kind = ? AND target_id = ? AND hidden = ?", target, targetID, false).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// CommentsByUser lists everything a user has posted, newest first.
func CommentsByUser(db *gorm.DB, userID uint) ([]Comment, error) {
	var comments []Comment
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// AllComments is the moderation view: every comment, hidden ones included.
func AllComments(db *gorm.DB) ([]Comment, error) {
	var comments []Comment
	err := db.Order("created_at DESC").Find(&comments).Error
	return comments, err
}

// DeleteCommentsFor sweeps the comments of a deleted target so the
// polymorphic pair never dangles.
func DeleteCommentsFor(db *gorm.DB, target TargetKind, targetIDs ...uint) error {
	if len(targetIDs) == 0 {
		return nil
	}
	return db.Where("target_kind = ? AND target_id IN ?", target, targetIDs).
		Delete(&Comment{}).Error
}
