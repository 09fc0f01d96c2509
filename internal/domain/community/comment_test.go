package community_test

import (
	"testing"

	"rock-music-hub/internal/domain/community"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestParseTargetKind(t *testing.T) {
	for _, valid := range []string{"band", "album", "event"} {
		kind, err := community.ParseTargetKind(valid)
		require.NoError(t, err)
		assert.EqualValues(t, valid, kind)
	}
	_, err := community.ParseTargetKind("user")
	assert.Error(t, err)
}

func TestHiddenCommentsExcludedFromPublicListing(t *testing.T) {
	db := openTestDB(t)

	visible, err := community.PostComment(db, 1, community.TargetBand, 42, "still visible")
	require.NoError(t, err)
	moderated, err := community.PostComment(db, 2, community.TargetBand, 42, "about to be hidden")
	require.NoError(t, err)

	toggled, err := community.ToggleCommentHidden(db, moderated.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Hidden)

	public, err := community.VisibleComments(db, community.TargetBand, 42)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, visible.ID, public[0].ID)

	// The moderation view still carries the hidden comment.
	all, err := community.AllComments(db)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Toggling again restores visibility.
	toggled, err = community.ToggleCommentHidden(db, moderated.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Hidden)

	public, err = community.VisibleComments(db, community.TargetBand, 42)
	require.NoError(t, err)
	assert.Len(t, public, 2)
}

func TestVisibleCommentsScopedToTarget(t *testing.T) {
	db := openTestDB(t)

	_, err := community.PostComment(db, 1, community.TargetBand, 42, "band comment")
	require.NoError(t, err)
	_, err = community.PostComment(db, 1, community.TargetAlbum, 42, "album comment, same id")
	require.NoError(t, err)

	bandComments, err := community.VisibleComments(db, community.TargetBand, 42)
	require.NoError(t, err)
	require.Len(t, bandComments, 1)
	assert.Equal(t, "band comment", bandComments[0].Body)
}

func TestDeleteCommentAuthorization(t *testing.T) {
	db := openTestDB(t)

	comment, err := community.PostComment(db, 1, community.TargetEvent, 5, "see you there")
	require.NoError(t, err)

	// A random user can neither delete nor disturb the comment.
	err = community.DeleteComment(db, 2, false, comment.ID)
	assert.ErrorIs(t, err, community.ErrNotCommentAuthor)

	var count int64
	db.Model(&community.Comment{}).Count(&count)
	assert.EqualValues(t, 1, count)

	// The author can.
	require.NoError(t, community.DeleteComment(db, 1, false, comment.ID))
	db.Model(&community.Comment{}).Count(&count)
	assert.Zero(t, count)
}

func TestAdminDeletesAnyComment(t *testing.T) {
	db := openTestDB(t)

	comment, err := community.PostComment(db, 1, community.TargetAlbum, 9, "hot take")
	require.NoError(t, err)

	require.NoError(t, community.DeleteComment(db, 99, true, comment.ID))

	err = community.DeleteComment(db, 99, true, comment.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteCommentsForSweepsTargets(t *testing.T) {
	db := openTestDB(t)

	_, err := community.PostComment(db, 1, community.TargetAlbum, 1, "first")
	require.NoError(t, err)
	_, err = community.PostComment(db, 1, community.TargetAlbum, 2, "second")
	require.NoError(t, err)
	_, err = community.PostComment(db, 1, community.TargetBand, 1, "unrelated kind")
	require.NoError(t, err)

	require.NoError(t, community.DeleteCommentsFor(db, community.TargetAlbum, 1, 2))

	var count int64
	db.Model(&community.Comment{}).Count(&count)
	assert.EqualValues(t, 1, count, "only the band comment survives")
}
