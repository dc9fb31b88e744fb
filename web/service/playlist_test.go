package service

import (
	"errors"
	"testing"

	"streamd/database"
	"streamd/util/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaylistServiceCreate(t *testing.T) {
	setup(t)
	defer teardown()

	db := database.GetDB()
	userService := NewUserService(db)
	playlistService := NewPlaylistService(db)

	_, err := playlistService.Create(999, "watch later")
	assert.True(t, errors.Is(err, common.ErrNotFound))

	user, err := userService.Register("alice", "a@x.com", "pw123")
	require.NoError(t, err)

	playlist, err := playlistService.Create(user.Id, "watch later")
	require.NoError(t, err)
	assert.Greater(t, playlist.Id, 0)
	assert.Equal(t, user.Id, playlist.UserId)
	assert.Equal(t, "watch later", playlist.Name)
}

func TestPlaylistServiceAddTitle(t *testing.T) {
	setup(t)
	defer teardown()

	db := database.GetDB()
	userService := NewUserService(db)
	titleService := NewTitleService(db)
	playlistService := NewPlaylistService(db)

	user, err := userService.Register("alice", "a@x.com", "pw123")
	require.NoError(t, err)
	playlist, err := playlistService.Create(user.Id, "watch later")
	require.NoError(t, err)
	first, err := titleService.Create("Alien", "In space no one can hear you scream.")
	require.NoError(t, err)
	second, err := titleService.Create("Aliens", "This time it's war.")
	require.NoError(t, err)

	_, err = playlistService.AddTitle(999, first.Id)
	assert.True(t, errors.Is(err, common.ErrNotFound))
	_, err = playlistService.AddTitle(playlist.Id, 999)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	// Positions are assigned in add order, starting at 1
	entry, err := playlistService.AddTitle(playlist.Id, first.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Position)

	entry, err = playlistService.AddTitle(playlist.Id, second.Id)
	require.NoError(t, err)
	assert.Equal(t, 2, entry.Position)

	entry, err = playlistService.AddTitle(playlist.Id, first.Id)
	require.NoError(t, err)
	assert.Equal(t, 3, entry.Position)
}

func TestPlaylistServiceGet(t *testing.T) {
	setup(t)
	defer teardown()

	db := database.GetDB()
	userService := NewUserService(db)
	titleService := NewTitleService(db)
	playlistService := NewPlaylistService(db)

	_, _, err := playlistService.Get(999)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	user, err := userService.Register("alice", "a@x.com", "pw123")
	require.NoError(t, err)
	playlist, err := playlistService.Create(user.Id, "watch later")
	require.NoError(t, err)
	first, err := titleService.Create("Alien", "In space no one can hear you scream.")
	require.NoError(t, err)
	second, err := titleService.Create("Aliens", "This time it's war.")
	require.NoError(t, err)

	_, err = playlistService.AddTitle(playlist.Id, second.Id)
	require.NoError(t, err)
	_, err = playlistService.AddTitle(playlist.Id, first.Id)
	require.NoError(t, err)

	got, entries, err := playlistService.Get(playlist.Id)
	require.NoError(t, err)
	assert.Equal(t, playlist.Id, got.Id)
	require.Len(t, entries, 2)
	assert.Equal(t, second.Id, entries[0].TitleId)
	assert.Equal(t, first.Id, entries[1].TitleId)
}
