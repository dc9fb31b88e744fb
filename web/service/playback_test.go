package service

import (
	"errors"
	"testing"
	"time"

	"streamd/database"
	"streamd/util/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaybackServiceStart(t *testing.T) {
	setup(t)
	defer teardown()

	titleService := NewTitleService(database.GetDB())
	playbackService := NewPlaybackService(titleService)

	_, err := playbackService.Start(999)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	title, err := titleService.Create("Alien", "In space no one can hear you scream.")
	require.NoError(t, err)

	ticket, err := playbackService.Start(title.Id)
	require.NoError(t, err)
	assert.Equal(t, title.Id, ticket.TitleId)
	assert.NotEmpty(t, ticket.SessionId)
	assert.NotEmpty(t, ticket.Token)
	assert.Greater(t, ticket.ExpiresAt, time.Now().Unix())

	// Token round-trips through verification
	titleId, err := playbackService.ParseTicket(ticket.Token)
	require.NoError(t, err)
	assert.Equal(t, title.Id, titleId)

	// Two starts are two sessions
	ticket2, err := playbackService.Start(title.Id)
	require.NoError(t, err)
	assert.NotEqual(t, ticket.SessionId, ticket2.SessionId)
}

func TestPlaybackServiceParseTicketRejectsGarbage(t *testing.T) {
	setup(t)
	defer teardown()

	titleService := NewTitleService(database.GetDB())
	playbackService := NewPlaybackService(titleService)

	_, err := playbackService.ParseTicket("not-a-token")
	assert.Error(t, err)
}
