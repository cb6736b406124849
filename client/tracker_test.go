package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerRollsSessionsOverOnReview(t *testing.T) {
	ctx := context.Background()
	ts := newTestServer(t)
	c := New(ts.URL, WithHTTPClient(ts.Client()), WithCache(NewCache()))

	deck, err := c.CreateDeck(ctx, "Spanish", nil)
	require.NoError(t, err)
	a, err := c.CreateCard(ctx, NewCard{DeckID: deck.ID, Front: "uno", Back: "one"})
	require.NoError(t, err)
	b, err := c.CreateCard(ctx, NewCard{DeckID: deck.ID, Front: "dos", Back: "two"})
	require.NoError(t, err)

	tr := NewTracker(c)
	_, err = tr.Review(ctx, a.ID, true)
	assert.ErrorIs(t, err, ErrNoActiveDeck)

	require.NoError(t, tr.Open(ctx, deck.ID))
	first := tr.Session()
	require.NotNil(t, first)

	card, err := tr.Review(ctx, a.ID, true)
	require.NoError(t, err)
	assert.True(t, card.IsKnown)
	_, err = tr.Review(ctx, b.ID, false)
	require.NoError(t, err)

	reviewed, learned := tr.Counts()
	assert.Equal(t, 2, reviewed)
	assert.Equal(t, 1, learned)
	assert.NotEqual(t, first.ID, tr.Session().ID)

	require.NoError(t, tr.Close(ctx))
	assert.Nil(t, tr.Session())

	sessions, err := c.ListStudySessions(ctx, deck.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	for _, s := range sessions {
		assert.True(t, s.Ended(), "session %d still open", s.ID)
	}
	// Most recent first: the session closed by Close carries the final totals.
	assert.Equal(t, 2, sessions[0].CardsReviewed)
	assert.Equal(t, 1, sessions[0].CardsLearned)
	assert.Equal(t, 1, sessions[2].CardsReviewed)
	assert.Equal(t, 1, sessions[2].CardsLearned)

	summary, err := c.StatisticsSummary(ctx, deck.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Sessions)
	assert.Equal(t, 1, summary.KnownCards)
	assert.Equal(t, 2, summary.TotalCards)
}

func TestTrackerSwitchingDecksClosesPrevious(t *testing.T) {
	ctx := context.Background()
	ts := newTestServer(t)
	c := New(ts.URL, WithHTTPClient(ts.Client()))

	first, err := c.CreateDeck(ctx, "First", nil)
	require.NoError(t, err)
	second, err := c.CreateDeck(ctx, "Second", nil)
	require.NoError(t, err)
	card, err := c.CreateCard(ctx, NewCard{DeckID: first.ID, Front: "f", Back: "b"})
	require.NoError(t, err)

	tr := NewTracker(c)
	require.NoError(t, tr.Open(ctx, first.ID))
	_, err = tr.Review(ctx, card.ID, true)
	require.NoError(t, err)

	require.NoError(t, tr.Open(ctx, second.ID))
	reviewed, learned := tr.Counts()
	assert.Zero(t, reviewed)
	assert.Zero(t, learned)

	sessions, err := c.ListStudySessions(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.True(t, sessions[0].Ended())

	sessions, err = c.ListStudySessions(ctx, second.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.False(t, sessions[0].Ended())
}
