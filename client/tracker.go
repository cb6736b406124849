package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/andrewpaige1/flashdeck-api/models"
	"github.com/andrewpaige1/flashdeck-api/stats"
)

// ErrNoActiveDeck is returned by Review when no deck is open.
var ErrNoActiveDeck = errors.New("no active deck")

// Tracker runs study sessions for one active deck at a time. Every review
// closes the open session with the running totals and opens a fresh one,
// so the server-side statistics stay current while the user studies.
type Tracker struct {
	client *Client

	mu      sync.Mutex
	deckID  uint
	session *models.StudySession
	acc     *stats.Accumulator
}

func NewTracker(c *Client) *Tracker {
	return &Tracker{client: c, acc: stats.NewAccumulator()}
}

// Open makes deckID the active deck and starts a session for it. A
// previously open deck is closed first.
func (t *Tracker) Open(ctx context.Context, deckID uint) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.deckID != 0 && t.deckID != deckID {
		if err := t.endLocked(ctx); err != nil {
			return err
		}
		t.acc.Reset()
	}
	if t.deckID == deckID && t.session != nil {
		return nil
	}

	session, err := t.client.StartStudySession(ctx, deckID)
	if err != nil {
		return fmt.Errorf("open deck %d: %w", deckID, err)
	}
	t.deckID = deckID
	t.session = session
	return nil
}

// Review marks a card known or unknown, records the review and rolls the
// session over.
func (t *Tracker) Review(ctx context.Context, cardID uint, known bool) (*models.Card, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.deckID == 0 {
		return nil, ErrNoActiveDeck
	}

	card, err := t.client.UpdateCard(ctx, cardID, CardUpdate{IsKnown: &known})
	if err != nil {
		return nil, err
	}
	t.acc.Review(card.ID, card.IsKnown)

	if err := t.endLocked(ctx); err != nil {
		return card, err
	}
	session, err := t.client.StartStudySession(ctx, t.deckID)
	if err != nil {
		return card, fmt.Errorf("restart session for deck %d: %w", t.deckID, err)
	}
	t.session = session
	return card, nil
}

// Close ends the open session and forgets the active deck.
func (t *Tracker) Close(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	err := t.endLocked(ctx)
	t.deckID = 0
	t.acc.Reset()
	return err
}

// Counts returns the running totals for the active deck.
func (t *Tracker) Counts() (reviewed, learned int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.acc.Counts()
}

// Session returns the currently open session, or nil.
func (t *Tracker) Session() *models.StudySession {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.session
}

func (t *Tracker) endLocked(ctx context.Context) error {
	if t.session == nil {
		return nil
	}
	reviewed, learned := t.acc.Counts()
	if _, err := t.client.EndStudySession(ctx, t.session.ID, reviewed, learned); err != nil {
		return fmt.Errorf("end session %d: %w", t.session.ID, err)
	}
	t.session = nil
	return nil
}
