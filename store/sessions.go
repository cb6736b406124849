package store

import (
	"context"
	"fmt"

	"github.com/andrewpaige1/flashdeck-api/models"
)

// StartStudySession opens a session for a deck with zeroed counters.
func (s *Store) StartStudySession(ctx context.Context, deckID uint) (*models.StudySession, error) {
	session := models.StudySession{
		DeckID:    deckID,
		StartTime: s.now(),
	}
	if err := s.insertChild(ctx, deckID, &session); err != nil {
		return nil, fmt.Errorf("failed to start study session: %w", err)
	}
	return &session, nil
}

// EndStudySession stamps the end time and overwrites both counters with the
// caller's absolute totals. Calling it again on the same session overwrites
// the previous values; nothing freezes an ended session.
func (s *Store) EndStudySession(ctx context.Context, id uint, cardsReviewed, cardsLearned int) (*models.StudySession, error) {
	now := s.now()
	res := s.db.WithContext(ctx).
		Model(&models.StudySession{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"end_time":       now,
			"cards_reviewed": cardsReviewed,
			"cards_learned":  cardsLearned,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to end study session %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("study session %d: %w", id, ErrNotFound)
	}

	var session models.StudySession
	if err := s.db.WithContext(ctx).First(&session, id).Error; err != nil {
		return nil, notFound(err, "study session", id)
	}
	return &session, nil
}

// ListStudySessions returns the sessions of a deck, most recent start first.
func (s *Store) ListStudySessions(ctx context.Context, deckID uint) ([]models.StudySession, error) {
	sessions := []models.StudySession{}
	err := s.db.WithContext(ctx).
		Where("deck_id = ?", deckID).
		Order("start_time DESC").
		Order("id DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list study sessions for deck %d: %w", deckID, err)
	}
	return sessions, nil
}
