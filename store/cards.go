package store

import (
	"context"
	"fmt"

	"github.com/andrewpaige1/flashdeck-api/models"
)

// CardPatch holds the mutable card fields of a partial update. Nil fields
// are left untouched.
type CardPatch struct {
	Front   *string
	Back    *string
	IsKnown *bool
}

// Empty reports whether the patch changes nothing.
func (p CardPatch) Empty() bool {
	return p.Front == nil && p.Back == nil && p.IsKnown == nil
}

// columns maps the set fields to their column names. A map is used so that
// false is written rather than skipped as a zero value.
func (p CardPatch) columns() map[string]any {
	cols := map[string]any{}
	if p.Front != nil {
		cols["front"] = *p.Front
	}
	if p.Back != nil {
		cols["back"] = *p.Back
	}
	if p.IsKnown != nil {
		cols["is_known"] = *p.IsKnown
	}
	return cols
}

func (p CardPatch) apply(card *models.Card) {
	if p.Front != nil {
		card.Front = *p.Front
	}
	if p.Back != nil {
		card.Back = *p.Back
	}
	if p.IsKnown != nil {
		card.IsKnown = *p.IsKnown
	}
}

// ListCardsForDeck returns the cards of a deck ordered by ascending id. An
// unknown deck simply has no cards.
func (s *Store) ListCardsForDeck(ctx context.Context, deckID uint) ([]models.Card, error) {
	cards := []models.Card{}
	err := s.db.WithContext(ctx).
		Where("deck_id = ?", deckID).
		Order("id ASC").
		Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cards for deck %d: %w", deckID, err)
	}
	return cards, nil
}

// CreateCard inserts a card into an existing deck.
func (s *Store) CreateCard(ctx context.Context, deckID uint, front, back string, isKnown bool) (*models.Card, error) {
	card := models.Card{
		DeckID:    deckID,
		Front:     front,
		Back:      back,
		IsKnown:   isKnown,
		CreatedAt: s.now(),
	}
	if err := s.insertChild(ctx, deckID, &card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	return &card, nil
}

// UpdateCard applies patch to the card with the given id and returns the
// resulting row. A missing card is ErrNotFound rather than an empty result.
func (s *Store) UpdateCard(ctx context.Context, id uint, patch CardPatch) (*models.Card, error) {
	var card models.Card
	if err := s.db.WithContext(ctx).First(&card, id).Error; err != nil {
		return nil, notFound(err, "card", id)
	}
	if patch.Empty() {
		return &card, nil
	}

	if err := s.db.WithContext(ctx).Model(&card).Updates(patch.columns()).Error; err != nil {
		return nil, fmt.Errorf("failed to update card %d: %w", id, err)
	}
	patch.apply(&card)
	return &card, nil
}
