package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrewpaige1/flashdeck-api/models"
	"gorm.io/gorm"
)

// ListDecksWithCards returns every deck with its cards attached, cards in
// ascending id order.
func (s *Store) ListDecksWithCards(ctx context.Context) ([]models.Deck, error) {
	decks := []models.Deck{}
	err := s.db.WithContext(ctx).
		Preload("Cards", orderedCards).
		Order("decks.id ASC").
		Find(&decks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	return decks, nil
}

// CreateDeck inserts a private, unshared deck.
func (s *Store) CreateDeck(ctx context.Context, name string, description *string) (*models.Deck, error) {
	deck := models.Deck{
		Name:        name,
		Description: description,
		CreatedAt:   s.now(),
	}
	if err := s.db.WithContext(ctx).Create(&deck).Error; err != nil {
		return nil, fmt.Errorf("failed to create deck: %w", err)
	}
	return &deck, nil
}

// GetDeck loads a single deck without its cards.
func (s *Store) GetDeck(ctx context.Context, id uint) (*models.Deck, error) {
	var deck models.Deck
	if err := s.db.WithContext(ctx).First(&deck, id).Error; err != nil {
		return nil, notFound(err, "deck", id)
	}
	return &deck, nil
}

// ShareDeck assigns a fresh share token and marks the deck public. Sharing
// an already shared deck rotates its token, invalidating the old link.
func (s *Store) ShareDeck(ctx context.Context, deckID uint) (*models.Deck, error) {
	deck, err := s.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < shareIDAttempts; attempt++ {
		token, err := s.newShareID()
		if err != nil {
			return nil, err
		}

		err = s.db.WithContext(ctx).Model(deck).Updates(map[string]any{
			"share_id":  token,
			"is_public": true,
		}).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to share deck %d: %w", deckID, err)
		}

		deck.ShareID = &token
		deck.IsPublic = true
		return deck, nil
	}
	return nil, fmt.Errorf("deck %d: %w", deckID, ErrShareIDExhausted)
}

// UnshareDeck clears the share token and makes the deck private again.
// Unsharing a deck that is not shared is a no-op.
func (s *Store) UnshareDeck(ctx context.Context, deckID uint) (*models.Deck, error) {
	deck, err := s.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Model(deck).Updates(map[string]any{
		"share_id":  nil,
		"is_public": false,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to unshare deck %d: %w", deckID, err)
	}

	deck.ShareID = nil
	deck.IsPublic = false
	return deck, nil
}

// FindSharedDeck resolves a share token to its deck and cards. A token that
// is unknown, or whose deck is not public, is reported as ErrNotFound.
func (s *Store) FindSharedDeck(ctx context.Context, shareID string) (*models.Deck, error) {
	if shareID == "" {
		return nil, fmt.Errorf("empty share id: %w", ErrNotFound)
	}

	var deck models.Deck
	err := s.db.WithContext(ctx).
		Preload("Cards", orderedCards).
		Where("share_id = ? AND is_public = ?", shareID, true).
		First(&deck).Error
	if err != nil {
		return nil, notFound(err, "shared deck", shareID)
	}
	return &deck, nil
}
