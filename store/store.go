package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andrewpaige1/flashdeck-api/models"
	"github.com/andrewpaige1/flashdeck-api/utils"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the addressed deck, card, session or
	// share token does not exist (or the deck is not public).
	ErrNotFound = errors.New("record not found")

	// ErrShareIDExhausted is returned when every generated share token
	// collided with an existing one.
	ErrShareIDExhausted = errors.New("could not generate a unique share id")
)

// shareIDAttempts bounds token regeneration on unique index conflicts.
const shareIDAttempts = 3

// Store is the data access layer over decks, cards and study sessions.
// Every method is a single logical step against the database; nothing spans
// a transaction across entities.
type Store struct {
	db         *gorm.DB
	now        func() time.Time
	newShareID func() (string, error)
}

// New returns a Store backed by db that generates share tokens of
// shareIDLength characters.
func New(db *gorm.DB, shareIDLength int) *Store {
	return &Store{
		db: db,
		now: func() time.Time {
			return time.Now().UTC()
		},
		newShareID: func() (string, error) {
			return utils.NewShareID(shareIDLength)
		},
	}
}

// Ping checks that the underlying database answers.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func orderedCards(tx *gorm.DB) *gorm.DB {
	return tx.Order("cards.id ASC")
}

func notFound(err error, what string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %v: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("failed to load %s %v: %w", what, id, err)
}

func (s *Store) deckExists(ctx context.Context, deckID uint) error {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Deck{}).Where("id = ?", deckID).Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check deck %d: %w", deckID, err)
	}
	if count == 0 {
		return fmt.Errorf("deck %d: %w", deckID, ErrNotFound)
	}
	return nil
}

// insertChild creates a row referencing a deck, reporting a missing deck as
// ErrNotFound both before the insert and if the foreign key rejects it.
func (s *Store) insertChild(ctx context.Context, deckID uint, row any) error {
	if err := s.deckExists(ctx, deckID); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("deck %d: %w", deckID, ErrNotFound)
		}
		return err
	}
	return nil
}
