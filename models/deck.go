package models

import (
	"time"
)

// Deck represents a named collection of flashcards
type Deck struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description *string   `json:"description"`
	ShareID     *string   `gorm:"size:64;uniqueIndex" json:"shareId"`
	IsPublic    bool      `gorm:"not null;default:false" json:"isPublic"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`

	Cards         []Card         `gorm:"foreignKey:DeckID" json:"-"`
	StudySessions []StudySession `gorm:"foreignKey:DeckID" json:"-"`
}

// DeckWithCards is the wire shape of a deck listed together with its cards.
// Cards is always encoded as an array, never null.
type DeckWithCards struct {
	Deck
	Cards []Card `json:"cards"`
}

// WithCards detaches the preloaded cards into the wire shape.
func (d Deck) WithCards() DeckWithCards {
	cards := d.Cards
	if cards == nil {
		cards = []Card{}
	}
	return DeckWithCards{Deck: d, Cards: cards}
}
