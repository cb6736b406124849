package models

import (
	"time"
)

// Card is a front/back question-answer pair belonging to one deck
type Card struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	DeckID uint `gorm:"not null;index" json:"deckId"`
	Deck   Deck `gorm:"foreignKey:DeckID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Front   string `gorm:"not null" json:"front"`
	Back    string `gorm:"not null" json:"back"`
	IsKnown bool   `gorm:"not null;default:false" json:"isKnown"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	// Present in the schema for future review tracking; nothing writes it yet.
	LastReviewed *time.Time `gorm:"default:null" json:"lastReviewed"`
}
