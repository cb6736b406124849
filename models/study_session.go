package models

import (
	"time"
)

// StudySession is a timed interval of review activity against one deck.
// Counters are absolute totals for the interval, not deltas.
type StudySession struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	DeckID uint `gorm:"not null;index" json:"deckId"`
	Deck   Deck `gorm:"foreignKey:DeckID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	StartTime     time.Time  `gorm:"not null;index" json:"startTime"`
	EndTime       *time.Time `gorm:"default:null" json:"endTime"`
	CardsReviewed int        `gorm:"not null;default:0" json:"cardsReviewed"`
	CardsLearned  int        `gorm:"not null;default:0" json:"cardsLearned"`
}

// Ended reports whether the session has been closed.
func (s StudySession) Ended() bool {
	return s.EndTime != nil
}

// Duration is the elapsed time of an ended session, zero while still open.
func (s StudySession) Duration() time.Duration {
	if s.EndTime == nil {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}
