// Package stats aggregates study sessions and card progress for a deck.
//
// The store only records sessions; totals are always derived here from the
// session log, never kept as running counters in the database.
package stats

import (
	"time"

	"github.com/andrewpaige1/flashdeck-api/models"
)

// Summary totals a deck's session log.
type Summary struct {
	Sessions       int
	TotalStudyTime time.Duration
	CardsReviewed  int
	CardsLearned   int
}

// Summarize adds up the counters of every session. Only ended sessions
// contribute study time; an open session has no duration yet.
func Summarize(sessions []models.StudySession) Summary {
	sum := Summary{Sessions: len(sessions)}
	for _, s := range sessions {
		sum.TotalStudyTime += s.Duration()
		sum.CardsReviewed += s.CardsReviewed
		sum.CardsLearned += s.CardsLearned
	}
	return sum
}

// ProgressReport describes how much of a deck is known.
type ProgressReport struct {
	KnownCards int
	TotalCards int
	Percent    float64
}

// Progress counts known cards. An empty deck is 0% known.
func Progress(cards []models.Card) ProgressReport {
	p := ProgressReport{TotalCards: len(cards)}
	for _, c := range cards {
		if c.IsKnown {
			p.KnownCards++
		}
	}
	if p.TotalCards > 0 {
		p.Percent = float64(p.KnownCards) / float64(p.TotalCards) * 100
	}
	return p
}

// Completed reports whether a deck has cards and every one of them is known.
func Completed(cards []models.Card) bool {
	p := Progress(cards)
	return p.TotalCards > 0 && p.KnownCards == p.TotalCards
}
