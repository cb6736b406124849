package stats

import (
	"testing"
	"time"

	"github.com/andrewpaige1/flashdeck-api/models"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	end1 := start.Add(5 * time.Minute)
	end2 := start.Add(time.Hour + 2*time.Minute)

	sessions := []models.StudySession{
		{ID: 3, StartTime: start.Add(time.Hour), EndTime: &end2, CardsReviewed: 4, CardsLearned: 1},
		{ID: 2, StartTime: start.Add(30 * time.Minute), CardsReviewed: 2},
		{ID: 1, StartTime: start, EndTime: &end1, CardsReviewed: 3, CardsLearned: 2},
	}

	sum := Summarize(sessions)
	assert.Equal(t, 3, sum.Sessions)
	assert.Equal(t, 7*time.Minute, sum.TotalStudyTime)
	assert.Equal(t, 9, sum.CardsReviewed)
	assert.Equal(t, 3, sum.CardsLearned)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestProgress(t *testing.T) {
	cards := []models.Card{{IsKnown: true}, {IsKnown: false}, {IsKnown: true}, {IsKnown: false}}

	p := Progress(cards)
	assert.Equal(t, 2, p.KnownCards)
	assert.Equal(t, 4, p.TotalCards)
	assert.InDelta(t, 50.0, p.Percent, 0.001)
	assert.False(t, Completed(cards))

	assert.Equal(t, ProgressReport{}, Progress(nil))
	assert.False(t, Completed(nil))
	assert.True(t, Completed([]models.Card{{IsKnown: true}}))
}

func TestAccumulator(t *testing.T) {
	acc := NewAccumulator()

	acc.Review(1, true)
	acc.Review(2, false)
	acc.Review(1, true)
	reviewed, learned := acc.Counts()
	assert.Equal(t, 2, reviewed)
	assert.Equal(t, 1, learned)

	// Unmarking keeps the card reviewed but no longer learned.
	acc.Review(1, false)
	reviewed, learned = acc.Counts()
	assert.Equal(t, 2, reviewed)
	assert.Equal(t, 0, learned)

	acc.Reset()
	reviewed, learned = acc.Counts()
	assert.Zero(t, reviewed)
	assert.Zero(t, learned)
}
