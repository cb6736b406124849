package stats

// Accumulator tracks which cards were reviewed and which ended up known
// during one open study session. Its counts are the absolute totals handed
// to the session end call. It is not safe for concurrent use.
type Accumulator struct {
	reviewed map[uint]struct{}
	learned  map[uint]struct{}
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		reviewed: make(map[uint]struct{}),
		learned:  make(map[uint]struct{}),
	}
}

// Review records a review of cardID. Marking a card unknown again removes it
// from the learned set but it stays reviewed.
func (a *Accumulator) Review(cardID uint, known bool) {
	a.reviewed[cardID] = struct{}{}
	if known {
		a.learned[cardID] = struct{}{}
	} else {
		delete(a.learned, cardID)
	}
}

// Counts returns the number of distinct reviewed and learned cards.
func (a *Accumulator) Counts() (reviewed, learned int) {
	return len(a.reviewed), len(a.learned)
}

// Reset forgets everything, for use when the active deck changes.
func (a *Accumulator) Reset() {
	clear(a.reviewed)
	clear(a.learned)
}
