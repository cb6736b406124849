package handlers

import (
	"net/http"

	"github.com/andrewpaige1/flashdeck-api/stats"
	"github.com/andrewpaige1/flashdeck-api/utils"
)

type endSessionRequest struct {
	CardsReviewed *int `json:"cardsReviewed" validate:"required,min=0"`
	CardsLearned  *int `json:"cardsLearned" validate:"required,min=0"`
}

// statisticsSummary is the aggregated view of a deck's session log and
// card progress.
type statisticsSummary struct {
	DeckID                uint    `json:"deckId"`
	Sessions              int     `json:"sessions"`
	TotalStudyTimeSeconds float64 `json:"totalStudyTimeSeconds"`
	CardsReviewed         int     `json:"cardsReviewed"`
	CardsLearned          int     `json:"cardsLearned"`
	KnownCards            int     `json:"knownCards"`
	TotalCards            int     `json:"totalCards"`
	ProgressPercent       float64 `json:"progressPercent"`
}

// POST /api/decks/{id}/start-session
func (db *DBHandler) StartStudySession(w http.ResponseWriter, r *http.Request) {
	deckID, err := utils.PathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := db.Store.StartStudySession(r.Context(), deckID)
	if err != nil {
		db.fail(w, r, "StartStudySession", "Deck not found", err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

// PATCH /api/study-sessions/{id}/end
func (db *DBHandler) EndStudySession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.PathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req endSessionRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := db.Store.EndStudySession(r.Context(), sessionID, *req.CardsReviewed, *req.CardsLearned)
	if err != nil {
		db.fail(w, r, "EndStudySession", "Study session not found", err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// GET /api/decks/{id}/statistics
func (db *DBHandler) GetDeckStatistics(w http.ResponseWriter, r *http.Request) {
	deckID, err := utils.PathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sessions, err := db.Store.ListStudySessions(r.Context(), deckID)
	if err != nil {
		db.fail(w, r, "GetDeckStatistics", "Deck not found", err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

// GET /api/decks/{id}/statistics/summary
func (db *DBHandler) GetDeckStatisticsSummary(w http.ResponseWriter, r *http.Request) {
	deckID, err := utils.PathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	if _, err := db.Store.GetDeck(ctx, deckID); err != nil {
		db.fail(w, r, "GetDeckStatisticsSummary", "Deck not found", err)
		return
	}
	sessions, err := db.Store.ListStudySessions(ctx, deckID)
	if err != nil {
		db.fail(w, r, "GetDeckStatisticsSummary", "Deck not found", err)
		return
	}
	cards, err := db.Store.ListCardsForDeck(ctx, deckID)
	if err != nil {
		db.fail(w, r, "GetDeckStatisticsSummary", "Deck not found", err)
		return
	}

	sum := stats.Summarize(sessions)
	progress := stats.Progress(cards)
	writeJSON(w, http.StatusOK, statisticsSummary{
		DeckID:                deckID,
		Sessions:              sum.Sessions,
		TotalStudyTimeSeconds: sum.TotalStudyTime.Seconds(),
		CardsReviewed:         sum.CardsReviewed,
		CardsLearned:          sum.CardsLearned,
		KnownCards:            progress.KnownCards,
		TotalCards:            progress.TotalCards,
		ProgressPercent:       progress.Percent,
	})
}
