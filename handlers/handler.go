package handlers

import (
	"net/http"

	"github.com/andrewpaige1/flashdeck-api/store"
	"go.uber.org/zap"
)

// DBHandler serves the JSON API on top of the data access layer.
type DBHandler struct {
	Store  *store.Store
	Logger *zap.Logger
}

func NewDBHandler(s *store.Store, logger *zap.Logger) *DBHandler {
	return &DBHandler{Store: s, Logger: logger}
}

// Routes registers every API route on a new ServeMux.
func (db *DBHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", db.Health)

	// Decks
	mux.HandleFunc("GET /api/decks", db.GetDecks)
	mux.HandleFunc("POST /api/decks", db.CreateDeck)
	mux.HandleFunc("GET /api/decks/{id}/cards", db.GetCardsForDeck)

	// Cards
	mux.HandleFunc("POST /api/cards", db.CreateCard)
	mux.HandleFunc("PATCH /api/cards/{id}", db.UpdateCardByID)

	// Study sessions
	mux.HandleFunc("POST /api/decks/{id}/start-session", db.StartStudySession)
	mux.HandleFunc("PATCH /api/study-sessions/{id}/end", db.EndStudySession)
	mux.HandleFunc("GET /api/decks/{id}/statistics", db.GetDeckStatistics)
	mux.HandleFunc("GET /api/decks/{id}/statistics/summary", db.GetDeckStatisticsSummary)

	// Sharing
	mux.HandleFunc("POST /api/decks/{id}/share", db.ShareDeck)
	mux.HandleFunc("POST /api/decks/{id}/unshare", db.UnshareDeck)
	mux.HandleFunc("GET /api/shared/{shareId}", db.GetSharedDeck)

	return mux
}

func (db *DBHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := db.Store.Ping(r.Context()); err != nil {
		db.Logger.Error("Health: database unreachable", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
