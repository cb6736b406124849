package handlers

import (
	"net/http"
	"strings"

	"github.com/andrewpaige1/flashdeck-api/models"
	"go.uber.org/zap"
)

type createDeckRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

// GET /api/decks
func (db *DBHandler) GetDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := db.Store.ListDecksWithCards(r.Context())
	if err != nil {
		db.fail(w, r, "GetDecks", "Deck not found", err)
		return
	}

	response := make([]models.DeckWithCards, 0, len(decks))
	for _, deck := range decks {
		response = append(response, deck.WithCards())
	}
	writeJSON(w, http.StatusOK, response)
}

// POST /api/decks
func (db *DBHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var req createDeckRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	deck, err := db.Store.CreateDeck(r.Context(), req.Name, req.Description)
	if err != nil {
		db.fail(w, r, "CreateDeck", "Deck not found", err)
		return
	}

	db.Logger.Info("CreateDeck: created deck", zap.Uint("deckID", deck.ID))
	writeJSON(w, http.StatusCreated, deck)
}
