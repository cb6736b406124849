package handlers

import (
	"net/http"

	"github.com/andrewpaige1/flashdeck-api/utils"
	"go.uber.org/zap"
)

// POST /api/decks/{id}/share
func (db *DBHandler) ShareDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := utils.PathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	deck, err := db.Store.ShareDeck(r.Context(), deckID)
	if err != nil {
		db.fail(w, r, "ShareDeck", "Deck not found", err)
		return
	}

	db.Logger.Info("ShareDeck: deck shared", zap.Uint("deckID", deck.ID))
	writeJSON(w, http.StatusOK, deck)
}

// POST /api/decks/{id}/unshare
func (db *DBHandler) UnshareDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := utils.PathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	deck, err := db.Store.UnshareDeck(r.Context(), deckID)
	if err != nil {
		db.fail(w, r, "UnshareDeck", "Deck not found", err)
		return
	}

	db.Logger.Info("UnshareDeck: deck unshared", zap.Uint("deckID", deck.ID))
	writeJSON(w, http.StatusOK, deck)
}

// GET /api/shared/{shareId}
//
// Unknown tokens and decks that are no longer public get the same 404 so a
// revoked link reveals nothing about the deck.
func (db *DBHandler) GetSharedDeck(w http.ResponseWriter, r *http.Request) {
	shareID := r.PathValue("shareId")

	deck, err := db.Store.FindSharedDeck(r.Context(), shareID)
	if err != nil {
		db.fail(w, r, "GetSharedDeck", "Deck not found", err)
		return
	}
	writeJSON(w, http.StatusOK, deck.WithCards())
}
