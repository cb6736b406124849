package handlers

import (
	"net/http"
	"strings"

	"github.com/andrewpaige1/flashdeck-api/store"
	"github.com/andrewpaige1/flashdeck-api/utils"
	"go.uber.org/zap"
)

type createCardRequest struct {
	DeckID  uint   `json:"deckId" validate:"required"`
	Front   string `json:"front" validate:"required"`
	Back    string `json:"back" validate:"required"`
	IsKnown bool   `json:"isKnown"`
}

// updateCardRequest lists the only fields a PATCH may carry. Immutable
// fields (id, deckId, createdAt) are rejected as unknown.
type updateCardRequest struct {
	Front   *string `json:"front,omitempty"`
	Back    *string `json:"back,omitempty"`
	IsKnown *bool   `json:"isKnown,omitempty"`
}

// GET /api/decks/{id}/cards
func (db *DBHandler) GetCardsForDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := utils.PathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cards, err := db.Store.ListCardsForDeck(r.Context(), deckID)
	if err != nil {
		db.fail(w, r, "GetCardsForDeck", "Deck not found", err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

// POST /api/cards
func (db *DBHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Front) == "" || strings.TrimSpace(req.Back) == "" {
		writeError(w, http.StatusBadRequest, "front and back are required")
		return
	}

	card, err := db.Store.CreateCard(r.Context(), req.DeckID, req.Front, req.Back, req.IsKnown)
	if err != nil {
		db.fail(w, r, "CreateCard", "Deck not found", err)
		return
	}

	db.Logger.Info("CreateCard: created card", zap.Uint("cardID", card.ID), zap.Uint("deckID", card.DeckID))
	writeJSON(w, http.StatusCreated, card)
}

// PATCH /api/cards/{id}
func (db *DBHandler) UpdateCardByID(w http.ResponseWriter, r *http.Request) {
	cardID, err := utils.PathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req updateCardRequest
	if err := decodeBody(r, &req, true); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if (req.Front != nil && strings.TrimSpace(*req.Front) == "") ||
		(req.Back != nil && strings.TrimSpace(*req.Back) == "") {
		writeError(w, http.StatusBadRequest, "front and back must not be empty")
		return
	}

	card, err := db.Store.UpdateCard(r.Context(), cardID, store.CardPatch{
		Front:   req.Front,
		Back:    req.Back,
		IsKnown: req.IsKnown,
	})
	if err != nil {
		db.fail(w, r, "UpdateCardByID", "Card not found", err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}
