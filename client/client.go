// Package client is a typed Go client for the flashdeck HTTP API. It
// optionally memoizes list reads in a Cache and drives study sessions
// through a Tracker.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/andrewpaige1/flashdeck-api/models"
)

// ErrNotFound is returned for any 404 response.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx, non-404 response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("flashdeck api: %d %s", e.StatusCode, e.Message)
}

// StatisticsSummary mirrors GET /api/decks/{id}/statistics/summary.
type StatisticsSummary struct {
	DeckID                uint    `json:"deckId"`
	Sessions              int     `json:"sessions"`
	TotalStudyTimeSeconds float64 `json:"totalStudyTimeSeconds"`
	CardsReviewed         int     `json:"cardsReviewed"`
	CardsLearned          int     `json:"cardsLearned"`
	KnownCards            int     `json:"knownCards"`
	TotalCards            int     `json:"totalCards"`
	ProgressPercent       float64 `json:"progressPercent"`
}

// NewCard is the body of a card creation.
type NewCard struct {
	DeckID  uint   `json:"deckId"`
	Front   string `json:"front"`
	Back    string `json:"back"`
	IsKnown bool   `json:"isKnown"`
}

// CardUpdate is a partial card update; nil fields are omitted.
type CardUpdate struct {
	Front   *string `json:"front,omitempty"`
	Back    *string `json:"back,omitempty"`
	IsKnown *bool   `json:"isKnown,omitempty"`
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache enables memoization of list reads.
func WithCache(cache *Cache) Option {
	return func(c *Client) { c.cache = cache }
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *Cache
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cache returns the cache the client was built with, or nil.
func (c *Client) Cache() *Cache {
	return c.cache
}

func (c *Client) ListDecks(ctx context.Context) ([]models.DeckWithCards, error) {
	return cached(c.cache, KindDecks, 0, func() ([]models.DeckWithCards, error) {
		var decks []models.DeckWithCards
		err := c.do(ctx, http.MethodGet, "/api/decks", nil, &decks)
		return decks, err
	})
}

func (c *Client) CreateDeck(ctx context.Context, name string, description *string) (*models.Deck, error) {
	body := map[string]any{"name": name}
	if description != nil {
		body["description"] = *description
	}
	var deck models.Deck
	if err := c.do(ctx, http.MethodPost, "/api/decks", body, &deck); err != nil {
		return nil, err
	}
	c.cache.Invalidate(KindDecks, 0)
	return &deck, nil
}

func (c *Client) ListCards(ctx context.Context, deckID uint) ([]models.Card, error) {
	return cached(c.cache, KindCards, deckID, func() ([]models.Card, error) {
		var cards []models.Card
		err := c.do(ctx, http.MethodGet, deckPath(deckID, "cards"), nil, &cards)
		return cards, err
	})
}

func (c *Client) CreateCard(ctx context.Context, card NewCard) (*models.Card, error) {
	var created models.Card
	if err := c.do(ctx, http.MethodPost, "/api/cards", card, &created); err != nil {
		return nil, err
	}
	c.cache.Invalidate(KindCards, created.DeckID)
	c.cache.Invalidate(KindDecks, 0)
	return &created, nil
}

func (c *Client) UpdateCard(ctx context.Context, id uint, update CardUpdate) (*models.Card, error) {
	var card models.Card
	path := "/api/cards/" + strconv.FormatUint(uint64(id), 10)
	if err := c.do(ctx, http.MethodPatch, path, update, &card); err != nil {
		return nil, err
	}
	c.cache.Invalidate(KindCards, card.DeckID)
	c.cache.Invalidate(KindDecks, 0)
	return &card, nil
}

func (c *Client) StartStudySession(ctx context.Context, deckID uint) (*models.StudySession, error) {
	var session models.StudySession
	if err := c.do(ctx, http.MethodPost, deckPath(deckID, "start-session"), nil, &session); err != nil {
		return nil, err
	}
	c.cache.Invalidate(KindSessions, deckID)
	return &session, nil
}

// EndStudySession closes a session with absolute review counts.
func (c *Client) EndStudySession(ctx context.Context, sessionID uint, cardsReviewed, cardsLearned int) (*models.StudySession, error) {
	body := map[string]int{
		"cardsReviewed": cardsReviewed,
		"cardsLearned":  cardsLearned,
	}
	var session models.StudySession
	path := "/api/study-sessions/" + strconv.FormatUint(uint64(sessionID), 10) + "/end"
	if err := c.do(ctx, http.MethodPatch, path, body, &session); err != nil {
		return nil, err
	}
	c.cache.Invalidate(KindSessions, session.DeckID)
	return &session, nil
}

func (c *Client) ListStudySessions(ctx context.Context, deckID uint) ([]models.StudySession, error) {
	return cached(c.cache, KindSessions, deckID, func() ([]models.StudySession, error) {
		var sessions []models.StudySession
		err := c.do(ctx, http.MethodGet, deckPath(deckID, "statistics"), nil, &sessions)
		return sessions, err
	})
}

func (c *Client) StatisticsSummary(ctx context.Context, deckID uint) (*StatisticsSummary, error) {
	var summary StatisticsSummary
	if err := c.do(ctx, http.MethodGet, deckPath(deckID, "statistics/summary"), nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) ShareDeck(ctx context.Context, deckID uint) (*models.Deck, error) {
	var deck models.Deck
	if err := c.do(ctx, http.MethodPost, deckPath(deckID, "share"), nil, &deck); err != nil {
		return nil, err
	}
	c.cache.Invalidate(KindDecks, 0)
	return &deck, nil
}

func (c *Client) UnshareDeck(ctx context.Context, deckID uint) (*models.Deck, error) {
	var deck models.Deck
	if err := c.do(ctx, http.MethodPost, deckPath(deckID, "unshare"), nil, &deck); err != nil {
		return nil, err
	}
	c.cache.Invalidate(KindDecks, 0)
	return &deck, nil
}

// GetSharedDeck resolves a public share token. Unknown and private tokens
// both yield ErrNotFound.
func (c *Client) GetSharedDeck(ctx context.Context, shareID string) (*models.DeckWithCards, error) {
	var deck models.DeckWithCards
	if err := c.do(ctx, http.MethodGet, "/api/shared/"+shareID, nil, &deck); err != nil {
		return nil, err
	}
	return &deck, nil
}

func deckPath(deckID uint, suffix string) string {
	return "/api/decks/" + strconv.FormatUint(uint64(deckID), 10) + "/" + suffix
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func errorFromResponse(resp *http.Response) error {
	msg := http.StatusText(resp.StatusCode)
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		msg = payload.Message
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
