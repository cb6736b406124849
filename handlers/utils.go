package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/andrewpaige1/flashdeck-api/store"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

// errorResponse is the body of every failed request.
type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// fail maps a store error onto a response. Not-found errors become 404 with
// notFoundMsg; anything else is logged and hidden behind a generic 500.
func (db *DBHandler) fail(w http.ResponseWriter, r *http.Request, op, notFoundMsg string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		db.Logger.Debug(op+": not found", zap.String("path", r.URL.Path), zap.Error(err))
		writeError(w, http.StatusNotFound, notFoundMsg)
		return
	}
	db.Logger.Error(op+": request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// decodeBody reads a JSON body into dst and runs struct validation on it.
func decodeBody(r *http.Request, dst any, strict bool) error {
	decoder := json.NewDecoder(r.Body)
	if strict {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %v", err)
	}
	if err := validate.Struct(dst); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, formatFieldError(e))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := jsonFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// jsonFieldName lower-cases the first letter of a Go field name, which is
// how every request field is spelled on the wire (DeckID -> deckID -> deckId).
func jsonFieldName(goName string) string {
	if goName == "" {
		return goName
	}
	name := strings.ToLower(goName[:1]) + goName[1:]
	return strings.Replace(name, "ID", "Id", 1)
}
