package utils

import (
	"fmt"
	"net/http"
	"strconv"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// PathID parses a positive numeric id from the named path wildcard.
func PathID(r *http.Request, name string) (uint, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return uint(id), nil
}

// NewShareID returns a random URL-safe token of the given length drawn from
// the nanoid alphabet (A-Za-z0-9_-).
func NewShareID(length int) (string, error) {
	id, err := gonanoid.New(length)
	if err != nil {
		return "", fmt.Errorf("generate share id: %w", err)
	}
	return id, nil
}
