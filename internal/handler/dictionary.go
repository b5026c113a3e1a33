package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/itektr/turkish-spellchecker/internal/model"
	"github.com/itektr/turkish-spellchecker/internal/repository"
	"github.com/itektr/turkish-spellchecker/internal/speller"
)

// DictionaryStore is the slice of repository.DictionaryRepo the handler
// needs; tests substitute an in-memory implementation.
type DictionaryStore interface {
	Add(ctx context.Context, word, normalized string, addedBy uint64) (uint64, error)
	ListActive(ctx context.Context) ([]model.DictionaryEntry, error)
	Deactivate(ctx context.Context, id uint64) error
}

// DictionaryHandler manages custom dictionary words. Added words are
// merged into the live lexicon immediately; removed words disappear
// from checking only after a restart, since the lexicon does not track
// entry provenance.
type DictionaryHandler struct {
	Store DictionaryStore // nil when the service runs without a database
	Lex   *speller.Lexicon
}

func NewDictionaryHandler(store DictionaryStore, lex *speller.Lexicon) *DictionaryHandler {
	return &DictionaryHandler{Store: store, Lex: lex}
}

type addWordReq struct {
	Word string `json:"word"`
}

type entryPart struct {
	ID         uint64    `json:"id"`
	Word       string    `json:"word"`
	Normalized string    `json:"normalized"`
	CreatedAt  time.Time `json:"created_at"`
}

// List returns all active custom entries, newest first.
func (h *DictionaryHandler) List(c echo.Context) error {
	if h.Store == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "dictionary storage not configured"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	entries, err := h.Store.ListActive(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list failed"})
	}
	out := make([]entryPart, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryPart{ID: e.ID, Word: e.Word, Normalized: e.Normalized, CreatedAt: e.CreatedAt})
	}
	return c.JSON(http.StatusOK, echo.Map{"entries": out, "count": len(out)})
}

// Add persists a custom word and merges it into the live lexicon.
func (h *DictionaryHandler) Add(c echo.Context) error {
	if h.Store == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "dictionary storage not configured"})
	}
	var req addWordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	word := strings.TrimSpace(req.Word)
	normalized := speller.Normalize(word)
	if normalized == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "word must contain letters"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Store.Add(ctx, word, normalized, currentUserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateWord) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "word already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	h.Lex.Add(normalized)

	return c.JSON(http.StatusCreated, echo.Map{
		"id":         id,
		"word":       word,
		"normalized": normalized,
	})
}

// Delete soft-deactivates an entry by id.
func (h *DictionaryHandler) Delete(c echo.Context) error {
	if h.Store == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "dictionary storage not configured"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "entry not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// currentUserID pulls the JWT subject out of the context. JWT numeric
// claims decode as float64.
func currentUserID(c echo.Context) uint64 {
	switch v := c.Get("user_id").(type) {
	case float64:
		return uint64(v)
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return 0
}
