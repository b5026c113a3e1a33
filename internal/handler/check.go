package handler

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/itektr/turkish-spellchecker/internal/config"
	"github.com/itektr/turkish-spellchecker/internal/queue"
	queue_publisher "github.com/itektr/turkish-spellchecker/internal/service"
	"github.com/itektr/turkish-spellchecker/internal/speller"
)

// CheckHandler bundles dependencies for the spell-check endpoints.
type CheckHandler struct {
	Cfg     config.Config
	Checker *speller.Checker
	// Publish sends a check event to the broker; swapped out in tests.
	// Nil disables event publishing entirely.
	Publish func(ctx context.Context, ev queue.CheckPerformedEvent) error
}

func NewCheckHandler(cfg config.Config, chk *speller.Checker) *CheckHandler {
	h := &CheckHandler{Cfg: cfg, Checker: chk}
	if queue.BrokerURL() != "" {
		h.Publish = queue_publisher.PublishCheckPerformed
	}
	return h
}

// ----- DTOs -----

type checkReq struct {
	Text           string `json:"text"`
	MaxSuggestions int    `json:"max_suggestions"`
	// Accepted for wire compatibility; morphology is not implemented.
	IncludeMorphology bool `json:"include_morphology"`
}

type checkResp struct {
	Original         string               `json:"original"`
	Corrected        string               `json:"corrected"`
	Corrections      []speller.Correction `json:"corrections"`
	Confidence       float64              `json:"confidence"`
	ProcessingTimeMs float64              `json:"processing_time_ms"`
	WordsChecked     int                  `json:"words_checked"`
	ErrorsFound      int                  `json:"errors_found"`
	LexiconLoaded    bool                 `json:"lexicon_loaded"`
}

type wordResp struct {
	Original      string   `json:"original"`
	Corrected     string   `json:"corrected"`
	IsCorrect     bool     `json:"is_correct"`
	Suggestions   []string `json:"suggestions"`
	LexiconLoaded bool     `json:"lexicon_loaded"`
}

// Check spell-checks a whole text: POST /check with {"text": "..."}.
// Without a loaded lexicon the text is echoed back with zero confidence
// so AI-pipeline callers keep working against a degraded instance.
func (h *CheckHandler) Check(c echo.Context) error {
	var req checkReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	if !h.Checker.Ready() {
		return c.JSON(http.StatusOK, checkResp{
			Original:    req.Text,
			Corrected:   req.Text,
			Corrections: []speller.Correction{},
		})
	}

	if strings.TrimSpace(req.Text) == "" || utf8.RuneCountInString(req.Text) > h.Cfg.MaxTextLen {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": fmt.Sprintf("text must be between 1 and %d characters", h.Cfg.MaxTextLen),
		})
	}

	maxSug := req.MaxSuggestions
	if maxSug <= 0 {
		maxSug = h.Cfg.DefaultSuggestions
	}

	start := time.Now()
	res := h.Checker.Check(req.Text, maxSug)
	elapsed := roundMs(time.Since(start))

	if h.Publish != nil {
		ev := queue.CheckPerformedEvent{
			RequestID:    uuid.NewString(),
			TextLength:   utf8.RuneCountInString(req.Text),
			WordsChecked: res.WordsChecked,
			ErrorsFound:  res.ErrorsFound,
			Confidence:   res.Confidence,
			DurationMs:   elapsed,
			RemoteIP:     c.RealIP(),
			CheckedAt:    time.Now().UTC().Format(time.RFC3339),
		}
		// Best effort in the background; the publisher logs its own errors.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = h.Publish(ctx, ev)
		}()
	}

	return c.JSON(http.StatusOK, checkResp{
		Original:         res.Original,
		Corrected:        res.Corrected,
		Corrections:      res.Corrections,
		Confidence:       res.Confidence,
		ProcessingTimeMs: elapsed,
		WordsChecked:     res.WordsChecked,
		ErrorsFound:      res.ErrorsFound,
		LexiconLoaded:    true,
	})
}

// CheckWord checks a single word passed as a query parameter:
// POST /check-word?word=... It also backs GET /suggest so suggestion
// lookups can flow through the response cache.
func (h *CheckHandler) CheckWord(c echo.Context) error {
	word := c.QueryParam("word")

	if !h.Checker.Ready() {
		return c.JSON(http.StatusOK, wordResp{
			Original:    word,
			Corrected:   word,
			Suggestions: []string{},
		})
	}

	if strings.TrimSpace(word) == "" || utf8.RuneCountInString(word) > h.Cfg.MaxWordLen {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid word"})
	}

	maxSug := h.Cfg.DefaultSuggestions
	if s := c.QueryParam("max_suggestions"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			maxSug = n
		}
	}

	res := h.Checker.CheckWord(word, maxSug)
	sugs := res.Suggestions
	if sugs == nil {
		sugs = []string{}
	}
	return c.JSON(http.StatusOK, wordResp{
		Original:      res.Original,
		Corrected:     res.Corrected,
		IsCorrect:     res.Correct,
		Suggestions:   sugs,
		LexiconLoaded: true,
	})
}

func roundMs(d time.Duration) float64 {
	return math.Round(float64(d.Microseconds())/10.0) / 100.0
}
