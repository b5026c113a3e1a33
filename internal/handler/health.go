package handler // HTTP handlers for the spell checker API

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/itektr/turkish-spellchecker/internal/speller"
)

const (
	serviceName    = "Turkish Spell Checker Service"
	serviceVersion = "1.0.0"
)

// HealthHandler serves the root info endpoint and the liveness probe.
type HealthHandler struct {
	Checker *speller.Checker
}

func NewHealthHandler(chk *speller.Checker) *HealthHandler {
	return &HealthHandler{Checker: chk}
}

// Root reports service identity and lexicon state. Useful as a smoke
// test after deployment.
func (h *HealthHandler) Root(c echo.Context) error {
	msg := "POST /check ile yazım kontrolü yapın"
	if !h.Checker.Ready() {
		msg = "sözlük yüklü değil - servis basit modda"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"service":        serviceName,
		"status":         "running",
		"version":        serviceVersion,
		"lexicon_loaded": h.Checker.Ready(),
		"lexicon_words":  h.Checker.LexiconSize(),
		"message":        msg,
	})
}

// Health is the liveness probe used by load balancers and the hosting
// platform. It always returns 200 while the process runs; lexicon state
// is reported but does not fail the probe.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":         "healthy",
		"lexicon_loaded": h.Checker.Ready(),
		"ready":          true,
	})
}
