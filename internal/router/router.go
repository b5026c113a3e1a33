package router // route registration for the API

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/itektr/turkish-spellchecker/internal/handler"
	"github.com/itektr/turkish-spellchecker/internal/middleware"
)

// RegisterPublic registers the unauthenticated endpoints: service info,
// the liveness probe and the spell-check operations. The rate limiter
// guards the check endpoints; the response cache only ever fires for
// GET (so /suggest benefits, /check never does).
func RegisterPublic(e *echo.Echo, h *handler.HealthHandler, chk *handler.CheckHandler,
	rate echo.MiddlewareFunc, cache echo.MiddlewareFunc) {

	e.GET("/", h.Root)
	e.GET("/health", h.Health)

	e.POST("/check", chk.Check, rate)
	e.POST("/check-word", chk.CheckWord, rate)
	e.GET("/suggest", chk.CheckWord, rate, cache)
}

// RegisterAuth registers the auth endpoints and the protected group.
// Registration/login/refresh live under /v1/auth; /v1/me requires a
// valid access token of any role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("ADMIN", "CLIENT"))
	auth.GET("/me", a.Me)
}

// RegisterDictionary registers the custom dictionary management routes.
// Listing is open to any authenticated role; writes need ADMIN.
func RegisterDictionary(e *echo.Echo, d *handler.DictionaryHandler, jwtSecret string) {
	g := e.Group("/v1/dictionary")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.GET("", d.List, middleware.RequireRole("ADMIN", "CLIENT"))
	g.POST("", d.Add, middleware.RequireRole("ADMIN"))
	g.DELETE("/:id", d.Delete, middleware.RequireRole("ADMIN"))
}

// BaseMiddleware wires Echo's logger/recover and permissive CORS (the
// upstream AI pipeline calls this service from browsers during
// development).
func BaseMiddleware(e *echo.Echo) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
}
