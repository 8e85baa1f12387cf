package http

import (
	"net/http"
	"time"

	"biztime/internal/adapter/middleware"
	"biztime/internal/usecase/company"
	"biztime/internal/usecase/invoice"
	"biztime/pkg/id"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// StatusPolicy picks the success status for non-create responses.
// Legacy clients expect 201 on every success.
type StatusPolicy struct{ Legacy bool }

func (p StatusPolicy) OK() int {
	if p.Legacy {
		return http.StatusCreated
	}
	return http.StatusOK
}

type Deps struct {
	Companies *company.Usecase
	Invoices  *invoice.Usecase

	// nil disables idempotent replays
	Redis          *redis.Client
	IdempotencyTTL time.Duration

	LegacyStatus bool
	Log          zerolog.Logger

	// probed by GET /health
	Checks map[string]Check
}

// NewEcho builds the echo instance with the shared middleware stack and
// error handler; routes are added by RegisterRoutes.
func NewEcho(log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewErrorHandler(log)

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: id.NewID32}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())
	return e
}

func RegisterRoutes(e *echo.Echo, d Deps) {
	e.GET("/health", NewHandler(d.Checks).Health)

	var mutating []echo.MiddlewareFunc
	if d.Redis != nil {
		mutating = append(mutating, middleware.Idempotency(d.Redis, d.IdempotencyTTL, d.Log))
	}
	status := StatusPolicy{Legacy: d.LegacyStatus}

	ch := NewCompanyHandler(d.Companies, status)
	companies := e.Group("/companies")
	companies.GET("", ch.List)
	companies.GET("/:code", ch.Get)
	companies.POST("", ch.Create, mutating...)
	companies.PUT("/:code", ch.Update, mutating...)
	companies.DELETE("/:code", ch.Delete, mutating...)

	ih := NewInvoiceHandler(d.Invoices, status)
	invoices := e.Group("/invoices")
	invoices.GET("", ih.List)
	invoices.GET("/:id", ih.Get)
	invoices.POST("", ih.Create, mutating...)
	invoices.PUT("/:id", ih.Update, mutating...)
	invoices.DELETE("/:id", ih.Delete, mutating...)
}
