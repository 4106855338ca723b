// Package server exposes the chat core over HTTP: JSON endpoints for join,
// send and leave, and a Server-Sent Events stream for message delivery.
package server

import (
	"context"
	"log/slog"

	"chat-rooms/contract"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo     *echo.Echo
	log      *slog.Logger
	chat     contract.IChatService
	validate *validator.Validate
}

func NewServer(log *slog.Logger, chat contract.IChatService) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	srv := &Server{
		echo:     e,
		log:      log,
		chat:     chat,
		validate: validator.New(),
	}
	srv.registerRoutes()
	return srv
}

// Start blocks serving HTTP until Shutdown is called or the listener fails.
func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

// Shutdown drains in-flight requests; open SSE streams end when their
// request contexts are canceled.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying handler, used by tests to serve over httptest.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
