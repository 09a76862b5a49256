package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-mp/internal/config"
	"github.com/vancomm/minesweeper-mp/internal/handlers"
	"github.com/vancomm/minesweeper-mp/internal/middleware"
	"github.com/vancomm/minesweeper-mp/internal/session"
)

// App is the HTTP side of the server: websocket players and spectators.
type App struct {
	logger  *logrus.Logger
	router  *http.ServeMux
	server  *session.Server
	ws      *config.WebSocket
	history handlers.History
	origins []string
}

func New(
	logger *logrus.Logger,
	server *session.Server,
	ws *config.WebSocket,
	history handlers.History,
	origins []string,
) *App {
	app := &App{
		logger:  logger,
		router:  http.NewServeMux(),
		server:  server,
		ws:      ws,
		history: history,
		origins: origins,
	}
	app.loadRoutes()
	return app
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.logger),
		middleware.Cors(a.origins),
	)
}

// Start serves HTTP on addr until ctx is done.
func (a *App) Start(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: a.Handler(),
	}

	done := make(chan error, 1)
	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			done <- fmt.Errorf("unable to listen and serve: %w", err)
		}
		close(done)
	}()

	a.logger.WithField("addr", addr).Info("http listening")
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	}
}
