package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-mp/internal/config"
	"github.com/vancomm/minesweeper-mp/internal/repository"
	"github.com/vancomm/minesweeper-mp/internal/session"
)

// History reads aggregated journal data. [repository.Queries] implements it.
type History interface {
	EventCounts(ctx context.Context) ([]repository.EventCount, error)
}

type BoardHandler struct {
	logger  *logrus.Logger
	server  *session.Server
	ws      *config.WebSocket
	history History
	decoder *schema.Decoder
}

func NewBoardHandler(
	logger *logrus.Logger,
	server *session.Server,
	ws *config.WebSocket,
	history History,
) *BoardHandler {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return &BoardHandler{
		logger:  logger,
		server:  server,
		ws:      ws,
		history: history,
		decoder: dec,
	}
}

type BoardQuery struct {
	Format string `schema:"format"`
}

// Board lets spectators see the board without joining the game.
//
//	GET /board?format=text (default) or format=json
func (h BoardHandler) Board(w http.ResponseWriter, r *http.Request) {
	var q BoardQuery
	if err := h.decoder.Decode(&q, r.URL.Query()); err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}

	snap := h.server.Board().Snapshot()
	switch q.Format {
	case "", "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := fmt.Fprintln(w, snap.String()); err != nil {
			h.logger.WithError(err).Error("unable to send board")
		}
	case "json":
		sendJSONOrLog(w, h.logger, snap)
	default:
		sendErrorOrLog(w, h.logger, http.StatusBadRequest,
			fmt.Errorf(`unknown format "%s"`, q.Format))
	}
}

type StatsDTO struct {
	Width   int                     `json:"width"`
	Height  int                     `json:"height"`
	Debug   bool                    `json:"debug"`
	Live    session.Stats           `json:"live"`
	History []repository.EventCount `json:"history,omitempty"`
}

//	GET /stats
func (h BoardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	board := h.server.Board()
	dto := StatsDTO{
		Width:  board.Width(),
		Height: board.Height(),
		Debug:  h.server.Debug(),
		Live:   h.server.Stats(),
	}
	if h.history != nil {
		counts, err := h.history.EventCounts(r.Context())
		if err != nil {
			status := http.StatusInternalServerError
			if repository.IsTransient(err) {
				status = http.StatusServiceUnavailable
			}
			h.logger.WithError(err).Error("unable to read journal")
			sendErrorOrLog(w, h.logger, status, errors.New("journal unavailable"))
			return
		}
		dto.History = counts
	}
	sendJSONOrLog(w, h.logger, dto)
}

// Connect joins the game over a websocket, speaking the same line protocol
// as the TCP port.
//
//	GET /connect
func (h BoardHandler) Connect(w http.ResponseWriter, r *http.Request) {
	conn, err := h.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		h.logger.WithError(err).Warn("unable to upgrade")
		return
	}
	h.logger.WithField("remote_addr", r.RemoteAddr).Debug("established WS connection")

	h.server.Handle(r.Context(), newWSConn(conn), "websocket")
}
