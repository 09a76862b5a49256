package app

import (
	"github.com/vancomm/minesweeper-mp/internal/handlers"
)

func (a *App) loadRoutes() {
	board := handlers.NewBoardHandler(a.logger, a.server, a.ws, a.history)

	a.router.HandleFunc("GET /board", board.Board)
	a.router.HandleFunc("GET /stats", board.Stats)
	a.router.HandleFunc("GET /connect", board.Connect)
}
