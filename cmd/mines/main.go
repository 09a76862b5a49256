package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-mp/internal/app"
	"github.com/vancomm/minesweeper-mp/internal/config"
	"github.com/vancomm/minesweeper-mp/internal/database"
	"github.com/vancomm/minesweeper-mp/internal/handlers"
	"github.com/vancomm/minesweeper-mp/internal/journal"
	"github.com/vancomm/minesweeper-mp/internal/repository"
	"github.com/vancomm/minesweeper-mp/internal/session"
)

const journalBuffer = 256

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr, config.HTTPAddr())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := config.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := run(mainCtx, log, opts); err != nil {
		log.Fatal("exit reason: ", err)
	}
}

func run(ctx context.Context, log *logrus.Logger, opts *options) error {
	board, err := opts.loadBoard()
	if err != nil {
		return fmt.Errorf("unable to create board: %w", err)
	}

	log.WithFields(logrus.Fields{
		"width":  board.Width(),
		"height": board.Height(),
		"debug":  opts.debug,
		"file":   opts.file,
	}).Info("starting up")

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", opts.port))
	if err != nil {
		return fmt.Errorf("unable to listen: %w", err)
	}
	defer ln.Close()

	var ws *config.WebSocket
	if opts.httpAddr != "" {
		if ws, err = config.NewWebSocket(config.CorsOrigins()); err != nil {
			return err
		}
	}

	g, gCtx := errgroup.WithContext(ctx)

	serverOpts := []session.Option{session.WithDebug(opts.debug)}
	var (
		history handlers.History
		j       *journal.Journal
	)

	pool, err := database.ConnectAndMigrate(gCtx)
	switch {
	case errors.Is(err, config.ErrNoDatabase):
		log.Info("no database configured, journal disabled")
	case err != nil:
		return err
	default:
		defer pool.Close()
		queries := repository.New(pool)
		j = journal.New(queries, log, journalBuffer)
		g.Go(j.Run)
		serverOpts = append(serverOpts, session.WithRecorder(j))
		history = queries
		log.WithField("max_conns", pool.Config().MaxConns).Info("journal enabled")
	}

	server := session.New(board, log, serverOpts...)
	g.Go(func() error {
		err := server.Serve(gCtx, ln)
		// every session has been recorded by now
		if j != nil {
			j.Close()
		}
		return err
	})

	if ws != nil {
		a := app.New(log, server, ws, history, config.CorsOrigins())
		g.Go(func() error {
			return a.Start(gCtx, opts.httpAddr)
		})
	}

	return g.Wait()
}
