package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/vancomm/minesweeper-mp/internal/mines"
)

const (
	defaultPort = 4444
	maximumPort = 65535
	defaultSize = 10

	usage = "usage: mines [--debug | --no-debug] [--port PORT] [--size SIZE_X,SIZE_Y | --file FILE] [--http ADDR]"
)

type options struct {
	debug    bool
	port     int
	width    int
	height   int
	file     string
	httpAddr string
}

func parseFlags(args []string, output io.Writer, httpAddr string) (*options, error) {
	opts := &options{
		port:     defaultPort,
		width:    defaultSize,
		height:   defaultSize,
		httpAddr: httpAddr,
	}

	fs := flag.NewFlagSet("mines", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { fmt.Fprintln(output, usage) }

	fs.BoolFunc("debug", "keep players connected after they dig up a mine", func(s string) error {
		debug, err := strconv.ParseBool(s)
		if err != nil {
			return errors.New("unable to parse boolean")
		}
		opts.debug = debug
		return nil
	})
	fs.BoolFunc("no-debug", "disconnect players after they dig up a mine (default)", func(s string) error {
		noDebug, err := strconv.ParseBool(s)
		if err != nil {
			return errors.New("unable to parse boolean")
		}
		opts.debug = !noDebug
		return nil
	})
	fs.Func("port", "TCP port to accept players on (default 4444)", func(s string) error {
		port, err := strconv.Atoi(s)
		if err != nil {
			return errors.New("unable to parse number")
		}
		if port < 0 || port > maximumPort {
			return fmt.Errorf("port %d out of range", port)
		}
		opts.port = port
		return nil
	})
	sizeSet := false
	fs.Func("size", "generate a random SIZE_X,SIZE_Y board (default 10,10)", func(s string) error {
		w, h, err := mines.ParseSize(s)
		if err != nil {
			return err
		}
		opts.width, opts.height, sizeSet = w, h, true
		return nil
	})
	fs.StringVar(&opts.file, "file", "", "load the board from FILE")
	fs.StringVar(&opts.httpAddr, "http", opts.httpAddr, "websocket and spectator address, empty to disable")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf(`unknown argument: "%s"`, fs.Arg(0))
	}
	if sizeSet && opts.file != "" {
		fs.Usage()
		return nil, errors.New("--size and --file may not be specified together")
	}
	return opts, nil
}

// loadBoard builds the single board this process serves.
func (o *options) loadBoard() (*mines.Board, error) {
	if o.file != "" {
		return mines.LoadBoardFile(o.file)
	}
	return mines.RandomBoard(o.width, o.height, mines.DefaultDensity, mines.NewRand())
}
