package session

import (
	"errors"
	"strconv"
	"strings"
)

type command string

const (
	cmdLook   command = "look"
	cmdHelp   command = "help"
	cmdBye    command = "bye"
	cmdDig    command = "dig"
	cmdFlag   command = "flag"
	cmdDeflag command = "deflag"
)

// Maps known commands to number of arguments
var commandNargs = map[command]int{
	cmdLook:   0,
	cmdHelp:   0,
	cmdBye:    0,
	cmdDig:    2,
	cmdFlag:   2,
	cmdDeflag: 2,
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidArgs    = errors.New("invalid number of arguments")
)

type request struct {
	cmd  command
	x, y int
}

// parseRequest matches a single protocol line. Tokens are separated by exactly
// one space and coordinates are optionally negative decimal integers.
func parseRequest(line string) (req request, err error) {
	tokens := strings.Split(line, " ")
	req.cmd = command(tokens[0])
	nargs, ok := commandNargs[req.cmd]
	if !ok {
		return req, ErrUnknownCommand
	}
	if nargs != len(tokens)-1 {
		return req, ErrInvalidArgs
	}
	if nargs == 2 {
		req.x, req.y, err = parseXY(tokens[1:])
	}
	return req, err
}

func parseXY(args []string) (x int, y int, err error) {
	if x, err = parseCoord(args[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = parseCoord(args[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func parseCoord(s string) (int, error) {
	if strings.HasPrefix(s, "+") {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s)
}
