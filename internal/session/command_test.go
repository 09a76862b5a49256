package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		line string
		want request
	}{
		{"look", request{cmd: cmdLook}},
		{"help", request{cmd: cmdHelp}},
		{"bye", request{cmd: cmdBye}},
		{"dig 3 4", request{cmd: cmdDig, x: 3, y: 4}},
		{"dig -1 -20", request{cmd: cmdDig, x: -1, y: -20}},
		{"flag 0 7", request{cmd: cmdFlag, x: 0, y: 7}},
		{"deflag 10 0", request{cmd: cmdDeflag, x: 10, y: 0}},
	}
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			req, err := parseRequest(test.line)
			assert.NoError(t, err)
			assert.Equal(t, test.want, req)
		})
	}
}

func TestParseRequestRejects(t *testing.T) {
	tests := []struct {
		line string
		err  error
	}{
		{"", ErrUnknownCommand},
		{"LOOK", ErrUnknownCommand},
		{"dance 1 2", ErrUnknownCommand},
		{" look", ErrUnknownCommand},
		{"look ", ErrInvalidArgs},
		{"look 1", ErrInvalidArgs},
		{"dig 1", ErrInvalidArgs},
		{"dig 1 2 3", ErrInvalidArgs},
		{"dig  1 2", ErrInvalidArgs},
		{"bye now", ErrInvalidArgs},
	}
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			_, err := parseRequest(test.line)
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestParseRequestBadCoordinates(t *testing.T) {
	for _, line := range []string{
		"dig a 1",
		"flag 1 b",
		"dig +1 2",
		"deflag 1.5 2",
		"dig 1 99999999999999999999999",
		"dig - 1",
	} {
		_, err := parseRequest(line)
		assert.Error(t, err, line)
	}
}
