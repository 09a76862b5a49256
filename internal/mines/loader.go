package mines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxRowBytes fits a row of half a million columns.
const maxRowBytes = 1 << 20

// LoadBoard parses a board file: a "W H" header line followed by H rows of W
// space separated 0/1 tokens, 1 marking a mine. Lines may end in \n or \r\n.
func LoadBoard(r io.Reader) (*Board, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxRowBytes)
	lineNo := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimSuffix(sc.Text(), "\r"), true
	}

	header, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, readError(lineNo+1, err)
		}
		return nil, configErrorf("empty board file")
	}
	dims := strings.Split(header, " ")
	if len(dims) != 2 {
		return nil, configErrorf(`line 1: want "W H", got "%s"`, header)
	}
	width, err := strconv.Atoi(dims[0])
	if err != nil {
		return nil, configErrorf("line 1: width must be an int")
	}
	height, err := strconv.Atoi(dims[1])
	if err != nil {
		return nil, configErrorf("line 1: height must be an int")
	}
	if width <= 0 || height <= 0 {
		return nil, configErrorf("line 1: dimensions must be positive, got %dx%d", width, height)
	}

	var mines []Point
	for y := range height {
		line, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, readError(lineNo+1, err)
			}
			return nil, configErrorf("want %d rows, got %d", height, y)
		}
		vals := strings.Split(line, " ")
		if len(vals) != width {
			return nil, configErrorf("line %d: want %d values, got %d", lineNo, width, len(vals))
		}
		for x, v := range vals {
			switch v {
			case "0":
			case "1":
				mines = append(mines, Point{x, y})
			default:
				return nil, configErrorf(`line %d: value "%s" is neither 0 nor 1`, lineNo, v)
			}
		}
	}
	for {
		line, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(line) != "" {
			return nil, configErrorf("line %d: unexpected content after %d rows", lineNo, height)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, readError(lineNo+1, err)
	}

	return NewBoard(width, height, mines)
}

func readError(lineNo int, err error) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return configErrorf("line %d: longer than %d bytes", lineNo, maxRowBytes)
	}
	return fmt.Errorf("unable to read board: %w", err)
}

func LoadBoardFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open board file: %w", err)
	}
	defer f.Close()
	return LoadBoard(f)
}
