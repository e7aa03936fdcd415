package numfile

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/macropower/fivesquare/pkg/squareerrors"
)

// ErrNoNumber indicates a file holds no token to parse.
var ErrNoNumber = errors.New("no number found")

// Read returns the first whitespace-delimited integer in fileName. Leading
// whitespace is skipped and anything after the first token is never read.
// A [squareerrors.FileReadError] carries the line the token started on, or
// the line the file ended on when there is no token.
func Read(fileName string) (int, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return 0, squareerrors.NewFileOpenError(fileName, err)
	}
	defer f.Close() //nolint:errcheck // Read-only handle.

	return parse(fileName, f)
}

func parse(fileName string, r io.Reader) (int, error) {
	var token strings.Builder

	line := 1
	br := bufio.NewReader(r)

	for {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return 0, squareerrors.NewFileReadError(fileName, line, err)
		}

		if isSpace(c) {
			if token.Len() > 0 {
				break
			}

			if c == '\n' {
				line++
			}

			continue
		}

		token.WriteByte(c)
	}

	if token.Len() == 0 {
		return 0, squareerrors.NewFileReadError(fileName, line, ErrNoNumber)
	}

	number, err := strconv.Atoi(token.String())
	if err != nil {
		return 0, squareerrors.NewFileReadError(fileName, line, err)
	}

	return number, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// Write replaces the content of fileName with result followed by a newline.
// The file is created with mode 0o644 if it does not exist.
func Write(fileName string, result float64) (err error) {
	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return squareerrors.NewFileOpenError(fileName, err)
	}

	defer func() {
		cerr := f.Close()
		if cerr != nil && err == nil {
			err = squareerrors.NewFileWriteError(fileName, cerr)
		}
	}()

	w := bufio.NewWriter(f)

	_, err = w.WriteString(Format(result) + "\n")
	if err != nil {
		return squareerrors.NewFileWriteError(fileName, err)
	}

	err = w.Flush()
	if err != nil {
		return squareerrors.NewFileWriteError(fileName, err)
	}

	return nil
}

// Format returns the shortest decimal representation of result that parses
// back to the same value, without an exponent.
func Format(result float64) string {
	return strconv.FormatFloat(result, 'f', -1, 64)
}
