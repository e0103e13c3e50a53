package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sandevgo/patterns/internal/core"
	"github.com/sandevgo/patterns/pkg/textkey"
)

var ErrNotANumber = errors.New("not a number")

func AskString(con core.Console, prompt string) (string, error) {
	line, err := con.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskInt reads a whole number. Malformed input yields ErrNotANumber; read
// errors such as io.EOF are returned unchanged.
func AskInt(con core.Console, prompt string) (int, error) {
	s, err := AskString(con, prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return n, nil
}

// Confirm treats "yes" (any case) as consent and everything else as refusal.
func Confirm(con core.Console, prompt string) (bool, error) {
	s, err := AskString(con, prompt)
	if err != nil {
		return false, err
	}
	return textkey.Equal(s, "yes"), nil
}
