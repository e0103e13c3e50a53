package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Plain reads newline-delimited input from any reader. It serves pipes,
// redirected files and tests. Lines have no length limit.
type Plain struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPlain(in io.Reader, out io.Writer) *Plain {
	return &Plain{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (p *Plain) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil {
		// A final line without a newline is still a line
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

func (p *Plain) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Plain) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

func (p *Plain) Close() error {
	return nil
}
