package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ReadLine is the interactive console used when stdin is a terminal. No
// history file is written.
type ReadLine struct {
	rl *readline.Instance
}

func NewReadLine() (*ReadLine, error) {
	return newReadLine(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

func newReadLine(cfg *readline.Config) (*ReadLine, error) {
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to init readline: %w", err)
	}

	return &ReadLine{rl: rl}, nil
}

// splitPrompt separates the lines printed above the input from the line the
// cursor sits on. readline redraws the prompt on every keystroke and only
// handles a single-line prompt.
func splitPrompt(prompt string) (head, last string) {
	i := strings.LastIndexByte(prompt, '\n')
	if i < 0 {
		return "", prompt
	}
	return prompt[:i+1], prompt[i+1:]
}

func (r *ReadLine) ReadLine(prompt string) (string, error) {
	head, last := splitPrompt(prompt)
	if head != "" {
		fmt.Fprint(r.rl.Stdout(), head)
	}
	r.rl.SetPrompt(last)
	for {
		line, err := r.rl.Readline()
		if err == nil {
			return line, nil
		}
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return "", io.EOF // Ctrl+C on an empty prompt
			}
			continue
		}
		return "", err
	}
}

func (r *ReadLine) Println(a ...any) {
	fmt.Fprintln(r.rl.Stdout(), a...)
}

func (r *ReadLine) Printf(format string, a ...any) {
	fmt.Fprintf(r.rl.Stdout(), format, a...)
}

func (r *ReadLine) Close() error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
