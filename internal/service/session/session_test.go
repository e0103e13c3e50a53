package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/sandevgo/patterns/internal/core"
	"github.com/sandevgo/patterns/internal/service/command"
	"github.com/sandevgo/patterns/internal/transport/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(items *[]string) *command.Router {
	return command.New([]core.Command{
		command.Action("Add", "add an item", func(ctx context.Context, con core.Console) error {
			name, err := command.AskString(con, "Name: ")
			if err != nil {
				return err
			}
			*items = append(*items, name)
			return nil
		}),
		command.Action("DisplayAll", "list items", func(ctx context.Context, con core.Console) error {
			command.PrintList(con, "Items:", "No items.", *items)
			return nil
		}),
		command.Action("Fail", "always fails", func(ctx context.Context, con core.Console) error {
			return errors.New("broken")
		}),
		command.Action("Panic", "always panics", func(ctx context.Context, con core.Console) error {
			panic("boom")
		}),
	})
}

func run(t *testing.T, s *Session, script string) string {
	t.Helper()
	var out bytes.Buffer
	err := s.Run(context.Background(), cli.NewPlain(strings.NewReader(script), &out))
	require.NoError(t, err)
	return out.String()
}

func TestSession_SentinelTerminates(t *testing.T) {
	var items []string
	s := New("list", newRouter(&items), "Exit", OnExit(func(ctx context.Context, con core.Console) bool {
		con.Println("Exiting...")
		return true
	}))

	out := run(t, s, "Add\napple\nexit\nAdd\npear\n")

	assert.Equal(t, Terminated, s.State())
	assert.Equal(t, []string{"apple"}, items)
	assert.Contains(t, out, "Exiting...")
	assert.Contains(t, out, "Enter command (Add, DisplayAll, Fail, Panic, Exit): ")
}

func TestSession_EndOfInputTerminates(t *testing.T) {
	var items []string
	exitCalled := false
	s := New("list", newRouter(&items), "Exit", OnExit(func(ctx context.Context, con core.Console) bool {
		exitCalled = true
		return true
	}))

	run(t, s, "Add\napple\n")

	assert.Equal(t, Terminated, s.State())
	assert.False(t, exitCalled)
	assert.Equal(t, []string{"apple"}, items)
}

func TestSession_EOFInsideCommandTerminates(t *testing.T) {
	var items []string
	s := New("list", newRouter(&items), "Exit")

	out := run(t, s, "Add\n")

	assert.Equal(t, Terminated, s.State())
	assert.Empty(t, items)
	assert.NotContains(t, out, UnexpectedMessage)
}

func TestSession_RecoversFromFailures(t *testing.T) {
	var items []string
	s := New("list", newRouter(&items), "Exit", WithPrompt(""))

	out := run(t, s, "Fail\nPanic\nBogus\n\nAdd\nkiwi\nDisplayAll\nExit\n")

	assert.Equal(t, 2, strings.Count(out, UnexpectedMessage))
	assert.Contains(t, out, "Invalid command.")
	assert.Contains(t, out, "Items:\nkiwi\n")
}

func TestSession_OversizedLineIsNotFatal(t *testing.T) {
	var items []string
	s := New("list", newRouter(&items), "Exit", WithPrompt(""), OnExit(func(ctx context.Context, con core.Console) bool {
		con.Println("Exiting...")
		return true
	}))

	out := run(t, s, strings.Repeat("z", 70*1024)+"\nAdd\napple\nExit\n")

	assert.Equal(t, Terminated, s.State())
	assert.Equal(t, []string{"apple"}, items)
	assert.Contains(t, out, "Invalid command.\n")
	assert.Contains(t, out, "Exiting...\n")
}

func TestSession_ExitHookCanKeepSessionAlive(t *testing.T) {
	depth := 2
	var items []string
	s := New("nested", newRouter(&items), "Done",
		WithPromptFunc(func() string { return fmt.Sprintf("[%d] ", depth) }),
		OnExit(func(ctx context.Context, con core.Console) bool {
			depth--
			return depth == 0
		}),
	)

	out := run(t, s, "Done\nDone\nDone\n")

	assert.Equal(t, 0, depth)
	assert.Equal(t, "[2] [1] ", out)
}

func TestSession_DisplayIsIdempotent(t *testing.T) {
	var items []string
	s := New("list", newRouter(&items), "Exit", WithPrompt(""))

	out := run(t, s, "Add\na\nAdd\nb\nDisplayAll\nDisplayAll\nExit\n")

	parts := strings.SplitN(out, "Items:", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, parts[1], parts[2])
}

func TestSession_Banner(t *testing.T) {
	var items []string
	s := New("list", newRouter(&items), "Exit", WithBanner("Welcome"), WithPrompt(""))

	assert.Equal(t, "Welcome\n", run(t, s, ""))
	assert.Equal(t, "list", s.Name())
}

func TestSession_ContextCancelled(t *testing.T) {
	var items []string
	s := New("list", newRouter(&items), "Exit")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, cli.NewPlain(strings.NewReader("Add\nx\n"), io.Discard))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, items)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "AwaitingInput", AwaitingInput.String())
	assert.Equal(t, "Terminated", Terminated.String())
	assert.Equal(t, "State(7)", State(7).String())
}

func TestService_RunsSessionUntilExit(t *testing.T) {
	var items []string
	var out bytes.Buffer
	s := New("test", newRouter(&items), "Exit")
	svc := NewService(s, cli.NewPlain(strings.NewReader("Add\napple\nExit\n"), &out))

	require.NoError(t, svc.Start(context.Background()))
	require.NoError(t, svc.Shutdown(context.Background()))
	assert.Equal(t, Terminated, s.State())
	assert.Equal(t, []string{"apple"}, items)
}
