package webpage

import (
	"context"
	"fmt"

	"github.com/sandevgo/patterns/internal/core"
	"github.com/sandevgo/patterns/internal/service/command"
	"github.com/sandevgo/patterns/internal/service/session"
	"github.com/sandevgo/patterns/pkg/log"
)

const (
	Name        = "webpage"
	Description = "Decorator: style a web page layer by layer"
	exitCommand = "done"
)

func NewCommands(editor *Editor) []core.Command {
	commands := make([]core.Command, 0, len(Styles.Values())+3)
	for _, style := range Styles.Values() {
		style := style
		commands = append(commands, command.Action(style.String(), "Apply "+style.String(),
			func(ctx context.Context, con core.Console) error {
				page := editor.Apply(style)
				log.FromCtx(ctx).Debug().Stringer("style", style).Msg("decorator applied")
				con.Println("Updated Web Page Content: " + page.Content())
				return nil
			}))
	}

	return append(commands,
		command.Action("Display", "Show the current page", func(ctx context.Context, con core.Console) error {
			con.Println("Current Web Page Content: " + editor.Page().Content())
			return nil
		}),
		command.Action("Delete", "Reset the page", func(ctx context.Context, con core.Console) error {
			editor.Reset()
			con.Println("Web Page Content has been reset.")
			return nil
		}),
		command.Action("Undo", "Remove the last style", func(ctx context.Context, con core.Console) error {
			if !editor.Undo() {
				con.Println("Nothing to undo.")
				return nil
			}
			con.Println("Updated Web Page Content: " + editor.Page().Content())
			return nil
		}),
	)
}

func New() *session.Session {
	editor := NewEditor()
	banner := fmt.Sprintf("Enter decorator to apply (%s), 'Display' to view, 'Delete' to reset, 'Undo' to remove the last style, or '%s' to finish:",
		Styles.List(), exitCommand)

	return session.New(Name, command.New(NewCommands(editor)), exitCommand,
		session.WithBanner(banner),
		session.WithPrompt("> "),
		session.OnExit(func(ctx context.Context, con core.Console) bool {
			con.Println("Final Web Page Content: " + editor.Page().Content())
			return true
		}),
	)
}
