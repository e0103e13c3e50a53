package furniture

import (
	"context"
	"fmt"

	"github.com/sandevgo/patterns/internal/core"
	"github.com/sandevgo/patterns/internal/service/command"
	"github.com/sandevgo/patterns/internal/service/session"
	"github.com/sandevgo/patterns/pkg/log"
)

const (
	Name        = "furniture"
	Description = "Factory: design tables, chairs and sofas"
	exitCommand = "Exit"
)

func NewCommands(w *Workshop) []core.Command {
	return []core.Command{
		command.Action("Add", "Build a piece of furniture", func(ctx context.Context, con core.Console) error {
			typeName, err := command.AskString(con, fmt.Sprintf("Select Furniture Type (%s): ", Kinds.List()))
			if err != nil {
				return err
			}
			material, err := command.AskString(con, "Enter material for the furniture: ")
			if err != nil {
				return err
			}

			kind, err := Kinds.Resolve(typeName)
			if err != nil {
				log.FromCtx(ctx).Warn().Err(err).Msg("invalid furniture type")
				con.Println("Invalid furniture type.")
				return nil
			}

			f := w.Build(kind, material)
			con.Println(f.Design())
			con.Println("Material used: " + f.Material())
			return nil
		}),
		command.Action("DisplayAll", "List all furniture", func(ctx context.Context, con core.Console) error {
			items := w.Items()
			lines := make([]string, len(items))
			for i, f := range items {
				lines[i] = fmt.Sprintf("Type: %s, Material: %s", f.Kind(), f.Material())
			}
			command.PrintList(con, "List of all furniture:", "No furniture items available.", lines)
			return nil
		}),
		command.Action("Delete", "Remove all furniture of a type", func(ctx context.Context, con core.Console) error {
			typeName, err := command.AskString(con, fmt.Sprintf("Enter type of furniture to delete (%s): ", Kinds.List()))
			if err != nil {
				return err
			}
			if w.RemoveKind(typeName) > 0 {
				con.Println(typeName + " items removed successfully.")
			} else {
				con.Println("No " + typeName + " items found.")
			}
			return nil
		}),
	}
}

func New() *session.Session {
	return session.New(Name, command.New(NewCommands(NewWorkshop())), exitCommand,
		session.OnExit(func(ctx context.Context, con core.Console) bool {
			con.Println("Exiting...")
			return true
		}),
	)
}
