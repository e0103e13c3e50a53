package meal

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/patterns/internal/core"
	"github.com/sandevgo/patterns/internal/service/command"
	"github.com/sandevgo/patterns/internal/service/session"
	"github.com/sandevgo/patterns/pkg/log"
)

const (
	Name        = "meal"
	Description = "Template: prepare meals from your own recipes"
	exitCommand = "Exit"
)

func printMeals(con core.Console, title, empty string, meals []Recipe) {
	lines := make([]string, len(meals))
	for i, m := range meals {
		lines[i] = m.String()
	}
	command.PrintList(con, title, empty, lines)
}

func NewCommands(book *Cookbook) []core.Command {
	displayAll := command.Action("DisplayAll", "List prepared meals", func(ctx context.Context, con core.Console) error {
		printMeals(con, "Previously prepared meals:", "No previous meals prepared.", book.Meals())
		return nil
	})

	return []core.Command{
		command.Action("Enter Recipe", "Prepare a new meal", func(ctx context.Context, con core.Console) error {
			con.Println("Enter details for the meal preparation:")
			dish, err := command.AskString(con, "Enter the name of the dish: ")
			if err != nil {
				return err
			}
			ingredients, err := command.AskString(con, "Enter ingredients: ")
			if err != nil {
				return err
			}
			instructions, err := command.AskString(con, "Enter cooking instructions: ")
			if err != nil {
				return err
			}

			r := UserRecipe{DishName: dish, Ingredients: ingredients, Instructions: instructions}
			Prepare(r, con)
			book.Add(r)
			log.FromCtx(ctx).Debug().Str("dish", dish).Msg("meal prepared")
			return nil
		}),
		displayAll,
		command.Action("Search", "Find meals by dish name", func(ctx context.Context, con core.Console) error {
			keyword, err := command.AskString(con, "Enter the keyword to search for: ")
			if err != nil {
				return err
			}
			keyword = strings.ToLower(keyword)

			found := book.Search(keyword)
			if len(found) == 0 {
				con.Println(fmt.Sprintf("No meals found with the keyword \"%s\". Displaying all meals.", keyword))
				return displayAll.Execute(ctx, con, nil)
			}
			printMeals(con, fmt.Sprintf("Found meals matching the keyword \"%s\":", keyword), "", found)
			return nil
		}),
	}
}

func New() *session.Session {
	return session.New(Name, command.New(NewCommands(NewCookbook())), exitCommand,
		session.OnExit(func(ctx context.Context, con core.Console) bool {
			con.Println("Exiting...")
			log.FromCtx(ctx).Info().Msg("application exiting")
			return true
		}),
	)
}
