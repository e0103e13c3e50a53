package main

import (
	"github.com/sandevgo/patterns/internal/service/classroom"
	"github.com/sandevgo/patterns/internal/service/furniture"
	"github.com/sandevgo/patterns/internal/service/meal"
	"github.com/sandevgo/patterns/internal/service/orgchart"
	"github.com/sandevgo/patterns/internal/service/session"
	"github.com/sandevgo/patterns/internal/service/travel"
	"github.com/sandevgo/patterns/internal/service/ui"
	"github.com/sandevgo/patterns/internal/service/vacation"
	"github.com/sandevgo/patterns/internal/service/webpage"
	"github.com/spf13/cobra"
)

type demo struct {
	name        string
	description string
	new         func() *session.Session
}

var demos = []demo{
	{name: webpage.Name, description: webpage.Description, new: webpage.New},
	{name: furniture.Name, description: furniture.Description, new: furniture.New},
	{name: meal.Name, description: meal.Description, new: meal.New},
	{name: orgchart.Name, description: orgchart.Description, new: orgchart.New},
	{name: travel.Name, description: travel.Description, new: travel.New},
	{name: vacation.Name, description: vacation.Description, new: vacation.New},
	{name: classroom.Name, description: classroom.Description, new: classroom.New},
}

func findDemo(name string) (demo, bool) {
	for _, d := range demos {
		if d.name == name {
			return d, true
		}
	}
	return demo{}, false
}

func demoChoices() []ui.Choice {
	choices := make([]ui.Choice, len(demos))
	for i, d := range demos {
		choices[i] = ui.Choice{ID: d.name, Name: d.name, Desc: d.description}
	}
	return choices
}

func demoCommand(d demo) *cobra.Command {
	return &cobra.Command{
		Use:          d.name,
		Short:        d.description,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, d)
		},
	}
}

func init() {
	for _, d := range demos {
		rootCmd.AddCommand(demoCommand(d))
	}
}
