package orgchart

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandevgo/patterns/internal/core"
	"github.com/sandevgo/patterns/internal/service/command"
	"github.com/sandevgo/patterns/internal/service/session"
	"github.com/sandevgo/patterns/pkg/log"
)

const (
	Name        = "orgchart"
	Description = "Composite: build an organizational chart of groups and employees"
	RootGroup   = "Company"
	doneChoice  = "5"
)

// navigator tracks which group the menu is operating on. Entering a new
// group pushes it; choosing Done pops back to the parent.
type navigator struct {
	chart *Chart
	stack []*Group
}

func (n *navigator) current() *Group {
	return n.stack[len(n.stack)-1]
}

func (n *navigator) menu() string {
	return fmt.Sprintf("Current group: %s\n"+
		"1. Add Individual Employee\n"+
		"2. Add Group\n"+
		"3. Display Leader\n"+
		"4. Display Members\n"+
		"5. Done\n"+
		"6. Remove Individual Employee\n", n.current().Name())
}

func (n *navigator) selectGroup(con core.Console) (*Group, error) {
	con.Println("Select a group to add the employee:")
	groups := n.chart.Groups()
	for i, g := range groups {
		con.Printf("%d. %s\n", i+1, g.Name())
	}

	choice, err := command.AskInt(con, "Enter group number: ")
	if err != nil && !errors.Is(err, command.ErrNotANumber) {
		return nil, err
	}
	if err != nil || choice < 1 || choice > len(groups) {
		con.Println("Invalid group number.")
		return nil, nil
	}
	return groups[choice-1], nil
}

func (n *navigator) addIndividual(ctx context.Context, con core.Console) error {
	group, err := n.selectGroup(con)
	if err != nil {
		return err
	}
	if group == nil {
		con.Println("No valid group selected. Operation canceled.")
		return nil
	}

	name, err := command.AskString(con, "Enter employee name: ")
	if err != nil {
		return err
	}
	position, err := command.AskString(con, "Enter employee position: ")
	if err != nil {
		return err
	}

	if err := n.chart.AddIndividual(group, name, position); err != nil {
		if errors.Is(err, ErrDuplicateEmployee) {
			log.FromCtx(ctx).Warn().Err(err).Msg("duplicate employee refused")
			con.Printf("Error: Employee %s is already in another group.\n", name)
			return nil
		}
		return err
	}
	return nil
}

func (n *navigator) addGroup(ctx context.Context, con core.Console) error {
	name, err := command.AskString(con, "Enter group name: ")
	if err != nil {
		return err
	}

	var leader *Individual
	leaderName, err := command.AskString(con, "Enter leader name (or press Enter to skip): ")
	if err != nil {
		return err
	}
	if leaderName != "" {
		position, err := command.AskString(con, "Enter leader position: ")
		if err != nil {
			return err
		}
		leader = NewIndividual(leaderName, position)
	}

	group, err := n.chart.AddGroup(n.current(), name, leader)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmployee) {
			log.FromCtx(ctx).Warn().Err(err).Msg("duplicate leader refused")
			con.Printf("Error: Employee %s is already in another group.\n", leaderName)
			return nil
		}
		return err
	}

	con.Println("Adding employees and groups to " + name)
	n.stack = append(n.stack, group)
	return nil
}

func (n *navigator) displayLeader(ctx context.Context, con core.Console) error {
	g := n.current()
	if l := g.Leader(); l != nil {
		con.Printf("Leader of %s: %s, Position: %s\n", g.Name(), l.Name(), l.Position())
	} else {
		con.Println("No leader assigned for group " + g.Name())
	}
	return nil
}

func (n *navigator) displayMembers(ctx context.Context, con core.Console) error {
	con.Printf("%s", n.current().RenderMembers())
	return nil
}

func (n *navigator) removeIndividual(ctx context.Context, con core.Console) error {
	name, err := command.AskString(con, "Enter employee name to remove: ")
	if err != nil {
		return err
	}
	if err := n.chart.RemoveIndividual(n.current(), name); err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			con.Printf("Employee %s is not a member of %s.\n", name, n.current().Name())
			return nil
		}
		return err
	}
	con.Printf("Employee %s removed from %s.\n", name, n.current().Name())
	return nil
}

// done leaves the current group. Leaving the root prints the whole chart
// and ends the session.
func (n *navigator) done(ctx context.Context, con core.Console) bool {
	n.stack = n.stack[:len(n.stack)-1]
	if len(n.stack) > 0 {
		return false
	}
	con.Println("Organizational Chart:")
	con.Printf("%s", n.chart.Root().Render(""))
	return true
}

func newCommands(n *navigator) []core.Command {
	return []core.Command{
		command.Action("1", "Add Individual Employee", n.addIndividual),
		command.Action("2", "Add Group", n.addGroup),
		command.Action("3", "Display Leader", n.displayLeader),
		command.Action("4", "Display Members", n.displayMembers),
		command.Action("6", "Remove Individual Employee", n.removeIndividual),
	}
}

func New() *session.Session {
	return NewWithChart(NewChart(RootGroup))
}

func NewWithChart(chart *Chart) *session.Session {
	n := &navigator{chart: chart, stack: []*Group{chart.Root()}}
	router := command.New(newCommands(n),
		command.WithInvalidMessage("Invalid choice. Please enter 1, 2, 3, 4, 5, or 6."))

	return session.New(Name, router, doneChoice,
		session.WithPromptFunc(n.menu),
		session.OnExit(n.done),
	)
}
