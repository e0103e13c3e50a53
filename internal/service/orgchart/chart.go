package orgchart

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateEmployee = errors.New("employee is already in another group")
	ErrEmployeeNotFound  = errors.New("employee not found")
)

type Employee interface {
	Name() string
	render(sb *strings.Builder, indent string)
}

type Individual struct {
	name     string
	position string
}

func NewIndividual(name, position string) *Individual {
	return &Individual{name: name, position: position}
}

func (i *Individual) Name() string     { return i.name }
func (i *Individual) Position() string { return i.position }

func (i *Individual) render(sb *strings.Builder, indent string) {
	fmt.Fprintf(sb, "%sEmployee: %s, Position: %s\n", indent, i.name, i.position)
}

type Group struct {
	name    string
	leader  *Individual
	members []Employee
}

func (g *Group) Name() string        { return g.name }
func (g *Group) Leader() *Individual { return g.leader }
func (g *Group) Members() []Employee {
	out := make([]Employee, len(g.members))
	copy(out, g.members)
	return out
}

func (g *Group) render(sb *strings.Builder, indent string) {
	fmt.Fprintf(sb, "%sGroup: %s\n", indent, g.name)
	if g.leader != nil {
		fmt.Fprintf(sb, "%s  Leader: %s, Position: %s\n", indent, g.leader.name, g.leader.position)
	}
	for _, m := range g.members {
		m.render(sb, indent+"  ")
	}
}

// Render draws the group and everything below it.
func (g *Group) Render(indent string) string {
	var sb strings.Builder
	g.render(&sb, indent)
	return sb.String()
}

// RenderMembers lists the leader and direct members, nested groups expanded.
func (g *Group) RenderMembers() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Members of %s:\n", g.name)
	if g.leader != nil {
		fmt.Fprintf(&sb, "  Leader: %s, Position: %s\n", g.leader.name, g.leader.position)
	}
	for _, m := range g.members {
		m.render(&sb, "  ")
	}
	return sb.String()
}

// Chart owns the tree and the name index that keeps an individual in at most
// one group. Leaders count as members of the group they lead.
type Chart struct {
	root   *Group
	groups []*Group
	owner  map[string]*Group
}

func NewChart(rootName string) *Chart {
	root := &Group{name: rootName}
	return &Chart{
		root:   root,
		groups: []*Group{root},
		owner:  make(map[string]*Group),
	}
}

func (c *Chart) Root() *Group {
	return c.root
}

// Groups lists every group in creation order, root first.
func (c *Chart) Groups() []*Group {
	out := make([]*Group, len(c.groups))
	copy(out, c.groups)
	return out
}

func (c *Chart) OwnerOf(name string) (*Group, bool) {
	g, ok := c.owner[name]
	return g, ok
}

func (c *Chart) AddIndividual(g *Group, name, position string) error {
	if _, taken := c.owner[name]; taken {
		return fmt.Errorf("%w: %s", ErrDuplicateEmployee, name)
	}
	g.members = append(g.members, NewIndividual(name, position))
	c.owner[name] = g
	return nil
}

// AddGroup creates a group under parent. leader may be nil.
func (c *Chart) AddGroup(parent *Group, name string, leader *Individual) (*Group, error) {
	if leader != nil {
		if _, taken := c.owner[leader.name]; taken {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEmployee, leader.name)
		}
	}

	g := &Group{name: name, leader: leader}
	parent.members = append(parent.members, g)
	c.groups = append(c.groups, g)
	if leader != nil {
		c.owner[leader.name] = g
	}
	return g, nil
}

// RemoveIndividual removes a direct member of g and frees the name.
func (c *Chart) RemoveIndividual(g *Group, name string) error {
	for i, m := range g.members {
		if _, ok := m.(*Individual); ok && m.Name() == name {
			g.members = append(g.members[:i], g.members[i+1:]...)
			delete(c.owner, name)
			return nil
		}
	}
	return fmt.Errorf("%w: %s in %s", ErrEmployeeNotFound, name, g.name)
}
