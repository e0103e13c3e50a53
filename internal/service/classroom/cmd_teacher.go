package classroom

import (
	"context"
	"errors"
	"time"

	"github.com/sandevgo/patterns/internal/core"
	"github.com/sandevgo/patterns/pkg/log"
)

const dueLayout = "2006-01-02"

// usage reports whether args has the expected arity, printing the usage line
// when it does not.
func usage(con core.Console, args []string, want int, line string) bool {
	if len(args) == want {
		return true
	}
	con.Println("Invalid command format. Usage: " + line)
	return false
}

func notFound(con core.Console, err error, class string) error {
	if errors.Is(err, ErrClassroomNotFound) {
		con.Printf("Classroom %s not found.\n", class)
		return nil
	}
	return err
}

type AddClassroomCommand struct {
	manager *Manager
}

func NewAddClassroomCommand(m *Manager) *AddClassroomCommand {
	return &AddClassroomCommand{manager: m}
}

func (c *AddClassroomCommand) Name() string {
	return "add_classroom"
}

func (c *AddClassroomCommand) Description() string {
	return "Create a classroom"
}

func (c *AddClassroomCommand) Execute(ctx context.Context, con core.Console, args []string) error {
	if !usage(con, args, 1, "add_classroom <class_name>") {
		return nil
	}
	name := args[0]
	if err := c.manager.AddClassroom(name); err != nil {
		if errors.Is(err, ErrClassroomExists) {
			con.Printf("Classroom %s already exists.\n", name)
			return nil
		}
		return err
	}
	log.FromCtx(ctx).Info().Str("classroom", name).Msg("classroom created")
	con.Printf("Classroom %s has been created.\n", name)
	return nil
}

type RemoveClassroomCommand struct {
	manager *Manager
}

func NewRemoveClassroomCommand(m *Manager) *RemoveClassroomCommand {
	return &RemoveClassroomCommand{manager: m}
}

func (c *RemoveClassroomCommand) Name() string {
	return "remove_classroom"
}

func (c *RemoveClassroomCommand) Description() string {
	return "Delete a classroom"
}

func (c *RemoveClassroomCommand) Execute(ctx context.Context, con core.Console, args []string) error {
	if !usage(con, args, 1, "remove_classroom <class_name>") {
		return nil
	}
	name := args[0]
	if err := c.manager.RemoveClassroom(name); err != nil {
		return notFound(con, err, name)
	}
	log.FromCtx(ctx).Info().Str("classroom", name).Msg("classroom removed")
	con.Printf("Classroom %s has been removed.\n", name)
	return nil
}

type ListClassroomsCommand struct {
	manager *Manager
}

func NewListClassroomsCommand(m *Manager) *ListClassroomsCommand {
	return &ListClassroomsCommand{manager: m}
}

func (c *ListClassroomsCommand) Name() string {
	return "list_classrooms"
}

func (c *ListClassroomsCommand) Description() string {
	return "List classrooms"
}

func (c *ListClassroomsCommand) Execute(_ context.Context, con core.Console, _ []string) error {
	con.Println("Classrooms:")
	for _, room := range c.manager.Classrooms() {
		con.Println(" - " + room.Name())
	}
	return nil
}

type ScheduleAssignmentCommand struct {
	manager *Manager
}

func NewScheduleAssignmentCommand(m *Manager) *ScheduleAssignmentCommand {
	return &ScheduleAssignmentCommand{manager: m}
}

func (c *ScheduleAssignmentCommand) Name() string {
	return "schedule_assignment"
}

func (c *ScheduleAssignmentCommand) Description() string {
	return "Schedule an assignment with a due date"
}

func (c *ScheduleAssignmentCommand) Execute(ctx context.Context, con core.Console, args []string) error {
	if !usage(con, args, 3, "schedule_assignment <class_name> <assignment_details> <due_date>") {
		return nil
	}
	class, details := args[0], args[1]

	due, err := time.Parse(dueLayout, args[2])
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("invalid due date")
		con.Println("Invalid date format. Please use yyyy-MM-dd.")
		return nil
	}

	if err := c.manager.ScheduleAssignment(class, details, due); err != nil {
		return notFound(con, err, class)
	}
	con.Printf("Assignment for %s has been scheduled.\n", class)
	return nil
}

type ListStudentsCommand struct {
	manager *Manager
}

func NewListStudentsCommand(m *Manager) *ListStudentsCommand {
	return &ListStudentsCommand{manager: m}
}

func (c *ListStudentsCommand) Name() string {
	return "list_students"
}

func (c *ListStudentsCommand) Description() string {
	return "List students enrolled in a classroom"
}

func (c *ListStudentsCommand) Execute(_ context.Context, con core.Console, args []string) error {
	if !usage(con, args, 1, "list_students <class_name>") {
		return nil
	}
	room, ok := c.manager.Classroom(args[0])
	if !ok {
		return notFound(con, ErrClassroomNotFound, args[0])
	}

	con.Printf("Students in %s:\n", room.Name())
	for _, s := range room.Students() {
		con.Printf(" - %s (ID: %s)\n", s.Name, s.ID)
	}
	return nil
}

type ListSubmissionsCommand struct {
	manager *Manager
}

func NewListSubmissionsCommand(m *Manager) *ListSubmissionsCommand {
	return &ListSubmissionsCommand{manager: m}
}

func (c *ListSubmissionsCommand) Name() string {
	return "list_submissions"
}

func (c *ListSubmissionsCommand) Description() string {
	return "List submissions received by a classroom"
}

func (c *ListSubmissionsCommand) Execute(_ context.Context, con core.Console, args []string) error {
	if !usage(con, args, 1, "list_submissions <class_name>") {
		return nil
	}
	room, ok := c.manager.Classroom(args[0])
	if !ok {
		return notFound(con, ErrClassroomNotFound, args[0])
	}

	subs := room.Submissions()
	if len(subs) == 0 {
		con.Printf("No submissions in %s.\n", room.Name())
		return nil
	}
	con.Printf("Submissions in %s:\n", room.Name())
	for _, s := range subs {
		con.Printf(" - %s (ID: %s) for %s: %s [%s]\n",
			s.Student.Name, s.Student.ID, s.Assignment.Details, s.Details, s.SubmittedAt.Format(time.DateTime))
	}
	return nil
}

func NewTeacherCommands(m *Manager) []core.Command {
	return []core.Command{
		NewAddClassroomCommand(m),
		NewRemoveClassroomCommand(m),
		NewListClassroomsCommand(m),
		NewScheduleAssignmentCommand(m),
		NewListStudentsCommand(m),
		NewListSubmissionsCommand(m),
	}
}
