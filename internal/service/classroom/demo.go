package classroom

import (
	"context"
	"strings"

	"github.com/sandevgo/patterns/internal/core"
	"github.com/sandevgo/patterns/internal/service/command"
	"github.com/sandevgo/patterns/internal/service/session"
	"github.com/sandevgo/patterns/pkg/log"
)

const (
	Name        = "classroom"
	Description = "Command: manage a virtual classroom as teacher or student"
	exitCommand = "exit"
)

func teacherMode(m *Manager) func(ctx context.Context, con core.Console) error {
	router := command.New(NewTeacherCommands(m), command.WithInvalidMessage("Invalid command. Please try again."))
	prompt := command.Menu("Enter the command", router.Names()...)

	return func(ctx context.Context, con core.Console) error {
		for {
			key, err := command.AskString(con, prompt)
			if err != nil {
				return err
			}
			line, err := command.AskString(con, "Enter command arguments separated by spaces: ")
			if err != nil {
				return err
			}
			if _, err := router.Dispatch(ctx, con, key, strings.Fields(line)); err != nil {
				return err
			}

			again, err := command.Confirm(con, "Do you want to perform another teacher action? (yes/no): ")
			if err != nil || !again {
				return err
			}
		}
	}
}

func studentMode(m *Manager) func(ctx context.Context, con core.Console) error {
	return func(ctx context.Context, con core.Console) error {
		if len(m.Classrooms()) == 0 {
			con.Println("No classrooms available. Please wait for a teacher to create a classroom.")
			return nil
		}

		var (
			s   Student
			err error
		)
		if s.ID, err = command.AskString(con, "Enter your student ID: "); err != nil {
			return err
		}
		if s.Name, err = command.AskString(con, "Enter your name: "); err != nil {
			return err
		}
		log.FromCtx(ctx).Debug().Str("student", s.ID).Msg("student session started")

		router := command.New(NewStudentCommands(m, s))
		for {
			class, err := command.AskString(con, "Enter the classroom name to join: ")
			if err != nil {
				return err
			}
			if _, err := router.Dispatch(ctx, con, "join_classroom", []string{class}); err != nil {
				return err
			}

			submit, err := command.Confirm(con, "Do you want to submit an assignment for this class? (yes/no): ")
			if err != nil {
				return err
			}
			if submit {
				if err := submitFor(ctx, con, router, class); err != nil {
					return err
				}
			}

			again, err := command.Confirm(con, "Do you want to join another classroom? (yes/no): ")
			if err != nil || !again {
				return err
			}
		}
	}
}

func submitFor(ctx context.Context, con core.Console, router *command.Router, class string) error {
	assignment, err := command.AskString(con, "Enter the assignment details: ")
	if err != nil {
		return err
	}
	work, err := command.AskString(con, "Enter your submission details: ")
	if err != nil {
		return err
	}
	_, err = router.Dispatch(ctx, con, "submit_assignment", []string{class, assignment, work})
	return err
}

func NewRoles(m *Manager) []core.Command {
	return []core.Command{
		command.Action("teacher", "Manage classrooms and assignments", teacherMode(m)),
		command.Action("student", "Join classrooms and submit work", studentMode(m)),
	}
}

func New() *session.Session {
	return NewWithManager(NewManager())
}

func NewWithManager(m *Manager) *session.Session {
	roles := command.New(NewRoles(m), command.WithInvalidMessage("Invalid role. Please enter 'teacher' or 'student'."))
	return session.New(Name, roles, exitCommand,
		session.WithPrompt("Are you a teacher or a student? "),
		session.OnExit(func(ctx context.Context, con core.Console) bool {
			con.Println("Exiting...")
			log.FromCtx(ctx).Info().Msg("application exiting")
			return true
		}),
	)
}
