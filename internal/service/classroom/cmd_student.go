package classroom

import (
	"context"
	"errors"

	"github.com/sandevgo/patterns/internal/core"
	"github.com/sandevgo/patterns/pkg/log"
)

// JoinClassroomCommand enrolls the student it was created for.
type JoinClassroomCommand struct {
	manager *Manager
	student Student
}

func NewJoinClassroomCommand(m *Manager, s Student) *JoinClassroomCommand {
	return &JoinClassroomCommand{manager: m, student: s}
}

func (c *JoinClassroomCommand) Name() string {
	return "join_classroom"
}

func (c *JoinClassroomCommand) Description() string {
	return "Enroll in a classroom"
}

func (c *JoinClassroomCommand) Execute(ctx context.Context, con core.Console, args []string) error {
	if !usage(con, args, 1, "join_classroom <class_name>") {
		return nil
	}
	class := args[0]

	err := c.manager.Enroll(class, c.student)
	switch {
	case errors.Is(err, ErrAlreadyEnrolled):
		con.Printf("Student %s is already enrolled in %s.\n", c.student.ID, class)
		return nil
	case err != nil:
		return notFound(con, err, class)
	}

	log.FromCtx(ctx).Info().Str("student", c.student.ID).Str("classroom", class).Msg("student enrolled")
	con.Printf("Student %s has been enrolled in %s.\n", c.student.Name, class)
	return nil
}

type SubmitAssignmentCommand struct {
	manager   *Manager
	studentID string
}

func NewSubmitAssignmentCommand(m *Manager, studentID string) *SubmitAssignmentCommand {
	return &SubmitAssignmentCommand{manager: m, studentID: studentID}
}

func (c *SubmitAssignmentCommand) Name() string {
	return "submit_assignment"
}

func (c *SubmitAssignmentCommand) Description() string {
	return "Submit work for a scheduled assignment"
}

func (c *SubmitAssignmentCommand) Execute(ctx context.Context, con core.Console, args []string) error {
	if !usage(con, args, 3, "submit_assignment <class_name> <assignment_details> <submission_details>") {
		return nil
	}

	sub, err := c.manager.Submit(c.studentID, args[0], args[1], args[2])
	if errors.Is(err, ErrSubmissionFailed) {
		log.FromCtx(ctx).Warn().Err(err).Str("student", c.studentID).Msg("submission refused")
		con.Println("Submission failed: Classroom or Student or Assignment not found.")
		return nil
	}
	if err != nil {
		return err
	}

	log.FromCtx(ctx).Info().Str("submission", sub.ID.String()).Msg("assignment submitted")
	con.Printf("Assignment submitted by Student %s in %s.\n", c.studentID, args[0])
	return nil
}

func NewStudentCommands(m *Manager, s Student) []core.Command {
	return []core.Command{
		NewJoinClassroomCommand(m, s),
		NewSubmitAssignmentCommand(m, s.ID),
	}
}
