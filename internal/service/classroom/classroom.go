package classroom

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrClassroomExists   = errors.New("classroom already exists")
	ErrClassroomNotFound = errors.New("classroom not found")
	ErrAlreadyEnrolled   = errors.New("student already enrolled")
	ErrSubmissionFailed  = errors.New("classroom, student or assignment not found")
)

type Student struct {
	ID   string
	Name string
}

type Assignment struct {
	Details string
	Due     time.Time
}

type Submission struct {
	ID          uuid.UUID
	Student     Student
	Assignment  Assignment
	Details     string
	SubmittedAt time.Time
}

type Classroom struct {
	name        string
	students    []Student
	assignments []Assignment
	submissions []Submission
}

func (c *Classroom) Name() string {
	return c.name
}

func (c *Classroom) Students() []Student {
	return append([]Student(nil), c.students...)
}

func (c *Classroom) Assignments() []Assignment {
	return append([]Assignment(nil), c.assignments...)
}

func (c *Classroom) Submissions() []Submission {
	return append([]Submission(nil), c.submissions...)
}

func (c *Classroom) student(id string) (Student, bool) {
	for _, s := range c.students {
		if s.ID == id {
			return s, true
		}
	}
	return Student{}, false
}

func (c *Classroom) assignment(details string) (Assignment, bool) {
	for _, a := range c.assignments {
		if a.Details == details {
			return a, true
		}
	}
	return Assignment{}, false
}

type Option func(*Manager)

// WithClock replaces time.Now for submission timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// Manager owns the classrooms in creation order. Classroom names are
// matched exactly.
type Manager struct {
	classrooms []*Classroom
	now        func() time.Time
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) AddClassroom(name string) error {
	if _, ok := m.Classroom(name); ok {
		return fmt.Errorf("%w: %s", ErrClassroomExists, name)
	}
	m.classrooms = append(m.classrooms, &Classroom{name: name})
	return nil
}

func (m *Manager) RemoveClassroom(name string) error {
	for i, c := range m.classrooms {
		if c.name == name {
			m.classrooms = append(m.classrooms[:i], m.classrooms[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrClassroomNotFound, name)
}

func (m *Manager) Classroom(name string) (*Classroom, bool) {
	for _, c := range m.classrooms {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

func (m *Manager) Classrooms() []*Classroom {
	return append([]*Classroom(nil), m.classrooms...)
}

func (m *Manager) lookup(name string) (*Classroom, error) {
	c, ok := m.Classroom(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrClassroomNotFound, name)
	}
	return c, nil
}

func (m *Manager) ScheduleAssignment(class, details string, due time.Time) error {
	c, err := m.lookup(class)
	if err != nil {
		return err
	}
	c.assignments = append(c.assignments, Assignment{Details: details, Due: due})
	return nil
}

func (m *Manager) Enroll(class string, s Student) error {
	c, err := m.lookup(class)
	if err != nil {
		return err
	}
	if _, ok := c.student(s.ID); ok {
		return fmt.Errorf("%w: %s in %s", ErrAlreadyEnrolled, s.ID, class)
	}
	c.students = append(c.students, s)
	return nil
}

// Submit records work from an enrolled student against a scheduled
// assignment, matched by its details.
func (m *Manager) Submit(studentID, class, assignment, details string) (Submission, error) {
	c, ok := m.Classroom(class)
	if !ok {
		return Submission{}, ErrSubmissionFailed
	}
	s, ok := c.student(studentID)
	if !ok {
		return Submission{}, ErrSubmissionFailed
	}
	a, ok := c.assignment(assignment)
	if !ok {
		return Submission{}, ErrSubmissionFailed
	}

	sub := Submission{
		ID:          uuid.New(),
		Student:     s,
		Assignment:  a,
		Details:     details,
		SubmittedAt: m.now(),
	}
	c.submissions = append(c.submissions, sub)
	return sub, nil
}
