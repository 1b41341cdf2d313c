package models

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	StatusAssigned   TaskStatus = "assigned"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
	StatusReviewed   TaskStatus = "reviewed"
)

// AllStatuses lists the workflow columns in board order.
var AllStatuses = []TaskStatus{StatusAssigned, StatusInProgress, StatusCompleted, StatusReviewed}

// Review carries the score and reviewer attached when a task reaches the
// reviewed status. A task holds either no review or a complete one, so
// score and reviewer can never go out of sync.
type Review struct {
	Score      float64 `json:"score"`
	ReviewedBy string  `json:"reviewedBy"`
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ProjectID   string     `json:"projectId"`
	AssignedTo  string     `json:"assignedTo"`
	Deadline    time.Time  `json:"deadline"`
	Skills      []string   `json:"skills"`
	Status      TaskStatus `json:"status"`
	Review      *Review    `json:"review,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// NewTask validates and builds a task in the initial assigned status.
// The owning project is passed in so membership of the assignee can be
// checked without reaching into any store.
func NewTask(id, title, description string, project *Project, assignedTo string, deadline time.Time, skills []string, createdAt time.Time) (*Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, NewValidationError("task title is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, NewValidationError("task description is required")
	}
	if project == nil {
		return nil, NewValidationError("task must belong to a project")
	}
	if strings.TrimSpace(assignedTo) == "" {
		return nil, NewValidationError("task must be assigned to a member")
	}
	if deadline.IsZero() {
		return nil, NewValidationError("task deadline is required")
	}
	if !project.HasMember(assignedTo) {
		return nil, NewValidationError("user %s is not a member of project %s", assignedTo, project.ID)
	}

	return &Task{
		ID:          id,
		Title:       title,
		Description: description,
		ProjectID:   project.ID,
		AssignedTo:  assignedTo,
		Deadline:    deadline,
		Skills:      append([]string(nil), skills...),
		Status:      StatusAssigned,
		CreatedAt:   createdAt,
	}, nil
}

// Score returns the review score and whether one exists.
func (t Task) Score() (float64, bool) {
	if t.Review == nil {
		return 0, false
	}
	return t.Review.Score, true
}

// Clone returns a deep copy so engine results never alias the input.
func (t Task) Clone() Task {
	out := t
	out.Skills = append([]string(nil), t.Skills...)
	if t.Review != nil {
		r := *t.Review
		out.Review = &r
	}
	return out
}
