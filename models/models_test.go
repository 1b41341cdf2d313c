package models

import (
	"errors"
	"testing"
	"time"
)

var (
	adminUser  = User{ID: "u1", Email: "john@example.com", Name: "John Admin", Role: RoleAdmin}
	memberUser = User{ID: "u2", Email: "jane@example.com", Name: "Jane User", Role: RoleMember}
)

func TestNewProjectValidation(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name        string
		projectName string
		description string
		createdBy   User
		wantErr     bool
	}{
		{"valid", "Website", "a project", adminUser, false},
		{"empty name", "", "a project", adminUser, true},
		{"blank name", "   ", "a project", adminUser, true},
		{"empty description", "Website", "", adminUser, true},
		{"member creator", "Website", "a project", memberUser, true},
	}
	for _, c := range cases {
		_, err := NewProject("p1", c.projectName, c.description, c.createdBy, nil, now)
		if c.wantErr {
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("%s: expected ValidationError, got %v", c.name, err)
			}
		} else if err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
		}
	}
}

func TestNewProjectDeduplicatesMembers(t *testing.T) {
	project, err := NewProject("p1", "Website", "a project", adminUser,
		[]User{memberUser, memberUser}, time.Now())
	if err != nil {
		t.Fatalf("NewProject: %v", err)
	}
	if len(project.Members) != 1 {
		t.Errorf("members = %d, want 1", len(project.Members))
	}
}

func TestNewTask(t *testing.T) {
	project, err := NewProject("p1", "Website", "a project", adminUser, []User{memberUser}, time.Now())
	if err != nil {
		t.Fatalf("NewProject: %v", err)
	}
	deadline := time.Now().AddDate(0, 1, 0)

	task, err := NewTask("t1", "Setup", "initial setup", project, memberUser.ID, deadline, []string{"Go"}, time.Now())
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}
	if task.Status != StatusAssigned {
		t.Errorf("initial status = %s, want %s", task.Status, StatusAssigned)
	}
	if task.Review != nil {
		t.Error("new task must not carry a review")
	}

	var vErr *ValidationError
	cases := []struct {
		name string
		err  error
	}{
		{"empty title", func() error { _, e := NewTask("t2", "", "d", project, memberUser.ID, deadline, nil, time.Now()); return e }()},
		{"empty description", func() error { _, e := NewTask("t2", "T", "", project, memberUser.ID, deadline, nil, time.Now()); return e }()},
		{"no assignee", func() error { _, e := NewTask("t2", "T", "d", project, "", deadline, nil, time.Now()); return e }()},
		{"zero deadline", func() error { _, e := NewTask("t2", "T", "d", project, memberUser.ID, time.Time{}, nil, time.Now()); return e }()},
		{"nil project", func() error { _, e := NewTask("t2", "T", "d", nil, memberUser.ID, deadline, nil, time.Now()); return e }()},
		{"non-member assignee", func() error { _, e := NewTask("t2", "T", "d", project, "u9", deadline, nil, time.Now()); return e }()},
	}
	for _, c := range cases {
		if !errors.As(c.err, &vErr) {
			t.Errorf("%s: expected ValidationError, got %v", c.name, c.err)
		}
	}
}

func TestTaskCloneIsDeep(t *testing.T) {
	task := Task{
		ID:     "t1",
		Skills: []string{"Go"},
		Review: &Review{Score: 5, ReviewedBy: "u1"},
	}

	clone := task.Clone()
	clone.Skills[0] = "changed"
	clone.Review.Score = 1

	if task.Skills[0] != "Go" || task.Review.Score != 5 {
		t.Errorf("clone shares memory with the original: %+v", task)
	}
}
