package models

import (
	"strings"
	"time"
)

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Members     []User    `json:"members"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewProject validates and builds a project. Only admins may create
// projects; the member list is deduplicated by user id.
func NewProject(id, name, description string, createdBy User, members []User, createdAt time.Time) (*Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("project name is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, NewValidationError("project description is required")
	}
	if createdBy.Role != RoleAdmin {
		return nil, NewValidationError("only admins can create projects")
	}

	seen := make(map[string]bool, len(members))
	unique := make([]User, 0, len(members))
	for _, m := range members {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		unique = append(unique, m)
	}

	return &Project{
		ID:          id,
		Name:        name,
		Description: description,
		Members:     unique,
		CreatedBy:   createdBy.ID,
		CreatedAt:   createdAt,
	}, nil
}

// HasMember reports whether the user belongs to the project's member set.
func (p Project) HasMember(userID string) bool {
	for _, m := range p.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// Clone returns a copy with its own member slice.
func (p Project) Clone() Project {
	out := p
	out.Members = append([]User(nil), p.Members...)
	return out
}
