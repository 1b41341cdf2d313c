// Package mockdata holds the fixture data the demo dashboard boots with.
package mockdata

import (
	"time"

	"github.com/angad2212/taskify/models"
	"github.com/angad2212/taskify/repositories"
)

func Users() []models.User {
	return []models.User{
		{ID: "u1", Email: "john@example.com", Name: "John Admin", Role: models.RoleAdmin},
		{ID: "u2", Email: "jane@example.com", Name: "Jane User", Role: models.RoleMember},
		{ID: "u3", Email: "bob@example.com", Name: "Bob Developer", Role: models.RoleMember},
		{ID: "u4", Email: "alice@example.com", Name: "Alice Designer", Role: models.RoleMember},
	}
}

func Projects() []models.Project {
	users := Users()
	return []models.Project{
		{
			ID:          "p1",
			Name:        "E-commerce Website",
			Description: "Build a modern e-commerce platform with React and Node.js",
			Members:     []models.User{users[1], users[2]},
			CreatedBy:   "u1",
			CreatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "p2",
			Name:        "Mobile App Design",
			Description: "Design and prototype a new mobile application",
			Members:     []models.User{users[3]},
			CreatedBy:   "u1",
			CreatedAt:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}

func Tasks() []models.Task {
	return []models.Task{
		{
			ID:          "t1",
			Title:       "Setup React Project",
			Description: "Initialize the React project with TypeScript and essential dependencies",
			Status:      models.StatusCompleted,
			AssignedTo:  "u2",
			ProjectID:   "p1",
			Deadline:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Skills:      []string{"React", "TypeScript"},
			CreatedAt:   time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "t2",
			Title:       "Design User Interface",
			Description: "Create wireframes and mockups for the main pages",
			Status:      models.StatusInProgress,
			AssignedTo:  "u3",
			ProjectID:   "p1",
			Deadline:    time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
			Skills:      []string{"UI/UX", "Figma"},
			CreatedAt:   time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "t3",
			Title:       "Implement Authentication",
			Description: "Setup user login and registration functionality",
			Status:      models.StatusAssigned,
			AssignedTo:  "u2",
			ProjectID:   "p1",
			Deadline:    time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			Skills:      []string{"React", "Authentication"},
			CreatedAt:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "t4",
			Title:       "Create App Prototype",
			Description: "Build interactive prototype in Figma",
			Status:      models.StatusReviewed,
			AssignedTo:  "u4",
			ProjectID:   "p2",
			Deadline:    time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
			Skills:      []string{"Figma", "Prototyping"},
			Review:      &models.Review{Score: 5.0, ReviewedBy: "u1"},
			CreatedAt:   time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC),
		},
	}
}

// Seed loads the fixture data into the given repositories.
func Seed(users repositories.UserRepository, projects repositories.ProjectRepository, tasks repositories.TaskRepository) error {
	for _, u := range Users() {
		user := u
		if err := users.Upsert(&user); err != nil {
			return err
		}
	}
	for _, p := range Projects() {
		project := p
		if err := projects.Upsert(&project); err != nil {
			return err
		}
	}
	for _, t := range Tasks() {
		task := t
		if err := tasks.Upsert(&task); err != nil {
			return err
		}
	}
	return nil
}
