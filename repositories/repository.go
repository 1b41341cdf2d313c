// Package repositories defines the storage collaborators for the core
// and provides in-memory implementations. The engines and services only
// ever see these interfaces, so a database-backed store can be swapped in
// without touching the core logic.
package repositories

import "github.com/angad2212/taskify/models"

type UserRepository interface {
	Get(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Upsert(user *models.User) error
	List() ([]models.User, error)
	ListByRole(role models.Role) ([]models.User, error)
}

type ProjectRepository interface {
	Get(id string) (*models.Project, error)
	Upsert(project *models.Project) error
	List() ([]models.Project, error)
}

type TaskRepository interface {
	Get(id string) (*models.Task, error)
	Upsert(task *models.Task) error
	List() ([]models.Task, error)
	ListByProject(projectID string) ([]models.Task, error)
	ListByAssignee(userID string) ([]models.Task, error)
}
