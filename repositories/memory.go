package repositories

import (
	"sort"
	"sync"

	"github.com/angad2212/taskify/models"
)

// The in-memory stores hand out copies on every read, so callers always
// work on snapshots and commit changes back through Upsert. Listings are
// ordered by creation time (users by name) to keep output stable.

type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[string]models.User)}
}

func (r *InMemoryUserRepository) Get(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return &user, nil
}

func (r *InMemoryUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (r *InMemoryUserRepository) Upsert(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = *user
	return nil
}

func (r *InMemoryUserRepository) List() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryUserRepository) ListByRole(role models.Role) ([]models.User, error) {
	all, err := r.List()
	if err != nil {
		return nil, err
	}
	out := make([]models.User, 0, len(all))
	for _, user := range all {
		if user.Role == role {
			out = append(out, user)
		}
	}
	return out, nil
}

type InMemoryProjectRepository struct {
	mu       sync.RWMutex
	projects map[string]models.Project
}

func NewInMemoryProjectRepository() *InMemoryProjectRepository {
	return &InMemoryProjectRepository{projects: make(map[string]models.Project)}
}

func (r *InMemoryProjectRepository) Get(id string) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, ok := r.projects[id]
	if !ok {
		return nil, models.ErrProjectNotFound
	}
	p := project.Clone()
	return &p, nil
}

func (r *InMemoryProjectRepository) Upsert(project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.projects[project.ID] = project.Clone()
	return nil
}

func (r *InMemoryProjectRepository) List() ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Project, 0, len(r.projects))
	for _, project := range r.projects {
		out = append(out, project.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type InMemoryTaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]models.Task
}

func NewInMemoryTaskRepository() *InMemoryTaskRepository {
	return &InMemoryTaskRepository{tasks: make(map[string]models.Task)}
}

func (r *InMemoryTaskRepository) Get(id string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, models.ErrTaskNotFound
	}
	t := task.Clone()
	return &t, nil
}

func (r *InMemoryTaskRepository) Upsert(task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[task.ID] = task.Clone()
	return nil
}

func (r *InMemoryTaskRepository) List() ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		out = append(out, task.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryTaskRepository) ListByProject(projectID string) ([]models.Task, error) {
	all, err := r.List()
	if err != nil {
		return nil, err
	}
	out := make([]models.Task, 0, len(all))
	for _, task := range all {
		if task.ProjectID == projectID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *InMemoryTaskRepository) ListByAssignee(userID string) ([]models.Task, error) {
	all, err := r.List()
	if err != nil {
		return nil, err
	}
	out := make([]models.Task, 0, len(all))
	for _, task := range all {
		if task.AssignedTo == userID {
			out = append(out, task)
		}
	}
	return out, nil
}
