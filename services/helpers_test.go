package services

import (
	"testing"
	"time"

	"github.com/angad2212/taskify/models"
	"github.com/angad2212/taskify/repositories"
)

type testEnv struct {
	userRepo    *repositories.InMemoryUserRepository
	projectRepo *repositories.InMemoryProjectRepository
	taskRepo    *repositories.InMemoryTaskRepository

	users     *UserService
	projects  *ProjectService
	tasks     *TaskService
	analytics *AnalyticsService

	admin models.User
	jane  models.User
	bob   models.User
	alice models.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		userRepo:    repositories.NewInMemoryUserRepository(),
		projectRepo: repositories.NewInMemoryProjectRepository(),
		taskRepo:    repositories.NewInMemoryTaskRepository(),
	}
	env.users = NewUserService(env.userRepo)
	env.projects = NewProjectService(env.projectRepo, env.userRepo, env.taskRepo)
	env.tasks = NewTaskService(env.taskRepo, env.projectRepo)
	env.analytics = NewAnalyticsService(env.userRepo, env.taskRepo)

	env.admin = models.User{ID: "u1", Email: "john@example.com", Name: "John Admin", Role: models.RoleAdmin}
	env.jane = models.User{ID: "u2", Email: "jane@example.com", Name: "Jane User", Role: models.RoleMember}
	env.bob = models.User{ID: "u3", Email: "bob@example.com", Name: "Bob Developer", Role: models.RoleMember}
	env.alice = models.User{ID: "u4", Email: "alice@example.com", Name: "Alice Designer", Role: models.RoleMember}

	for _, u := range []models.User{env.admin, env.jane, env.bob, env.alice} {
		user := u
		if err := env.userRepo.Upsert(&user); err != nil {
			t.Fatalf("failed to seed user %s: %v", u.ID, err)
		}
	}
	return env
}

func (e *testEnv) createProject(t *testing.T, name string, memberIDs ...string) *models.Project {
	t.Helper()

	project, err := e.projects.CreateProject(name, "a project for testing", e.admin.ID, memberIDs)
	if err != nil {
		t.Fatalf("failed to create project %q: %v", name, err)
	}
	return project
}

func (e *testEnv) createTask(t *testing.T, projectID, title, assignedTo string) *models.Task {
	t.Helper()

	task, err := e.tasks.CreateTask(projectID, title, "a task for testing", assignedTo, time.Now().AddDate(0, 1, 0), []string{"Go"})
	if err != nil {
		t.Fatalf("failed to create task %q: %v", title, err)
	}
	return task
}
