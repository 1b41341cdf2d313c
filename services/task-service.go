package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/angad2212/taskify/lifecycle"
	"github.com/angad2212/taskify/logging"
	"github.com/angad2212/taskify/models"
	"github.com/angad2212/taskify/repositories"
)

type TaskService struct {
	Tasks    repositories.TaskRepository
	Projects repositories.ProjectRepository
}

func NewTaskService(tasks repositories.TaskRepository, projects repositories.ProjectRepository) *TaskService {
	return &TaskService{
		Tasks:    tasks,
		Projects: projects,
	}
}

// CreateTask validates and stores a new task in the assigned status. The
// assignee must already be a member of the target project.
func (s *TaskService) CreateTask(projectID, title, description, assignedTo string, deadline time.Time, skills []string) (*models.Task, error) {
	project, err := s.Projects.Get(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %v", err)
	}

	task, err := models.NewTask(uuid.New().String(), title, description, project, assignedTo, deadline, skills, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.Tasks.Upsert(task); err != nil {
		return nil, fmt.Errorf("failed to save task: %v", err)
	}

	logging.Logger.Infof("Created task %q in project %s, assigned to %s", task.Title, project.Name, task.AssignedTo)
	return task, nil
}

// AdvanceTask moves a task one step forward on behalf of the actor and
// commits the result.
func (s *TaskService) AdvanceTask(taskID string, actor models.Actor) (*models.Task, error) {
	task, err := s.Tasks.Get(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task: %v", err)
	}

	updated, err := lifecycle.Advance(*task, actor)
	if err != nil {
		return nil, err
	}

	if err := s.Tasks.Upsert(&updated); err != nil {
		return nil, fmt.Errorf("failed to save task: %v", err)
	}

	logging.Logger.Infof("Task %q moved from %s to %s by %s", updated.Title, task.Status, updated.Status, actor.ID)
	return &updated, nil
}

// SubmitReview records an admin's review of a completed task, moving it
// into the terminal reviewed status.
func (s *TaskService) SubmitReview(taskID string, reviewer models.Actor, score float64) (*models.Task, error) {
	task, err := s.Tasks.Get(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task: %v", err)
	}

	updated, err := lifecycle.SubmitReview(*task, reviewer, score)
	if err != nil {
		return nil, err
	}

	if err := s.Tasks.Upsert(&updated); err != nil {
		return nil, fmt.Errorf("failed to save task: %v", err)
	}

	logging.Logger.Infof("Task %q reviewed by %s with score %v", updated.Title, reviewer.ID, score)
	return &updated, nil
}

// GetTasksForProject returns all tasks of a project in creation order.
func (s *TaskService) GetTasksForProject(projectID string) ([]models.Task, error) {
	return s.Tasks.ListByProject(projectID)
}

// GetTasksByStatus returns one board column of a project.
func (s *TaskService) GetTasksByStatus(projectID string, status models.TaskStatus) ([]models.Task, error) {
	tasks, err := s.Tasks.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status == status {
			out = append(out, task)
		}
	}
	return out, nil
}

// CountTasksForUser counts the tasks assigned to a user within one
// project, for the member dashboard card.
func (s *TaskService) CountTasksForUser(projectID, userID string) (int, error) {
	tasks, err := s.Tasks.ListByProject(projectID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, task := range tasks {
		if task.AssignedTo == userID {
			count++
		}
	}
	return count, nil
}
