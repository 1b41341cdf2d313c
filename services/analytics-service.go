package services

import (
	"fmt"

	"github.com/angad2212/taskify/analytics"
	"github.com/angad2212/taskify/models"
	"github.com/angad2212/taskify/repositories"
)

// AnalyticsService exposes the derived views. Team-wide views are
// admin-only; a member may still look at their own numbers.
type AnalyticsService struct {
	Users repositories.UserRepository
	Tasks repositories.TaskRepository
}

func NewAnalyticsService(users repositories.UserRepository, tasks repositories.TaskRepository) *AnalyticsService {
	return &AnalyticsService{
		Users: users,
		Tasks: tasks,
	}
}

// ForUser computes the analytics projection for one user.
func (s *AnalyticsService) ForUser(actor models.Actor, userID string) (*models.UserAnalytics, error) {
	if !actor.IsAdmin() && actor.ID != userID {
		return nil, models.NewPermissionError("user %s may not view analytics for user %s", actor.ID, userID)
	}

	user, err := s.Users.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %v", err)
	}
	allTasks, err := s.Tasks.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %v", err)
	}

	result := analytics.ForUser(*user, allTasks)
	return &result, nil
}

// ForTeam computes the projection for every user, for the performance
// table.
func (s *AnalyticsService) ForTeam(actor models.Actor) ([]models.UserAnalytics, error) {
	if !actor.IsAdmin() {
		return nil, models.NewPermissionError("user %s may not view team analytics", actor.ID)
	}

	users, err := s.Users.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %v", err)
	}
	allTasks, err := s.Tasks.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %v", err)
	}

	out := make([]models.UserAnalytics, 0, len(users))
	for _, user := range users {
		out = append(out, analytics.ForUser(user, allTasks))
	}
	return out, nil
}

// Overview returns the dashboard summary cards.
func (s *AnalyticsService) Overview(actor models.Actor) (*models.TeamOverview, error) {
	if !actor.IsAdmin() {
		return nil, models.NewPermissionError("user %s may not view the analytics overview", actor.ID)
	}

	users, err := s.Users.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %v", err)
	}
	allTasks, err := s.Tasks.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %v", err)
	}

	overview := analytics.Overview(users, allTasks)
	return &overview, nil
}

// RoleBreakdown returns the admin/member counts for the role chart.
func (s *AnalyticsService) RoleBreakdown(actor models.Actor) (*models.RoleDistribution, error) {
	if !actor.IsAdmin() {
		return nil, models.NewPermissionError("user %s may not view the role breakdown", actor.ID)
	}

	users, err := s.Users.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %v", err)
	}
	dist := analytics.RoleDistributionOf(users)
	return &dist, nil
}

// ProjectProgress returns the percentage of a project's tasks that are
// fully reviewed. Visible to any actor who can see the project.
func (s *AnalyticsService) ProjectProgress(projectID string) (float64, error) {
	tasks, err := s.Tasks.ListByProject(projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to list project tasks: %v", err)
	}
	return analytics.ProjectProgress(tasks), nil
}
