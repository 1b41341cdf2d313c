package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/angad2212/taskify/analytics"
	"github.com/angad2212/taskify/logging"
	"github.com/angad2212/taskify/models"
	"github.com/angad2212/taskify/repositories"
)

type ProjectService struct {
	Projects repositories.ProjectRepository
	Users    repositories.UserRepository
	Tasks    repositories.TaskRepository
}

func NewProjectService(projects repositories.ProjectRepository, users repositories.UserRepository, tasks repositories.TaskRepository) *ProjectService {
	return &ProjectService{
		Projects: projects,
		Users:    users,
		Tasks:    tasks,
	}
}

// CreateProject creates a new project owned by the given admin, with the
// listed users as the initial member set.
func (s *ProjectService) CreateProject(name, description, createdByID string, memberIDs []string) (*models.Project, error) {
	creator, err := s.Users.Get(createdByID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project creator: %v", err)
	}

	members, err := s.resolveUsers(memberIDs)
	if err != nil {
		return nil, err
	}

	project, err := models.NewProject(uuid.New().String(), name, description, *creator, members, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.Projects.Upsert(project); err != nil {
		return nil, fmt.Errorf("failed to save project: %v", err)
	}

	logging.Logger.Infof("Created project %s (%s) with %d members", project.Name, project.ID, len(project.Members))
	return project, nil
}

// AddMembersToProject adds the given users to a project's member set.
// Users already in the set are skipped.
func (s *ProjectService) AddMembersToProject(projectID string, memberIDs []string) (*models.Project, error) {
	project, err := s.Projects.Get(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %v", err)
	}

	members, err := s.resolveUsers(memberIDs)
	if err != nil {
		return nil, err
	}

	for _, member := range members {
		if project.HasMember(member.ID) {
			continue
		}
		project.Members = append(project.Members, member)
	}

	if err := s.Projects.Upsert(project); err != nil {
		return nil, fmt.Errorf("failed to save project: %v", err)
	}
	return project, nil
}

// RemoveMemberFromProject removes a member unless tasks in the project
// are still assigned to them; every task must keep resolving to a
// current member.
func (s *ProjectService) RemoveMemberFromProject(projectID, memberID string) error {
	project, err := s.Projects.Get(projectID)
	if err != nil {
		return fmt.Errorf("failed to load project: %v", err)
	}
	if !project.HasMember(memberID) {
		return models.NewValidationError("user %s is not a member of project %s", memberID, projectID)
	}

	tasks, err := s.Tasks.ListByProject(projectID)
	if err != nil {
		return fmt.Errorf("failed to check task assignments: %v", err)
	}
	for _, task := range tasks {
		if task.AssignedTo == memberID {
			return models.NewValidationError("cannot remove member %s: task %q is assigned to them", memberID, task.Title)
		}
	}

	kept := project.Members[:0]
	for _, member := range project.Members {
		if member.ID != memberID {
			kept = append(kept, member)
		}
	}
	project.Members = kept

	if err := s.Projects.Upsert(project); err != nil {
		return fmt.Errorf("failed to save project: %v", err)
	}

	logging.Logger.Infof("Removed member %s from project %s", memberID, projectID)
	return nil
}

// GetProjectsForUser returns the projects the actor may see: admins see
// every project, members only the ones they belong to.
func (s *ProjectService) GetProjectsForUser(actor models.Actor) ([]models.Project, error) {
	all, err := s.Projects.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %v", err)
	}
	if actor.IsAdmin() {
		return all, nil
	}

	visible := make([]models.Project, 0, len(all))
	for _, project := range all {
		if project.HasMember(actor.ID) {
			visible = append(visible, project)
		}
	}
	return visible, nil
}

// SearchProjects filters the actor's visible projects by a
// case-insensitive name match.
func (s *ProjectService) SearchProjects(actor models.Actor, term string) ([]models.Project, error) {
	visible, err := s.GetProjectsForUser(actor)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(term)
	matched := make([]models.Project, 0, len(visible))
	for _, project := range visible {
		if strings.Contains(strings.ToLower(project.Name), term) {
			matched = append(matched, project)
		}
	}
	return matched, nil
}

// SuggestTopPerformers returns up to count member-role users ranked by
// their average review score, for pre-filling a new project's member
// list. Users with equal scores come back in random order.
func (s *ProjectService) SuggestTopPerformers(count int) ([]models.User, error) {
	if count <= 0 {
		return nil, models.NewValidationError("count must be positive, got %d", count)
	}

	members, err := s.Users.ListByRole(models.RoleMember)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %v", err)
	}
	allTasks, err := s.Tasks.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %v", err)
	}

	averages := make(map[string]float64, len(members))
	for _, member := range members {
		avg, _ := analytics.AverageScore(analytics.TasksFor(member.ID, allTasks))
		averages[member.ID] = avg
	}

	rand.Shuffle(len(members), func(i, j int) {
		members[i], members[j] = members[j], members[i]
	})
	sort.SliceStable(members, func(i, j int) bool {
		return averages[members[i].ID] > averages[members[j].ID]
	})

	if count > len(members) {
		count = len(members)
	}
	return members[:count], nil
}

func (s *ProjectService) resolveUsers(ids []string) ([]models.User, error) {
	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		user, err := s.Users.Get(id)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user %s: %v", id, err)
		}
		users = append(users, *user)
	}
	return users, nil
}
