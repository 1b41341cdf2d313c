package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/angad2212/taskify/models"
)

func TestTeamAnalyticsIsAdminOnly(t *testing.T) {
	env := newTestEnv(t)

	var pErr *models.PermissionError

	_, err := env.analytics.ForTeam(env.jane.AsActor())
	assert.ErrorAs(t, err, &pErr)

	_, err = env.analytics.Overview(env.jane.AsActor())
	assert.ErrorAs(t, err, &pErr)

	_, err = env.analytics.RoleBreakdown(env.jane.AsActor())
	assert.ErrorAs(t, err, &pErr)

	_, err = env.analytics.ForTeam(env.admin.AsActor())
	assert.NoError(t, err)
}

func TestForUserVisibility(t *testing.T) {
	env := newTestEnv(t)

	// Members may look at their own numbers but not at anyone else's.
	own, err := env.analytics.ForUser(env.jane.AsActor(), env.jane.ID)
	assert.NoError(t, err)
	assert.Equal(t, env.jane.ID, own.UserID)

	var pErr *models.PermissionError
	_, err = env.analytics.ForUser(env.jane.AsActor(), env.bob.ID)
	assert.ErrorAs(t, err, &pErr)

	other, err := env.analytics.ForUser(env.admin.AsActor(), env.bob.ID)
	assert.NoError(t, err)
	assert.Equal(t, env.bob.ID, other.UserID)
}

func TestAnalyticsAcrossWorkflow(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t, "Website", env.jane.ID, env.bob.ID)

	reviewed := env.createTask(t, project.ID, "Setup React Project", env.jane.ID)
	env.createTask(t, project.ID, "Implement Authentication", env.jane.ID)
	env.createTask(t, project.ID, "Design User Interface", env.bob.ID)

	var err error
	reviewed, err = env.tasks.AdvanceTask(reviewed.ID, env.jane.AsActor())
	assert.NoError(t, err)
	reviewed, err = env.tasks.AdvanceTask(reviewed.ID, env.jane.AsActor())
	assert.NoError(t, err)
	_, err = env.tasks.SubmitReview(reviewed.ID, env.admin.AsActor(), 4)
	assert.NoError(t, err)

	jane, err := env.analytics.ForUser(env.admin.AsActor(), env.jane.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, jane.TotalTasks)
	assert.Equal(t, 1, jane.TasksCompleted)
	assert.Equal(t, 0, jane.TasksReviewed)
	assert.Equal(t, 50.0, jane.CompletionRate)
	assert.True(t, jane.HasScore)
	assert.Equal(t, 4.0, jane.AverageScore)
	assert.Equal(t, models.TierGood, jane.Tier)

	// Bob has no reviewed task yet, so he has no score rather than a 0.
	bob, err := env.analytics.ForUser(env.admin.AsActor(), env.bob.ID)
	assert.NoError(t, err)
	assert.False(t, bob.HasScore)
	assert.Equal(t, models.TierNoScore, bob.Tier)

	// The admin's review shows up as a review performed, not a task.
	adminStats, err := env.analytics.ForUser(env.admin.AsActor(), env.admin.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, adminStats.TotalTasks)
	assert.Equal(t, 1, adminStats.TasksReviewed)

	progress, err := env.analytics.ProjectProgress(project.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 33.33, progress, 0.01)
}

func TestProjectProgressEmptyProject(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t, "Empty Project", env.jane.ID)

	progress, err := env.analytics.ProjectProgress(project.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, progress)
}

func TestOverviewAndRoleBreakdown(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t, "Website", env.jane.ID)
	env.createTask(t, project.ID, "Setup React Project", env.jane.ID)

	overview, err := env.analytics.Overview(env.admin.AsActor())
	assert.NoError(t, err)
	assert.Equal(t, 4, overview.TotalUsers)
	assert.Equal(t, 1, overview.TotalTasks)
	assert.Equal(t, 0, overview.CompletedTasks)

	dist, err := env.analytics.RoleBreakdown(env.admin.AsActor())
	assert.NoError(t, err)
	assert.Equal(t, 1, dist.Admins)
	assert.Equal(t, 3, dist.Members)
}
