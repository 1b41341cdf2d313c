// Package analytics computes read-only derived views over task and user
// collections. Every function is deterministic and side-effect free; the
// inputs are never mutated, so recomputing is always safe.
package analytics

import (
	"github.com/montanaflynn/stats"

	"github.com/angad2212/taskify/models"
)

// ProjectProgress returns the percentage of tasks that made it all the
// way to reviewed. An empty project reads as 0%, not NaN.
func ProjectProgress(tasks []models.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	reviewed := 0
	for _, t := range tasks {
		if t.Status == models.StatusReviewed {
			reviewed++
		}
	}
	return float64(reviewed) / float64(len(tasks)) * 100
}

// CompletionRate returns the share of the user's tasks that are completed
// or reviewed, as a percentage. Zero tasks reads as 0.
func CompletionRate(userTasks []models.Task) float64 {
	if len(userTasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range userTasks {
		if t.Status == models.StatusCompleted || t.Status == models.StatusReviewed {
			done++
		}
	}
	return float64(done) / float64(len(userTasks)) * 100
}

// AverageScore returns the mean review score over the user's scored
// tasks, rounded to two decimals. The second return distinguishes "no
// scored tasks yet" from a genuine average of 0.
func AverageScore(userTasks []models.Task) (float64, bool) {
	var scores []float64
	for _, t := range userTasks {
		if s, ok := t.Score(); ok {
			scores = append(scores, s)
		}
	}
	if len(scores) == 0 {
		return 0, false
	}
	mean, err := stats.Mean(scores)
	if err != nil {
		return 0, false
	}
	rounded, _ := stats.Round(mean, 2)
	return rounded, true
}

// TierFor buckets an average score into a performance tier. Band lower
// bounds are inclusive. An absent or zero average is No Score, so an
// unreviewed user is never misread as excellent or failing.
func TierFor(avg float64, scored bool) models.PerformanceTier {
	if !scored || avg == 0 {
		return models.TierNoScore
	}
	switch {
	case avg >= 4.5:
		return models.TierExcellent
	case avg >= 3.5:
		return models.TierGood
	case avg >= 2.5:
		return models.TierAverage
	default:
		return models.TierNeedsImprovement
	}
}

// ReviewsPerformed counts the tasks this user reviewed, regardless of who
// the tasks were assigned to.
func ReviewsPerformed(userID string, allTasks []models.Task) int {
	count := 0
	for _, t := range allTasks {
		if t.Review != nil && t.Review.ReviewedBy == userID {
			count++
		}
	}
	return count
}

// TasksFor filters the collection down to tasks assigned to the user.
func TasksFor(userID string, allTasks []models.Task) []models.Task {
	var out []models.Task
	for _, t := range allTasks {
		if t.AssignedTo == userID {
			out = append(out, t)
		}
	}
	return out
}

// ForUser builds the full per-user projection from the task collection.
func ForUser(user models.User, allTasks []models.Task) models.UserAnalytics {
	userTasks := TasksFor(user.ID, allTasks)
	completed := 0
	for _, t := range userTasks {
		if t.Status == models.StatusCompleted || t.Status == models.StatusReviewed {
			completed++
		}
	}
	avg, scored := AverageScore(userTasks)

	return models.UserAnalytics{
		UserID:         user.ID,
		UserName:       user.Name,
		Email:          user.Email,
		Role:           user.Role,
		TotalTasks:     len(userTasks),
		TasksCompleted: completed,
		TasksReviewed:  ReviewsPerformed(user.ID, allTasks),
		CompletionRate: CompletionRate(userTasks),
		AverageScore:   avg,
		HasScore:       scored,
		Tier:           TierFor(avg, scored),
	}
}

// Overview aggregates the dashboard summary cards: user and task totals,
// tasks that are at least completed, and the mean of per-user average
// scores across the team.
func Overview(users []models.User, allTasks []models.Task) models.TeamOverview {
	completed := 0
	for _, t := range allTasks {
		if t.Status == models.StatusCompleted || t.Status == models.StatusReviewed {
			completed++
		}
	}

	var averages []float64
	for _, u := range users {
		avg, _ := AverageScore(TasksFor(u.ID, allTasks))
		averages = append(averages, avg)
	}
	teamAvg := 0.0
	if len(averages) > 0 {
		mean, err := stats.Mean(averages)
		if err == nil {
			teamAvg, _ = stats.Round(mean, 2)
		}
	}

	return models.TeamOverview{
		TotalUsers:     len(users),
		TotalTasks:     len(allTasks),
		CompletedTasks: completed,
		AverageScore:   teamAvg,
	}
}

// RoleDistributionOf counts admins and members for the role chart.
func RoleDistributionOf(users []models.User) models.RoleDistribution {
	var dist models.RoleDistribution
	for _, u := range users {
		if u.Role == models.RoleAdmin {
			dist.Admins++
		} else {
			dist.Members++
		}
	}
	return dist
}
