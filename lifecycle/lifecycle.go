// Package lifecycle is the task workflow engine. Tasks move forward
// through a fixed linear order:
//
//	assigned -> in-progress -> completed -> reviewed
//
// There are no backward transitions and no skipping. Every function here
// is pure: it takes a task snapshot plus the acting identity and returns
// either a new task value or a typed failure, without touching the input.
package lifecycle

import (
	"github.com/angad2212/taskify/models"
)

// NextStatus maps a status to the next step the given role may reach.
// For admins at completed it names the review step, but that transition
// is only performed by SubmitReview; Advance refuses it. Members stop at
// completed, which is their ceiling.
func NextStatus(current models.TaskStatus, role models.Role) models.TaskStatus {
	if role == models.RoleAdmin {
		switch current {
		case models.StatusAssigned:
			return models.StatusInProgress
		case models.StatusInProgress:
			return models.StatusCompleted
		case models.StatusCompleted:
			return models.StatusReviewed
		default:
			return current
		}
	}
	switch current {
	case models.StatusAssigned:
		return models.StatusInProgress
	case models.StatusInProgress:
		return models.StatusCompleted
	default:
		return current
	}
}

// CanAdvance reports whether the actor may move this task at all. Admins
// may always act; a member only on their own task while it is not yet
// reviewed.
func CanAdvance(task models.Task, actor models.Actor) bool {
	if actor.IsAdmin() {
		return true
	}
	return task.AssignedTo == actor.ID && task.Status != models.StatusReviewed
}

// Advance moves the task one step forward on behalf of the actor and
// returns the updated copy. It fails with PermissionError when the actor
// may not touch the task, and with InvalidTransitionError when the actor
// is already at their role's ceiling or when the next step would be
// reviewed: reaching reviewed requires a score and a reviewer, which only
// SubmitReview collects. A reviewed task is terminal for every role.
func Advance(task models.Task, actor models.Actor) (models.Task, error) {
	if task.Status == models.StatusReviewed {
		return models.Task{}, models.NewInvalidTransitionError(task.Status, "task is already reviewed")
	}
	if !CanAdvance(task, actor) {
		return models.Task{}, models.NewPermissionError("user %s may not advance task %s", actor.ID, task.ID)
	}

	next := NextStatus(task.Status, actor.Role)
	if next == task.Status {
		return models.Task{}, models.NewInvalidTransitionError(task.Status, "task cannot advance further for role %s", actor.Role)
	}
	if next == models.StatusReviewed {
		return models.Task{}, models.NewInvalidTransitionError(task.Status, "completed tasks advance only through review submission")
	}

	out := task.Clone()
	out.Status = next
	return out, nil
}

// SubmitReview is the only path into the reviewed status. The reviewer
// must be an admin, the task must currently be completed, and the score
// must lie in [0, 10]. On success the returned copy carries the review.
func SubmitReview(task models.Task, reviewer models.Actor, score float64) (models.Task, error) {
	if !reviewer.IsAdmin() {
		return models.Task{}, models.NewPermissionError("user %s may not review tasks", reviewer.ID)
	}
	if task.Status != models.StatusCompleted {
		return models.Task{}, models.NewInvalidTransitionError(task.Status, "only completed tasks can be reviewed")
	}
	if score < 0 || score > 10 {
		return models.Task{}, models.NewValidationError("score must be between 0 and 10, got %v", score)
	}

	out := task.Clone()
	out.Status = models.StatusReviewed
	out.Review = &models.Review{Score: score, ReviewedBy: reviewer.ID}
	return out, nil
}
