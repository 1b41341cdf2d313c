package models

type PerformanceTier string

const (
	TierExcellent        PerformanceTier = "Excellent"
	TierGood             PerformanceTier = "Good"
	TierAverage          PerformanceTier = "Average"
	TierNeedsImprovement PerformanceTier = "Needs Improvement"
	TierNoScore          PerformanceTier = "No Score"
)

// UserAnalytics is a derived, read-only projection over the task
// collection. It is recomputed on demand and never stored.
type UserAnalytics struct {
	UserID         string          `json:"userId"`
	UserName       string          `json:"userName"`
	Email          string          `json:"email"`
	Role           Role            `json:"role"`
	TotalTasks     int             `json:"totalTasks"`
	TasksCompleted int             `json:"tasksCompleted"`
	TasksReviewed  int             `json:"tasksReviewed"`
	CompletionRate float64         `json:"completionRate"`
	AverageScore   float64         `json:"averageScore"`
	HasScore       bool            `json:"hasScore"`
	Tier           PerformanceTier `json:"performanceTier"`
}

// TeamOverview backs the dashboard summary cards.
type TeamOverview struct {
	TotalUsers     int     `json:"totalUsers"`
	TotalTasks     int     `json:"totalTasks"`
	CompletedTasks int     `json:"completedTasks"`
	AverageScore   float64 `json:"averageScore"`
}

// RoleDistribution backs the role breakdown chart.
type RoleDistribution struct {
	Admins  int `json:"admins"`
	Members int `json:"members"`
}
