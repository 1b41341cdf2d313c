package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/angad2212/taskify/logging"
	"github.com/angad2212/taskify/mockdata"
	"github.com/angad2212/taskify/models"
	"github.com/angad2212/taskify/repositories"
	"github.com/angad2212/taskify/services"
)

func main() {
	logging.InitLogger()
	logging.Logger.Info("Starting Taskify demo dashboard...")

	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("No .env file loaded: %v", err)
	}

	userRepo := repositories.NewInMemoryUserRepository()
	projectRepo := repositories.NewInMemoryProjectRepository()
	taskRepo := repositories.NewInMemoryTaskRepository()

	if err := mockdata.Seed(userRepo, projectRepo, taskRepo); err != nil {
		logging.Logger.Fatalf("Failed to seed demo data: %v", err)
	}

	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo, userRepo, taskRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo)
	analyticsService := services.NewAnalyticsService(userRepo, taskRepo)

	admin, err := userService.Login("john@example.com", models.RoleAdmin)
	if err != nil {
		logging.Logger.Fatalf("Login failed: %v", err)
	}
	member, err := userService.Login("jane@example.com", models.RoleMember)
	if err != nil {
		logging.Logger.Fatalf("Login failed: %v", err)
	}

	// Walk one task through the whole workflow: the member advances it to
	// completed, then the admin reviews it.
	task, err := taskService.CreateTask("p1", "Write API docs", "Document the task endpoints", member.ID, time.Now().AddDate(0, 1, 0), []string{"Writing"})
	if err != nil {
		logging.Logger.Fatalf("Failed to create task: %v", err)
	}
	for _, step := range []string{"start", "finish"} {
		if task, err = taskService.AdvanceTask(task.ID, member.AsActor()); err != nil {
			logging.Logger.Fatalf("Failed to %s task: %v", step, err)
		}
	}
	if task, err = taskService.SubmitReview(task.ID, admin.AsActor(), 8); err != nil {
		logging.Logger.Fatalf("Failed to review task: %v", err)
	}
	fmt.Printf("Task %q finished as %s with score %.1f\n\n", task.Title, task.Status, task.Review.Score)

	printProjects(projectService, analyticsService, admin.AsActor())
	printBoard(taskService, "p1")
	printTeamAnalytics(analyticsService, admin.AsActor())
}

func printBoard(tasks *services.TaskService, projectID string) {
	fmt.Println("Board:")
	for _, status := range models.AllStatuses {
		column, err := tasks.GetTasksByStatus(projectID, status)
		if err != nil {
			logging.Logger.Fatalf("Failed to load board column: %v", err)
		}
		fmt.Printf("  %-12s", status)
		for _, task := range column {
			fmt.Printf(" [%s]", task.Title)
		}
		fmt.Println()
	}
	fmt.Println()
}

func printProjects(projects *services.ProjectService, analytics *services.AnalyticsService, actor models.Actor) {
	visible, err := projects.GetProjectsForUser(actor)
	if err != nil {
		logging.Logger.Fatalf("Failed to list projects: %v", err)
	}

	fmt.Println("Projects:")
	for _, project := range visible {
		progress, err := analytics.ProjectProgress(project.ID)
		if err != nil {
			logging.Logger.Fatalf("Failed to compute progress: %v", err)
		}
		fmt.Printf("  %-20s %3.0f%% reviewed, %d members\n", project.Name, progress, len(project.Members))
	}
	fmt.Println()
}

func printTeamAnalytics(analytics *services.AnalyticsService, actor models.Actor) {
	team, err := analytics.ForTeam(actor)
	if err != nil {
		logging.Logger.Fatalf("Failed to compute team analytics: %v", err)
	}
	overview, err := analytics.Overview(actor)
	if err != nil {
		logging.Logger.Fatalf("Failed to compute overview: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "User\tRole\tTasks\tCompleted\tRate\tReviews\tAvg Score\tPerformance")
	for _, a := range team {
		score := "N/A"
		if a.HasScore {
			score = fmt.Sprintf("%.2f", a.AverageScore)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.0f%%\t%d\t%s\t%s\n",
			a.UserName, a.Role, a.TotalTasks, a.TasksCompleted, a.CompletionRate, a.TasksReviewed, score, a.Tier)
	}
	w.Flush()

	fmt.Printf("\nTeam: %d users, %d tasks (%d completed), average score %.2f\n",
		overview.TotalUsers, overview.TotalTasks, overview.CompletedTasks, overview.AverageScore)
}
