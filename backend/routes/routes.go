package routes

import (
	"log"

	"khelkhatm/backend/activity"
	"khelkhatm/backend/config"
	"khelkhatm/backend/controllers"
	"khelkhatm/backend/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, repo *repository.Repository, cfg *config.Config, client *activity.Client, snapshots controllers.Snapshotter, logger *log.Logger) {
	api := app.Group("/api")

	// DSA question routes
	dsaController := controllers.NewDSAController(repo, cfg)
	api.Get("/dsa", dsaController.GetQuestions)
	api.Put("/dsa", dsaController.UpdateStatus)
	api.Post("/dsa", dsaController.AddRevision)

	// CS concept routes
	csController := controllers.NewCSController(repo, cfg)
	api.Get("/cs", csController.GetConcepts)
	api.Put("/cs", csController.UpdateStatus)

	// Daily habit routes
	dailyController := controllers.NewDailyController(repo, cfg)
	api.Get("/daily", dailyController.GetLogs)
	api.Post("/daily", dailyController.UpsertLog)

	// Statistics
	statsController := controllers.NewStatsController(repo, cfg)
	api.Get("/stats", statsController.GetSummary)

	dashboardController := controllers.NewDashboardController(repo, cfg, snapshots)
	api.Get("/dashboard", dashboardController.GetDashboard)

	// Activity backend proxy
	leetcodeController := controllers.NewLeetCodeController(client, cfg, logger)
	leetcode := api.Group("/leetcode")
	leetcode.Get("/", leetcodeController.GetLive)
	leetcode.Post("/", leetcodeController.PushLive)
	leetcode.Get("/stats", leetcodeController.GetStats)
	leetcode.Get("/history", leetcodeController.GetHistory)
}
