package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studydash/backend/config"
	"studydash/backend/controllers"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Chat routes
	chatController := controllers.NewChatController(cfg)
	app.Post("/api/chat", chatController.Chat)
	// Legacy alias with the old {prompt} body; strict about empty prompts.
	app.Post("/api/ask", chatController.Ask)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg)
	progress := app.Group("/api/progress")
	progress.Get("/", progressController.GetProgress)
	progress.Put("/", progressController.UpdateProfile)
	progress.Post("/chapter", progressController.ChapterDone)
	progress.Post("/boost", progressController.Boost)
	progress.Post("/xp", progressController.GrantXP)
}
