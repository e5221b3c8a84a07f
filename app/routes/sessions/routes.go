package sessions

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sumit21adm/School-Management-System-sub003/app/routes/auth"
)

func SetupSessionsRoutes(app *fiber.App) {
	api := app.Group("/api/sessions")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetSessionsAPI)
	api.Get("/current", GetCurrentSessionAPI)
	api.Post("/", CreateSessionAPI)
	api.Post("/:id/activate", ActivateSessionAPI)
}
