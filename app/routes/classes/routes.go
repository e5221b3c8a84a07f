package classes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sumit21adm/School-Management-System-sub003/app/routes/auth"
)

func SetupClassesRoutes(app *fiber.App) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetClassesAPI)
	api.Post("/", CreateClassAPI)
	api.Put("/:id", UpdateClassAPI)
}
