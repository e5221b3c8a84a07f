package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sumit21adm/School-Management-System-sub003/app/routes/auth"
)

func SetupFeesRoutes(app *fiber.App) {
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)

	api.Get("/types", GetFeeTypesAPI)
	api.Post("/types", CreateFeeTypeAPI)
	api.Put("/types/:id", UpdateFeeTypeAPI)
}
