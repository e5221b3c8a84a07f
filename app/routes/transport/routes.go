package transport

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sumit21adm/School-Management-System-sub003/app/routes/auth"
)

func SetupTransportRoutes(app *fiber.App) {
	api := app.Group("/api/transport")
	api.Use(auth.AuthMiddleware)

	api.Get("/routes", GetRoutesAPI)
	api.Post("/routes", CreateRouteAPI)
	api.Post("/routes/:id/stops", CreateStopAPI)
}
