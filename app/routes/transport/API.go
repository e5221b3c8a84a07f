package transport

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sumit21adm/School-Management-System-sub003/app/config"
	"github.com/Sumit21adm/School-Management-System-sub003/app/database"
	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

func GetRoutesAPI(c *fiber.Ctx) error {
	routes, err := database.GetActiveRoutesWithStops(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch transport routes"})
	}

	return c.JSON(fiber.Map{
		"routes": routes,
		"count":  len(routes),
	})
}

func CreateRouteAPI(c *fiber.Ctx) error {
	type CreateRouteRequest struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}

	var req CreateRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Code == "" || req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Route code and name are required"})
	}

	route := &models.TransportRoute{Code: req.Code, Name: req.Name, IsActive: true}
	if err := database.CreateRoute(config.GetDB(), route); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create route"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Route created successfully",
		"route":   route,
	})
}

func CreateStopAPI(c *fiber.Ctx) error {
	type CreateStopRequest struct {
		Name string  `json:"name"`
		Fare float64 `json:"fare"`
	}

	var req CreateStopRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Stop name is required"})
	}

	stop := &models.RouteStop{RouteID: c.Params("id"), Name: req.Name, Fare: req.Fare}
	if err := database.CreateRouteStop(config.GetDB(), stop); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create stop"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Stop created successfully",
		"stop":    stop,
	})
}
