package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sumit21adm/School-Management-System-sub003/app/config"
	"github.com/Sumit21adm/School-Management-System-sub003/app/database"
	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

func GetFeeTypesAPI(c *fiber.Ctx) error {
	types, err := database.GetAllFeeTypes(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee types"})
	}

	return c.JSON(fiber.Map{
		"fee_types": types,
		"count":     len(types),
	})
}

func CreateFeeTypeAPI(c *fiber.Ctx) error {
	type CreateFeeTypeRequest struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}

	var req CreateFeeTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Fee type name is required"})
	}

	ft := &models.FeeType{Name: req.Name, Description: req.Description, IsActive: true}
	if err := database.CreateFeeType(config.GetDB(), ft); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create fee type"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":  "Fee type created successfully",
		"fee_type": ft,
	})
}

func UpdateFeeTypeAPI(c *fiber.Ctx) error {
	type UpdateFeeTypeRequest struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		IsActive    *bool   `json:"is_active"`
	}

	var req UpdateFeeTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	ft := &models.FeeType{ID: c.Params("id"), Name: req.Name, Description: req.Description, IsActive: true}
	if req.IsActive != nil {
		ft.IsActive = *req.IsActive
	}
	if err := database.UpdateFeeType(config.GetDB(), ft); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update fee type"})
	}

	return c.JSON(fiber.Map{
		"message":  "Fee type updated successfully",
		"fee_type": ft,
	})
}
