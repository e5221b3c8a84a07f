package classes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sumit21adm/School-Management-System-sub003/app/config"
	"github.com/Sumit21adm/School-Management-System-sub003/app/database"
	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

func GetClassesAPI(c *fiber.Ctx) error {
	classes, err := database.GetActiveClasses(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}

	counts, err := database.GetClassStudentCounts(config.GetDB())
	if err == nil {
		for i := range classes {
			classes[i].StudentCount = counts[classes[i].Name]
		}
	}

	return c.JSON(fiber.Map{
		"classes": classes,
		"count":   len(classes),
	})
}

func CreateClassAPI(c *fiber.Ctx) error {
	type CreateClassRequest struct {
		Name string  `json:"name"`
		Code *string `json:"code"`
	}

	var req CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class name is required"})
	}

	class := &models.Class{Name: req.Name, Code: req.Code, IsActive: true}
	if err := database.CreateClass(config.GetDB(), class); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create class"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Class created successfully",
		"class":   class,
	})
}

func UpdateClassAPI(c *fiber.Ctx) error {
	type UpdateClassRequest struct {
		Name     string  `json:"name"`
		Code     *string `json:"code"`
		IsActive *bool   `json:"is_active"`
	}

	var req UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	class := &models.Class{ID: c.Params("id"), Name: req.Name, Code: req.Code, IsActive: true}
	if req.IsActive != nil {
		class.IsActive = *req.IsActive
	}
	if err := database.UpdateClass(config.GetDB(), class); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update class"})
	}

	return c.JSON(fiber.Map{
		"message": "Class updated successfully",
		"class":   class,
	})
}
