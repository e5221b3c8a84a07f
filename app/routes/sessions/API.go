package sessions

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Sumit21adm/School-Management-System-sub003/app/config"
	"github.com/Sumit21adm/School-Management-System-sub003/app/database"
	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

func GetSessionsAPI(c *fiber.Ctx) error {
	sessions, err := database.GetAllSessions(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sessions"})
	}

	return c.JSON(fiber.Map{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

func GetCurrentSessionAPI(c *fiber.Ctx) error {
	session, err := database.GetCurrentSession(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch current session"})
	}
	if session == nil {
		return c.Status(404).JSON(fiber.Map{"error": "No active session; mark one session as current"})
	}
	return c.JSON(fiber.Map{"session": session})
}

func CreateSessionAPI(c *fiber.Ctx) error {
	type CreateSessionRequest struct {
		Name      string `json:"name"`
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
		IsCurrent bool   `json:"is_current"`
	}

	var req CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Session name is required"})
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid start date (expected YYYY-MM-DD)"})
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid end date (expected YYYY-MM-DD)"})
	}
	if !end.After(start) {
		return c.Status(400).JSON(fiber.Map{"error": "End date must be after start date"})
	}

	session := &models.AcademicSession{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		IsActive:  true,
	}
	if err := database.CreateSession(config.GetDB(), session); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create session"})
	}

	// Activation clears the flag on every other session.
	if req.IsCurrent {
		if err := database.ActivateSession(config.GetDB(), session.ID); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Session created but activation failed"})
		}
		session.IsCurrent = true
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Session created successfully",
		"session": session,
	})
}

func ActivateSessionAPI(c *fiber.Ctx) error {
	if err := database.ActivateSession(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Session not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to activate session"})
	}
	return c.JSON(fiber.Map{"message": "Session activated"})
}
