package students

import (
	"database/sql"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Sumit21adm/School-Management-System-sub003/app/config"
	"github.com/Sumit21adm/School-Management-System-sub003/app/database"
	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	filters := database.StudentFilters{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		ClassName: c.Query("class"),
		Section:   c.Query("section"),
		SessionID: c.Query("session_id"),
		Limit:     c.QueryInt("limit", 25),
		Offset:    c.QueryInt("offset", 0),
	}

	students, totalCount, err := database.GetStudentsWithFilters(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"students":    students,
		"count":       len(students),
		"total_count": totalCount,
		"has_more":    filters.Offset+len(students) < totalCount,
	})
}

// GetStudentsStatsAPI returns students statistics for the students page
func GetStudentsStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetStudentsStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch students statistics",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

func GetStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	student, err := database.GetStudentByStudentID(config.GetDB(), studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"student": student})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	type UpdateStudentRequest struct {
		Name        string `json:"name"`
		FatherName  string `json:"father_name"`
		MotherName  string `json:"mother_name"`
		DateOfBirth string `json:"date_of_birth"`
		Gender      string `json:"gender"`
		ClassName   string `json:"class_name"`
		Section     string `json:"section"`
		RollNumber  *int   `json:"roll_number"`
		Address     string `json:"address"`
		Phone       string `json:"phone"`
		Status      string `json:"status"`
	}

	var req UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	student, err := database.GetStudentByStudentID(config.GetDB(), studentID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	if req.Name != "" {
		student.Name = req.Name
	}
	if req.FatherName != "" {
		student.FatherName = &req.FatherName
	}
	if req.MotherName != "" {
		student.MotherName = &req.MotherName
	}
	if req.DateOfBirth != "" {
		if parsedDate, err := time.Parse("2006-01-02", req.DateOfBirth); err == nil {
			student.DateOfBirth = &parsedDate
		}
	}
	if req.Gender != "" && models.ValidGender(strings.ToLower(req.Gender)) {
		gender := models.Gender(strings.ToLower(req.Gender))
		student.Gender = &gender
	}
	if req.ClassName != "" {
		student.ClassName = req.ClassName
	}
	if req.Section != "" {
		student.Section = req.Section
	}
	if req.RollNumber != nil {
		student.RollNumber = req.RollNumber
	}
	if req.Address != "" {
		student.Address = &req.Address
	}
	if req.Phone != "" {
		student.Phone = &req.Phone
	}
	if req.Status != "" {
		student.Status = models.StudentStatus(req.Status)
	}

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{
		"message": "Student updated successfully",
		"student": student,
	})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	student, err := database.GetStudentByStudentID(config.GetDB(), studentID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	if err := database.DeleteStudent(config.GetDB(), student.ID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}

	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}

func GetStudentReceiptsAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByStudentID(config.GetDB(), c.Params("studentId"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	receipts, err := database.GetReceiptsByStudent(config.GetDB(), student.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch receipts"})
	}
	return c.JSON(fiber.Map{"receipts": receipts, "count": len(receipts)})
}

func GetStudentBillsAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByStudentID(config.GetDB(), c.Params("studentId"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	bills, err := database.GetBillsByStudent(config.GetDB(), student.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch bills"})
	}
	return c.JSON(fiber.Map{"bills": bills, "count": len(bills)})
}

func GetStudentDiscountsAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByStudentID(config.GetDB(), c.Params("studentId"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	discounts, err := database.GetDiscountsByStudent(config.GetDB(), student.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch discounts"})
	}
	return c.JSON(fiber.Map{"discounts": discounts, "count": len(discounts)})
}
