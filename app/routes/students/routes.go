package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sumit21adm/School-Management-System-sub003/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetStudentsAPI)            // List students with filters
	api.Get("/stats", GetStudentsStatsAPI)  // Headline counts
	api.Get("/:studentId", GetStudentAPI)   // Get one student by admission number
	api.Put("/:studentId", UpdateStudentAPI)
	api.Delete("/:studentId", DeleteStudentAPI)

	// Per-student fee data
	api.Get("/:studentId/receipts", GetStudentReceiptsAPI)
	api.Get("/:studentId/bills", GetStudentBillsAPI)
	api.Get("/:studentId/discounts", GetStudentDiscountsAPI)
}
