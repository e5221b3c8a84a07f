package migration

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sumit21adm/School-Management-System-sub003/app/routes/auth"
)

func SetupMigrationRoutes(app *fiber.App) {
	api := app.Group("/api/migration")
	api.Use(auth.AuthMiddleware)

	api.Post("/validate/students", ValidateStudentsAPI)
	api.Post("/import/students", ImportStudentsAPI)
	api.Post("/import/fee-receipts", ImportFeeReceiptsAPI)
	api.Post("/import/demand-bills", ImportDemandBillsAPI)
	api.Post("/import/discounts", ImportDiscountsAPI)
	api.Post("/import/academic-history", ImportAcademicHistoryAPI)
	api.Get("/template", DownloadTemplateAPI)
}
