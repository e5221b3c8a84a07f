package migration

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/Sumit21adm/School-Management-System-sub003/app/config"
	"github.com/Sumit21adm/School-Management-System-sub003/app/database"
	"github.com/Sumit21adm/School-Management-System-sub003/app/migration"
)

func pipeline() *migration.Service {
	return migration.NewService(database.NewStore(config.GetDB()))
}

// readUpload pulls the uploaded workbook out of the multipart form.
func readUpload(c *fiber.Ctx) ([]byte, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, err
	}
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func readOptions(c *fiber.Ctx) migration.Options {
	return migration.ParseOptions(c.FormValue("skipOnError"))
}

func ValidateStudentsAPI(c *fiber.Ctx) error {
	data, err := readUpload(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No file uploaded"})
	}

	result, err := pipeline().ValidateStudents(data)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}
	return c.JSON(result)
}

func ImportStudentsAPI(c *fiber.Ctx) error {
	data, err := readUpload(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No file uploaded"})
	}

	result, err := pipeline().ImportStudents(data, readOptions(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Import failed: " + err.Error()})
	}
	return c.JSON(result)
}

func ImportFeeReceiptsAPI(c *fiber.Ctx) error {
	data, err := readUpload(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No file uploaded"})
	}

	result, err := pipeline().ImportFeeReceipts(data, readOptions(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Import failed: " + err.Error()})
	}
	return c.JSON(result)
}

func ImportDemandBillsAPI(c *fiber.Ctx) error {
	data, err := readUpload(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No file uploaded"})
	}

	result, err := pipeline().ImportDemandBills(data, readOptions(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Import failed: " + err.Error()})
	}
	return c.JSON(result)
}

func ImportDiscountsAPI(c *fiber.Ctx) error {
	data, err := readUpload(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No file uploaded"})
	}

	result, err := pipeline().ImportDiscounts(data, readOptions(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Import failed: " + err.Error()})
	}
	return c.JSON(result)
}

func ImportAcademicHistoryAPI(c *fiber.Ctx) error {
	data, err := readUpload(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No file uploaded"})
	}

	result, err := pipeline().ImportAcademicHistory(data, readOptions(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Import failed: " + err.Error()})
	}
	return c.JSON(result)
}

func DownloadTemplateAPI(c *fiber.Ctx) error {
	data, err := pipeline().GenerateTemplate()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate template: " + err.Error()})
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="bulk-import-template.xlsx"`)
	return c.Send(data)
}
