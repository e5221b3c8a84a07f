package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/Sumit21adm/School-Management-System-sub003/app/config"
	"github.com/Sumit21adm/School-Management-System-sub003/app/database"
	"github.com/Sumit21adm/School-Management-System-sub003/app/routes/auth"
	"github.com/Sumit21adm/School-Management-System-sub003/app/routes/classes"
	"github.com/Sumit21adm/School-Management-System-sub003/app/routes/fees"
	"github.com/Sumit21adm/School-Management-System-sub003/app/routes/migration"
	"github.com/Sumit21adm/School-Management-System-sub003/app/routes/sessions"
	"github.com/Sumit21adm/School-Management-System-sub003/app/routes/students"
	"github.com/Sumit21adm/School-Management-System-sub003/app/routes/transport"
	"github.com/Sumit21adm/School-Management-System-sub003/app/services"
)

// customErrorHandler renders HTTP errors as JSON for all requests.
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    20 * 1024 * 1024, // spreadsheet uploads
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup classes routes
	classes.SetupClassesRoutes(app)

	// Setup sessions routes
	sessions.SetupSessionsRoutes(app)

	// Setup fees routes
	fees.SetupFeesRoutes(app)

	// Setup transport routes
	transport.SetupTransportRoutes(app)

	// Setup data migration routes
	migration.SetupMigrationRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	addr := ":" + config.AppConfig.Port
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
