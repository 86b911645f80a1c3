package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"restaurant_manager/config"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/router"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // menu images
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.String("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept, X-Client-Signature",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie, X-Client-Signature",
		MaxAge:           600,
	}))

	database.ConnectDB()
	helper.InitCloudinary()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	helper.InitRedis(config.Config("REDIS_ADDR"))
	helper.StartEventRelay(ctx)

	helper.ReconcileAfterMutation()
	helper.StartArchiveScheduler()
	defer helper.StopArchiveScheduler()
	helper.StartMaintenanceScheduler()
	defer helper.StopMaintenanceScheduler()

	router.SetupRoutes(app)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + config.String("PORT", "8002")); err != nil {
		log.Fatal(err)
	}
}
