package main

import (
	"log"
	"os"

	"flight_reservation/config"
	"flight_reservation/database"
	"flight_reservation/router"
	"flight_reservation/tui"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// The default mode launches the reservation form; "serve" exposes the same
// operations as a local JSON API.
func main() {
	config.Load()
	database.ConnectDB()

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serve()
		return
	}

	if err := tui.Run(database.DB); err != nil {
		log.Fatal(err)
	}
}

func serve() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":" + config.Config("PORT")))
}
