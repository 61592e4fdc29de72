package router

import (
	"flight_reservation/handler"
	"flight_reservation/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	reservation := v1.Group("/reservation", logger.New())
	reservation.Get("/", handler.GetReservations)
	reservation.Get("/:reservationId", validate.GetById("reservationId"), handler.GetReservationById)
	reservation.Get("/:reservationId/qr", validate.GetById("reservationId"), handler.GetReservationQR)
	reservation.Post("/", validate.CreateReservation(), handler.CreateReservation)
	reservation.Put("/:reservationId", validate.EditReservation("reservationId"), handler.EditReservation)
	reservation.Delete("/:reservationId", validate.GetById("reservationId"), handler.DeleteReservation)
}
