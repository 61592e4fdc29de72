package handler

import (
	"errors"

	"flight_reservation/database"
	"flight_reservation/helper"
	"flight_reservation/model"
	"flight_reservation/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetReservations(c *fiber.Ctx) error {
	filter := new(model.ReservationFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query", err)
	}

	reservations, total, err := helper.ListReservations(database.DB, *filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not list reservations", err)
	}

	response := &model.ResponseCustom{
		Rows:       reservations,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetReservationById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	reservation, err := helper.GetReservation(database.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not read reservation", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

func CreateReservation(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateReservationInput)

	reservation, err := helper.CreateReservation(database.DB, input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create reservation", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "Reservation saved",
		"data":    reservation,
	})
}

func EditReservation(c *fiber.Ctx) error {
	id := c.Locals("reservationId").(int)
	input := c.Locals("updateInput").(model.UpdateReservationInput)

	reservation, err := helper.UpdateReservation(database.DB, uint(id), input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not update reservation", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Changes saved",
		"data":    reservation,
	})
}

func DeleteReservation(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	if err := helper.DeleteReservation(database.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not delete reservation", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Reservation deleted",
	})
}

// GetReservationQR returns the booking code as a PNG QR image.
func GetReservationQR(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	reservation, err := helper.GetReservation(database.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not read reservation", err)
	}

	img, err := utils.GenerateQRCode(reservation.Code, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not generate QR code", err)
	}

	c.Set("Content-Type", "image/png")
	return c.Status(fiber.StatusOK).Send(img)
}
