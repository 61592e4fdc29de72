package validate

import (
	"errors"
	"strconv"

	"flight_reservation/model"
	"flight_reservation/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateReservationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func EditReservation(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		valueKey, err := strconv.Atoi(c.Params(key))
		if err != nil || valueKey < 1 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Reservation id must be a positive number", errors.New("params invalid"))
		}

		var input model.UpdateReservationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("updateInput", input)
		c.Locals("reservationId", valueKey)
		return c.Next()
	}
}
