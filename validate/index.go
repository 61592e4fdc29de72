package validate

import (
	"errors"
	"regexp"
	"strconv"

	"flight_reservation/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

var (
	nameRe = regexp.MustCompile(`^[A-Za-z ]+$`)
	dateRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

func init() {
	validate.RegisterValidation("passenger_name", func(fl validator.FieldLevel) bool {
		return IsValidName(fl.Field().String())
	})
	validate.RegisterValidation("flight_date", func(fl validator.FieldLevel) bool {
		return IsValidDate(fl.Field().String())
	})
}

// IsValidName accepts letters and spaces only. Empty is invalid.
func IsValidName(value string) bool {
	return nameRe.MatchString(value)
}

// IsValidDate accepts the MM/DD/YYYY shape. Calendar ranges are not
// checked, so 13/99/2024 passes. Pattern match only.
func IsValidDate(value string) bool {
	return dateRe.MatchString(value)
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		valueKey, err := strconv.Atoi(c.Params(key))
		if err != nil || valueKey < 1 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Reservation id must be a positive number", errors.New("params invalid"))
		}

		c.Locals("inputId", valueKey)
		return c.Next()
	}
}
