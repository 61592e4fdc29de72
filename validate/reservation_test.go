package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidName(t *testing.T) {
	valid := []string{"John Smith", "Anna", "Mary Jane Watson", "a"}
	for _, name := range valid {
		assert.True(t, IsValidName(name), "expected %q to be valid", name)
	}

	invalid := []string{"", "John3", "Jane-Doe", "O'Brien", "  John!", "123", "John\tSmith"}
	for _, name := range invalid {
		assert.False(t, IsValidName(name), "expected %q to be invalid", name)
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"12/25/2024", "08/25/2025", "01/01/0000"}
	for _, date := range valid {
		assert.True(t, IsValidDate(date), "expected %q to be valid", date)
	}

	invalid := []string{"", "2024-12-25", "1/1/2024", "12/25/24", "12-25-2024", "12/25/2024 ", "ab/cd/efgh"}
	for _, date := range invalid {
		assert.False(t, IsValidDate(date), "expected %q to be invalid", date)
	}
}

// Shape-only contract: month/day ranges are not enforced.
func TestIsValidDatePatternOnly(t *testing.T) {
	assert.True(t, IsValidDate("13/99/2024"))
	assert.True(t, IsValidDate("00/00/9999"))
}

func TestCustomRulesRegistered(t *testing.T) {
	type input struct {
		Name string `validate:"required,passenger_name"`
		Date string `validate:"required,flight_date"`
	}

	assert.NoError(t, validate.Struct(input{Name: "John Smith", Date: "12/25/2024"}))
	assert.Error(t, validate.Struct(input{Name: "John3", Date: "12/25/2024"}))
	assert.Error(t, validate.Struct(input{Name: "John Smith", Date: "2024-12-25"}))
}
