package tui

import (
	"testing"

	"flight_reservation/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsFillAndCreateInput(t *testing.T) {
	var f reservationFields
	f.fill(model.Reservation{
		Name:         "John Smith",
		FlightNumber: "UA1234",
		Departure:    "Chicago",
		Destination:  "Denver",
		Date:         "12/25/2024",
		SeatNumber:   "12A",
	})

	input := f.createInput()
	assert.Equal(t, "John Smith", input.Name)
	assert.Equal(t, "UA1234", input.FlightNumber)
	assert.Equal(t, "12/25/2024", input.Date)
	assert.Equal(t, "12A", input.SeatNumber)
}

func TestUpdateInputSkipsEmptyFields(t *testing.T) {
	f := reservationFields{date: "01/02/2026", seat: "1B"}

	input := f.updateInput()
	assert.Nil(t, input.Name)
	assert.Nil(t, input.FlightNumber)
	assert.Nil(t, input.Departure)
	assert.Nil(t, input.Destination)
	require.NotNil(t, input.Date)
	assert.Equal(t, "01/02/2026", *input.Date)
	require.NotNil(t, input.SeatNumber)
	assert.Equal(t, "1B", *input.SeatNumber)
}

func TestNameValidator(t *testing.T) {
	required := nameValidator(true)
	assert.Error(t, required(""))
	assert.Error(t, required("John3"))
	assert.NoError(t, required("John Smith"))

	optional := nameValidator(false)
	assert.NoError(t, optional(""))
	assert.Error(t, optional("John3"))
}

func TestDateValidator(t *testing.T) {
	required := dateValidator(true)
	assert.Error(t, required(""))
	assert.Error(t, required("2024-12-25"))
	assert.NoError(t, required("12/25/2024"))

	optional := dateValidator(false)
	assert.NoError(t, optional(""))
	assert.Error(t, optional("12/25/24"))
}

func TestMaxLenValidator(t *testing.T) {
	seat := maxLenValidator(10)
	assert.NoError(t, seat(""))
	assert.NoError(t, seat("12A"))
	assert.NoError(t, seat("1234567890"))
	assert.Error(t, seat("12345678901"))
}

func TestIDValidator(t *testing.T) {
	assert.NoError(t, idValidator("7"))
	assert.Error(t, idValidator("0"))
	assert.Error(t, idValidator("-3"))
	assert.Error(t, idValidator("abc"))
	assert.Error(t, idValidator(""))
}
