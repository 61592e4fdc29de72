package tui

import (
	"errors"
	"fmt"
	"strconv"

	"flight_reservation/model"
	"flight_reservation/utils"
	"flight_reservation/validate"

	"github.com/charmbracelet/huh"
)

// reservationFields backs both the booking and the edit form.
type reservationFields struct {
	name        string
	date        string
	flight      string
	departure   string
	destination string
	seat        string
}

func (f *reservationFields) fill(r model.Reservation) {
	f.name = r.Name
	f.date = r.Date
	f.flight = r.FlightNumber
	f.departure = r.Departure
	f.destination = r.Destination
	f.seat = r.SeatNumber
}

func (f *reservationFields) createInput() model.CreateReservationInput {
	return model.CreateReservationInput{
		Name:         f.name,
		FlightNumber: f.flight,
		Departure:    f.departure,
		Destination:  f.destination,
		Date:         f.date,
		SeatNumber:   f.seat,
	}
}

// updateInput maps empty fields to nil so untouched values keep their
// stored contents.
func (f *reservationFields) updateInput() model.UpdateReservationInput {
	input := model.UpdateReservationInput{}
	if f.name != "" {
		input.Name = utils.Ptr(f.name)
	}
	if f.date != "" {
		input.Date = utils.Ptr(f.date)
	}
	if f.flight != "" {
		input.FlightNumber = utils.Ptr(f.flight)
	}
	if f.departure != "" {
		input.Departure = utils.Ptr(f.departure)
	}
	if f.destination != "" {
		input.Destination = utils.Ptr(f.destination)
	}
	if f.seat != "" {
		input.SeatNumber = utils.Ptr(f.seat)
	}
	return input
}

func nameValidator(required bool) func(string) error {
	return func(s string) error {
		if s == "" {
			if required {
				return errors.New("name is required")
			}
			return nil
		}
		if !validate.IsValidName(s) {
			return errors.New("Name must contain letters and spaces only")
		}
		return nil
	}
}

func dateValidator(required bool) func(string) error {
	return func(s string) error {
		if s == "" {
			if required {
				return errors.New("date is required")
			}
			return nil
		}
		if !validate.IsValidDate(s) {
			return errors.New("Date must be in MM/DD/YYYY format (ex: 08/25/2025)")
		}
		return nil
	}
}

// maxLenValidator mirrors the max=N struct tags on the HTTP inputs so both
// surfaces accept the same values.
func maxLenValidator(limit int) func(string) error {
	return func(s string) error {
		if len(s) > limit {
			return fmt.Errorf("must be at most %d characters", limit)
		}
		return nil
	}
}

func idValidator(s string) error {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return errors.New("ID must be a positive number")
	}
	return nil
}

// newReservationForm builds the six-field form. On the edit page every
// field may be left empty to keep the stored value.
func newReservationForm(f *reservationFields, required bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.name).
				Validate(nameValidator(required)),
			huh.NewInput().
				Title("Date (MM/DD/YYYY)").
				Value(&f.date).
				Validate(dateValidator(required)),
			huh.NewInput().
				Title("Flight Number").
				Value(&f.flight).
				Validate(maxLenValidator(20)),
			huh.NewInput().
				Title("Departure").
				Value(&f.departure).
				Validate(maxLenValidator(100)),
			huh.NewInput().
				Title("Destination").
				Value(&f.destination).
				Validate(maxLenValidator(100)),
			huh.NewInput().
				Title("Seat Number").
				Value(&f.seat).
				Validate(maxLenValidator(10)),
		),
	).WithShowHelp(false)
}

func newIDForm(title string, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(value).
				Validate(idValidator),
		),
	).WithShowHelp(false)
}
