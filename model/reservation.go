package model

// Reservation is one booking row in the local store. Name and Date are
// validated on every write; the remaining booking fields are free text.
type Reservation struct {
	DTO
	Name         string `gorm:"size:100;not null" json:"name"`
	FlightNumber string `gorm:"size:20" json:"flightNumber"`
	Departure    string `gorm:"size:100" json:"departure"`
	Destination  string `gorm:"size:100" json:"destination"`
	Date         string `gorm:"size:10;not null" json:"date"` // MM/DD/YYYY
	SeatNumber   string `gorm:"size:10" json:"seatNumber"`
	Code         string `gorm:"size:20;uniqueIndex" json:"code"`
}

type CreateReservationInput struct {
	Name         string `json:"name" validate:"required,passenger_name"`
	FlightNumber string `json:"flightNumber" validate:"omitempty,max=20"`
	Departure    string `json:"departure" validate:"omitempty,max=100"`
	Destination  string `json:"destination" validate:"omitempty,max=100"`
	Date         string `json:"date" validate:"required,flight_date"`
	SeatNumber   string `json:"seatNumber" validate:"omitempty,max=10"`
}

// UpdateReservationInput carries only the fields the user touched;
// nil (or empty string) keeps the stored value.
type UpdateReservationInput struct {
	Name         *string `json:"name" validate:"omitempty,passenger_name"`
	FlightNumber *string `json:"flightNumber" validate:"omitempty,max=20"`
	Departure    *string `json:"departure" validate:"omitempty,max=100"`
	Destination  *string `json:"destination" validate:"omitempty,max=100"`
	Date         *string `json:"date" validate:"omitempty,flight_date"`
	SeatNumber   *string `json:"seatNumber" validate:"omitempty,max=10"`
}

type ReservationFilter struct {
	Pagination
	Name *string `json:"name"`
	Date *string `json:"date"`
}
