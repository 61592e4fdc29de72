package database

import (
	"flight_reservation/model"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedData inserts a few demo reservations so a fresh database is not an
// empty screen. Runs only when the table has no rows.
func SeedData(db *gorm.DB) {
	var count int64
	db.Model(&model.Reservation{}).Count(&count)
	if count > 0 {
		return
	}

	reservations := []model.Reservation{
		{Name: "John Smith", FlightNumber: "UA1234", Departure: "Chicago", Destination: "Denver", Date: "08/25/2025", SeatNumber: "12A"},
		{Name: "Maria Garcia", FlightNumber: "DL0482", Departure: "Atlanta", Destination: "Boston", Date: "09/02/2025", SeatNumber: "3C"},
	}
	for i := range reservations {
		reservations[i].Code = "RSV-" + uuid.New().String()[:8]
	}

	if err := db.Create(&reservations).Error; err != nil {
		log.Println("failed to seed reservations:", err)
		return
	}
	log.Printf("seeded %d reservations", len(reservations))
}
