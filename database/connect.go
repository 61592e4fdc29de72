package database

import (
	"flight_reservation/config"
	"flight_reservation/model"
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens (or creates) the single-file store and keeps the handle
// for the process lifetime.
func ConnectDB() {
	var err error
	path := config.Config("DB_PATH")
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open database %s: %v", path, err)
	}

	if err := DB.AutoMigrate(&model.Reservation{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	fmt.Println("Connection Opened to Database:", path)

	if config.Config("SEED") == "true" {
		SeedData(DB)
	}
}
