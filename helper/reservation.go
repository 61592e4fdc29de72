package helper

import (
	"flight_reservation/model"
	"flight_reservation/utils"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// CreateReservation inserts a validated booking and returns the stored row
// with its assigned id and minted booking code.
func CreateReservation(db *gorm.DB, input model.CreateReservationInput) (model.Reservation, error) {
	var reservation model.Reservation
	copier.Copy(&reservation, &input)
	reservation.Code = "RSV-" + uuid.New().String()[:8]

	if err := db.Create(&reservation).Error; err != nil {
		return model.Reservation{}, err
	}
	return reservation, nil
}

// GetReservation reports a missing id as gorm.ErrRecordNotFound.
func GetReservation(db *gorm.DB, id uint) (model.Reservation, error) {
	var reservation model.Reservation
	if err := db.First(&reservation, id).Error; err != nil {
		return model.Reservation{}, err
	}
	return reservation, nil
}

// ListReservations returns rows in insertion order plus the unpaged total.
func ListReservations(db *gorm.DB, filter model.ReservationFilter) ([]model.Reservation, int64, error) {
	query := db.Model(&model.Reservation{})
	if filter.Name != nil && *filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+*filter.Name+"%")
	}
	if filter.Date != nil && *filter.Date != "" {
		query = query.Where("date = ?", *filter.Date)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	var reservations []model.Reservation
	if err := query.Order("id ASC").Find(&reservations).Error; err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}

// UpdateReservation replaces the fields present in input; fields the user
// left untouched keep their stored values.
func UpdateReservation(db *gorm.DB, id uint, input model.UpdateReservationInput) (model.Reservation, error) {
	var reservation model.Reservation
	if err := db.First(&reservation, id).Error; err != nil {
		return model.Reservation{}, err
	}

	copier.CopyWithOption(&reservation, &input, copier.Option{IgnoreEmpty: true})

	if err := db.Save(&reservation).Error; err != nil {
		return model.Reservation{}, err
	}
	return reservation, nil
}

// DeleteReservation reports a missing id as gorm.ErrRecordNotFound rather
// than deleting nothing silently.
func DeleteReservation(db *gorm.DB, id uint) error {
	var reservation model.Reservation
	if err := db.First(&reservation, id).Error; err != nil {
		return err
	}
	return db.Delete(&reservation).Error
}
