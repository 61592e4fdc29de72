package model

import "time"

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Pagination struct {
	Limit *int `json:"limit"`
	Page  *int `json:"page"`
}

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	Limit      *int  `json:"limit"`
	Page       *int  `json:"page"`
	TotalCount int64 `json:"totalCount"`
}
