package models

import (
	"time"

	"gorm.io/gorm"
)

type RoomType struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"column:hotel_id;index" json:"hotel"`

	Name        string `json:"name" gorm:"size:100"`
	Description string `json:"description" gorm:"type:text"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
