package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

type Room struct {
	gorm.Model

	HotelID    uint   `gorm:"column:hotel_id;index" json:"hotel"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;type:varchar(50)"`
	RoomType   string `json:"roomType" gorm:"column:room_type;type:varchar(100)"`

	// Nightly rate; the booking engine derives total price from it when the
	// caller doesn't supply one.
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`

	Amenities   datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	Description string         `json:"description" gorm:"type:text"`
	Status      string         `json:"status" gorm:"size:32;default:available"`

	// Image URLs on the external image host, at most 5.
	Images datatypes.JSON `gorm:"column:images" json:"images,omitempty"`
}
