package models

import "time"

// Hotel is the tenant: every room, room type, amenity and booking belongs to
// exactly one hotel, and every query is scoped by its id.
type Hotel struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255" json:"name"`
	Email   string `gorm:"size:150" json:"email"`
	Phone   string `gorm:"size:50" json:"phone"`
	Address string `gorm:"type:text" json:"address"`
	Website string `gorm:"size:255" json:"website,omitempty"`
	Logo    string `gorm:"size:512" json:"logo,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
