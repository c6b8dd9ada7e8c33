// models/booking.go
package models

import "time"

// Booking statuses. Only confirmed and reserved bookings hold their room;
// cancelled and completed ones never block new bookings.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusReserved  = "reserved"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// ActiveBookingStatuses are the statuses considered by the overlap check.
var ActiveBookingStatuses = []string{BookingStatusConfirmed, BookingStatusReserved}

// ValidBookingStatus reports whether s is one of the known statuses.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusReserved, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// Booking is a guest stay in one room of one hotel. CheckIn/CheckOut are
// local-midnight calendar dates; the stay interval is half-open
// [CheckIn, CheckOut), so a checkout and a checkin on the same day don't clash.
type Booking struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"column:hotel_id;index:idx_bookings_hotel_room" json:"hotel"`
	RoomID  uint `gorm:"column:room_id;index:idx_bookings_hotel_room" json:"roomId"`

	// Snapshot of the room number at booking time; not live-joined.
	RoomNumber string `gorm:"column:room_number;size:50" json:"roomNumber"`

	ReferenceCode string `gorm:"column:reference_code;size:64" json:"referenceCode,omitempty"`

	CustomerName  string `gorm:"column:customer_name;size:255" json:"customerName"`
	CustomerEmail string `gorm:"column:customer_email;size:255" json:"customerEmail"`
	CustomerPhone string `gorm:"column:customer_phone;size:50" json:"customerPhone"`

	CheckIn  time.Time `gorm:"column:check_in" json:"checkIn"`
	CheckOut time.Time `gorm:"column:check_out" json:"checkOut"`

	NumberOfGuests int     `gorm:"column:number_of_guests" json:"numberOfGuests"`
	TotalPrice     float64 `gorm:"column:total_price" json:"totalPrice"`
	Status         string  `gorm:"column:status;size:32;index" json:"status"`

	SpecialRequests string `gorm:"column:special_requests;type:text" json:"specialRequests,omitempty"`
	IDDocument      string `gorm:"column:id_document;size:512" json:"idDocument,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// IsActive reports whether the booking counts toward overlap detection.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusConfirmed || b.Status == BookingStatusReserved
}
