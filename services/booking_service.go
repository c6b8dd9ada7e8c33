// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService owns every write to the bookings table and enforces the one
// real invariant of the system: for a given (hotel, room), active bookings
// never have overlapping [checkIn, checkOut) intervals.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type CreateBookingInput struct {
	HotelID         uint
	RoomID          uint
	RoomNumber      string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CheckIn         string
	CheckOut        string
	NumberOfGuests  int
	TotalPrice      float64
	Status          string
	SpecialRequests string
	IDDocument      string
}

// BookingPatch is an explicit partial update: nil means "leave untouched",
// never "clear". Absent dates fall back to the stored ones for validation.
type BookingPatch struct {
	RoomID          *uint
	RoomNumber      *string
	CustomerName    *string
	CustomerEmail   *string
	CustomerPhone   *string
	CheckIn         *string
	CheckOut        *string
	NumberOfGuests  *int
	TotalPrice      *float64
	Status          *string
	SpecialRequests *string
	IDDocument      *string
}

// forUpdate adds a row lock on dialects that support it. SQLite (tests) has
// no FOR UPDATE and serializes writers through its database lock instead.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// findConflict returns the first active booking for (hotelID, roomID) whose
// interval intersects [checkIn, checkOut), or nil. Two half-open intervals
// overlap iff existing.checkIn < checkOut AND existing.checkOut > checkIn,
// so back-to-back stays are allowed. excludeID skips the booking being
// updated so it never conflicts with itself.
func (s *BookingService) findConflict(tx *gorm.DB, hotelID, roomID uint, checkIn, checkOut time.Time, excludeID uint) (*models.Booking, error) {
	q := tx.
		Where("hotel_id = ? AND room_id = ?", hotelID, roomID).
		Where("status IN ?", models.ActiveBookingStatuses).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var conflict models.Booking
	if err := q.Order("check_in ASC").First(&conflict).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check room availability: %w", err)
	}
	return &conflict, nil
}

func roomUnavailableErr(conflict *models.Booking) error {
	return opErr(ErrRoomUnavailable,
		"Room is already booked from %s to %s. Please select different dates.",
		utils.FormatYMD(conflict.CheckIn), utils.FormatYMD(conflict.CheckOut))
}

// validateDateOrder rejects a checkout that isn't strictly after the checkin.
// Comparison is lexical on the Y-M-D strings, calendar days only.
func validateDateOrder(checkIn, checkOut time.Time) error {
	inStr := utils.FormatYMD(checkIn)
	outStr := utils.FormatYMD(checkOut)
	if outStr <= inStr {
		return opErr(ErrInvalidDateRange,
			"Check-out date (%s) must be after check-in date (%s)", outStr, inStr)
	}
	return nil
}

func validateStatus(status string) error {
	if !models.ValidBookingStatus(status) {
		return opErr(ErrValidation, "Invalid booking status: %s", status)
	}
	return nil
}

// isDuplicateKeyErr spots storage-level uniqueness/constraint rejections so
// they can be remapped instead of leaking as raw SQL errors.
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint")
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

// CreateBooking validates the input, checks the room is free for the interval
// and persists the booking. The availability check and the insert run in one
// transaction with the room row locked first, so two concurrent requests for
// the same room serialize rather than double-book.
func (s *BookingService) CreateBooking(input CreateBookingInput) (*models.Booking, error) {
	if input.HotelID == 0 {
		return nil, opErr(ErrInvalidReference, "Valid hotel ID is required")
	}
	if input.RoomID == 0 {
		return nil, opErr(ErrInvalidReference, "Valid room ID is required")
	}

	if strings.TrimSpace(input.CheckIn) == "" || strings.TrimSpace(input.CheckOut) == "" {
		return nil, opErr(ErrMissingDates, "Check-in and check-out dates are required")
	}
	checkIn, err := utils.NormalizeLocalDate(input.CheckIn)
	if err != nil {
		return nil, opErr(ErrValidation, "Invalid check-in date: %v", err)
	}
	checkOut, err := utils.NormalizeLocalDate(input.CheckOut)
	if err != nil {
		return nil, opErr(ErrValidation, "Invalid check-out date: %v", err)
	}
	if err := validateDateOrder(checkIn, checkOut); err != nil {
		return nil, err
	}

	if err := validateGuestFields(input.CustomerName, input.CustomerEmail, input.CustomerPhone); err != nil {
		return nil, err
	}
	if input.TotalPrice < 0 {
		return nil, opErr(ErrValidation, "Total price must be positive")
	}

	status := input.Status
	if status == "" {
		status = models.BookingStatusConfirmed
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	guests := input.NumberOfGuests
	if guests <= 0 {
		guests = 1
	}

	var bookingID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := forUpdate(tx).
			Where("id = ? AND hotel_id = ?", input.RoomID, input.HotelID).
			First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return opErr(ErrInvalidReference, "Room not found for this hotel")
			}
			return fmt.Errorf("db error checking room %d: %w", input.RoomID, err)
		}

		conflict, err := s.findConflict(tx, input.HotelID, input.RoomID, checkIn, checkOut, 0)
		if err != nil {
			return err
		}
		if conflict != nil {
			return roomUnavailableErr(conflict)
		}

		roomNumber := strings.TrimSpace(input.RoomNumber)
		if roomNumber == "" {
			roomNumber = room.RoomNumber
		}

		totalPrice := input.TotalPrice
		if totalPrice == 0 {
			totalPrice = room.Price * float64(utils.NightsBetween(checkIn, checkOut))
		}

		booking := models.Booking{
			HotelID:         input.HotelID,
			RoomID:          input.RoomID,
			RoomNumber:      roomNumber,
			ReferenceCode:   newReferenceCode(),
			CustomerName:    strings.TrimSpace(input.CustomerName),
			CustomerEmail:   strings.ToLower(strings.TrimSpace(input.CustomerEmail)),
			CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			NumberOfGuests:  guests,
			TotalPrice:      totalPrice,
			Status:          status,
			SpecialRequests: strings.TrimSpace(input.SpecialRequests),
			IDDocument:      strings.TrimSpace(input.IDDocument),
		}
		if err := tx.Create(&booking).Error; err != nil {
			if isDuplicateKeyErr(err) {
				return opErr(ErrRoomUnavailable, "Room is already booked for the selected dates")
			}
			return fmt.Errorf("failed to create booking: %w", err)
		}

		bookingID = booking.ID
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetBooking(input.HotelID, bookingID)
}

// UpdateBooking applies a partial update. Dates and room default to the stored
// values, and the overlap check runs against that effective combination with
// the booking's own id excluded, so touching only the guest count never
// trips on the booking's own interval. Deactivating updates (status to
// cancelled/completed) skip the check: they only remove an interval.
func (s *BookingService) UpdateBooking(hotelID, bookingID uint, patch BookingPatch) (*models.Booking, error) {
	if hotelID == 0 {
		return nil, opErr(ErrInvalidReference, "Valid hotel ID is required")
	}
	if bookingID == 0 {
		return nil, opErr(ErrInvalidReference, "Invalid booking ID")
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Booking
		if err := forUpdate(tx).
			Where("id = ? AND hotel_id = ?", bookingID, hotelID).
			First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return opErr(ErrNotFound, "Booking not found")
			}
			return fmt.Errorf("failed to load booking %d: %w", bookingID, err)
		}

		checkIn := utils.NormalizeDay(existing.CheckIn)
		if patch.CheckIn != nil {
			t, err := utils.NormalizeLocalDate(*patch.CheckIn)
			if err != nil {
				return opErr(ErrValidation, "Invalid check-in date: %v", err)
			}
			checkIn = t
		}
		checkOut := utils.NormalizeDay(existing.CheckOut)
		if patch.CheckOut != nil {
			t, err := utils.NormalizeLocalDate(*patch.CheckOut)
			if err != nil {
				return opErr(ErrValidation, "Invalid check-out date: %v", err)
			}
			checkOut = t
		}
		if err := validateDateOrder(checkIn, checkOut); err != nil {
			return err
		}

		roomID := existing.RoomID
		if patch.RoomID != nil {
			if *patch.RoomID == 0 {
				return opErr(ErrInvalidReference, "Valid room ID is required")
			}
			roomID = *patch.RoomID
		}

		status := existing.Status
		if patch.Status != nil {
			if err := validateStatus(*patch.Status); err != nil {
				return err
			}
			status = *patch.Status
		}

		var room models.Room
		if err := forUpdate(tx).
			Where("id = ? AND hotel_id = ?", roomID, hotelID).
			First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return opErr(ErrInvalidReference, "Room not found for this hotel")
			}
			return fmt.Errorf("db error checking room %d: %w", roomID, err)
		}

		// Only an effective active booking can collide with others; cancelled
		// and completed ones are out of the consideration set.
		if status == models.BookingStatusConfirmed || status == models.BookingStatusReserved {
			conflict, err := s.findConflict(tx, hotelID, roomID, checkIn, checkOut, bookingID)
			if err != nil {
				return err
			}
			if conflict != nil {
				return roomUnavailableErr(conflict)
			}
		}

		updates := map[string]interface{}{}
		if patch.RoomID != nil {
			updates["room_id"] = roomID
			// keep the snapshot in sync when the room changes
			if patch.RoomNumber == nil {
				updates["room_number"] = room.RoomNumber
			}
		}
		if patch.RoomNumber != nil {
			updates["room_number"] = strings.TrimSpace(*patch.RoomNumber)
		}
		if patch.CustomerName != nil {
			if strings.TrimSpace(*patch.CustomerName) == "" {
				return opErr(ErrValidation, "Customer name is required")
			}
			updates["customer_name"] = strings.TrimSpace(*patch.CustomerName)
		}
		if patch.CustomerEmail != nil {
			if !looksLikeEmail(*patch.CustomerEmail) {
				return opErr(ErrValidation, "Please enter a valid email")
			}
			updates["customer_email"] = strings.ToLower(strings.TrimSpace(*patch.CustomerEmail))
		}
		if patch.CustomerPhone != nil {
			updates["customer_phone"] = strings.TrimSpace(*patch.CustomerPhone)
		}
		if patch.CheckIn != nil {
			updates["check_in"] = checkIn
		}
		if patch.CheckOut != nil {
			updates["check_out"] = checkOut
		}
		if patch.NumberOfGuests != nil {
			if *patch.NumberOfGuests < 1 {
				return opErr(ErrValidation, "Number of guests must be at least 1")
			}
			updates["number_of_guests"] = *patch.NumberOfGuests
		}
		if patch.TotalPrice != nil {
			if *patch.TotalPrice < 0 {
				return opErr(ErrValidation, "Total price must be positive")
			}
			updates["total_price"] = *patch.TotalPrice
		}
		if patch.Status != nil {
			updates["status"] = status
		}
		if patch.SpecialRequests != nil {
			updates["special_requests"] = strings.TrimSpace(*patch.SpecialRequests)
		}
		if patch.IDDocument != nil {
			updates["id_document"] = strings.TrimSpace(*patch.IDDocument)
		}

		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			if isDuplicateKeyErr(err) {
				return opErr(ErrRoomUnavailable, "Room is already booked for the selected dates")
			}
			return fmt.Errorf("failed to update booking %d: %w", bookingID, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetBooking(hotelID, bookingID)
}

// CancelBooking sets status=cancelled unconditionally for a hotel-owned
// booking. No overlap check: cancellation only removes an interval from
// consideration. Cancelling an already-cancelled booking succeeds unchanged.
func (s *BookingService) CancelBooking(hotelID, bookingID uint) (*models.Booking, error) {
	if hotelID == 0 {
		return nil, opErr(ErrInvalidReference, "Valid hotel ID is required")
	}

	var booking models.Booking
	if err := s.DB.Where("id = ? AND hotel_id = ?", bookingID, hotelID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, opErr(ErrNotFound, "Booking not found")
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", bookingID, err)
	}

	if booking.Status != models.BookingStatusCancelled {
		if err := s.DB.Model(&booking).
			Update("status", models.BookingStatusCancelled).Error; err != nil {
			return nil, fmt.Errorf("failed to cancel booking %d: %w", bookingID, err)
		}
	}

	return s.GetBooking(hotelID, bookingID)
}

// DeleteBooking hard-removes a hotel-owned booking.
func (s *BookingService) DeleteBooking(hotelID, bookingID uint) error {
	if hotelID == 0 {
		return opErr(ErrInvalidReference, "Valid hotel ID is required")
	}

	res := s.DB.Where("id = ? AND hotel_id = ?", bookingID, hotelID).Delete(&models.Booking{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete booking %d: %w", bookingID, res.Error)
	}
	if res.RowsAffected == 0 {
		return opErr(ErrNotFound, "Booking not found")
	}
	return nil
}

// GetBooking is a hotel-scoped single fetch with the room snapshot attached.
func (s *BookingService) GetBooking(hotelID, bookingID uint) (*models.Booking, error) {
	if hotelID == 0 {
		return nil, opErr(ErrInvalidReference, "Valid hotel ID is required")
	}

	var booking models.Booking
	if err := s.DB.Preload("Room").
		Where("id = ? AND hotel_id = ?", bookingID, hotelID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, opErr(ErrNotFound, "Booking not found")
		}
		return nil, fmt.Errorf("failed to retrieve booking %d: %w", bookingID, err)
	}
	return &booking, nil
}

// ListBookings returns every booking of the hotel, newest created first, each
// with its room attached when the room still exists.
func (s *BookingService) ListBookings(hotelID uint) ([]models.Booking, error) {
	if hotelID == 0 {
		return nil, opErr(ErrInvalidReference, "Valid hotel ID is required")
	}

	var list []models.Booking
	if err := s.DB.Preload("Room").
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

func looksLikeEmail(s string) bool {
	s = strings.TrimSpace(s)
	at := strings.Index(s, "@")
	return at > 0 && strings.Contains(s[at:], ".")
}

func validateGuestFields(name, email, phone string) error {
	if strings.TrimSpace(name) == "" {
		return opErr(ErrValidation, "Customer name is required")
	}
	if strings.TrimSpace(email) == "" {
		return opErr(ErrValidation, "Customer email is required")
	}
	if !looksLikeEmail(email) {
		return opErr(ErrValidation, "Please enter a valid email")
	}
	if strings.TrimSpace(phone) == "" {
		return opErr(ErrValidation, "Customer phone is required")
	}
	return nil
}
