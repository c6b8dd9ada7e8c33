// controllers/booking_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	Hotel           uint           `json:"hotel"`
	RoomID          models.RoomRef `json:"roomId"`
	RoomNumber      string         `json:"roomNumber"`
	CustomerName    string         `json:"customerName"`
	CustomerEmail   string         `json:"customerEmail"`
	CustomerPhone   string         `json:"customerPhone"`
	CheckIn         string         `json:"checkIn"`
	CheckOut        string         `json:"checkOut"`
	NumberOfGuests  int            `json:"numberOfGuests"`
	TotalPrice      float64        `json:"totalPrice"`
	Status          string         `json:"status"`
	SpecialRequests string         `json:"specialRequests"`
	IDDocument      string         `json:"idDocument"`
}

// UpdateBookingRequest carries only the fields the client actually sent;
// absent keys stay nil and are left untouched by the service.
type UpdateBookingRequest struct {
	Hotel           uint            `json:"hotel"`
	RoomID          *models.RoomRef `json:"roomId"`
	RoomNumber      *string         `json:"roomNumber"`
	CustomerName    *string         `json:"customerName"`
	CustomerEmail   *string         `json:"customerEmail"`
	CustomerPhone   *string         `json:"customerPhone"`
	CheckIn         *string         `json:"checkIn"`
	CheckOut        *string         `json:"checkOut"`
	NumberOfGuests  *int            `json:"numberOfGuests"`
	TotalPrice      *float64        `json:"totalPrice"`
	Status          *string         `json:"status"`
	SpecialRequests *string         `json:"specialRequests"`
	IDDocument      *string         `json:"idDocument"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// ---------------------------
// Helpers shared by the controllers
// ---------------------------

// hotelIDFromQuery reads the tenant id from ?hotelId=. The tenant is always an
// explicit argument; nothing here reads ambient state.
func hotelIDFromQuery(c *gin.Context) (uint, bool) {
	raw := c.Query("hotelId")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Valid hotel ID is required")
		return 0, false
	}
	return uint(id), true
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking ID")
		return 0, false
	}
	return uint(id), true
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrRoomUnavailable):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidReference),
		errors.Is(err, services.ErrMissingDates),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("unexpected service error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// ---------------------------
// Handlers
// ---------------------------

// GetBookings GET /api/bookings?hotelId=
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	hotelID, ok := hotelIDFromQuery(c)
	if !ok {
		return
	}

	bookings, err := ctrl.BookingSvc.ListBookings(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// CreateBooking POST /api/bookings
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload: "+err.Error())
		return
	}

	booking, err := ctrl.BookingSvc.CreateBooking(services.CreateBookingInput{
		HotelID:         req.Hotel,
		RoomID:          req.RoomID.ID,
		RoomNumber:      req.RoomNumber,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		NumberOfGuests:  req.NumberOfGuests,
		TotalPrice:      req.TotalPrice,
		Status:          req.Status,
		SpecialRequests: req.SpecialRequests,
		IDDocument:      req.IDDocument,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GetBookingDetails GET /api/bookings/:id?hotelId=
func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	bookingID, ok := idParam(c)
	if !ok {
		return
	}
	hotelID, ok := hotelIDFromQuery(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.GetBooking(hotelID, bookingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// UpdateBooking PUT /api/bookings/:id
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	bookingID, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload: "+err.Error())
		return
	}
	if req.Hotel == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Valid hotel ID is required")
		return
	}

	patch := services.BookingPatch{
		RoomNumber:      req.RoomNumber,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		NumberOfGuests:  req.NumberOfGuests,
		TotalPrice:      req.TotalPrice,
		Status:          req.Status,
		SpecialRequests: req.SpecialRequests,
		IDDocument:      req.IDDocument,
	}
	if req.RoomID != nil {
		patch.RoomID = &req.RoomID.ID
	}

	booking, err := ctrl.BookingSvc.UpdateBooking(req.Hotel, bookingID, patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CancelBooking PATCH /api/bookings/:id/cancel?hotelId=
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	bookingID, ok := idParam(c)
	if !ok {
		return
	}
	hotelID, ok := hotelIDFromQuery(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.CancelBooking(hotelID, bookingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    booking,
		"message": "Booking cancelled successfully",
	})
}

// DeleteBooking DELETE /api/bookings/:id?hotelId=
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	bookingID, ok := idParam(c)
	if !ok {
		return
	}
	hotelID, ok := hotelIDFromQuery(c)
	if !ok {
		return
	}

	if err := ctrl.BookingSvc.DeleteBooking(hotelID, bookingID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted successfully"})
}
