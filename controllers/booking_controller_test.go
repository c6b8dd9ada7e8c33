package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-backoffice/config"
	"hotel-backoffice/controllers"
	"hotel-backoffice/models"
	"hotel-backoffice/routes"
	"hotel-backoffice/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

type testAPI struct {
	router  *gin.Engine
	db      *gorm.DB
	hotelID uint
	roomID  uint
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateModels(db))

	hotel := models.Hotel{Name: "API Test Hotel", Email: "desk@apitest.local"}
	require.NoError(t, db.Create(&hotel).Error)
	room := models.Room{
		HotelID:    hotel.ID,
		RoomNumber: "101",
		RoomType:   "Standard",
		Price:      100,
		Capacity:   2,
		Status:     models.RoomStatusAvailable,
	}
	require.NoError(t, db.Create(&room).Error)

	router := routes.SetupRouter(
		controllers.NewBookingController(services.NewBookingService(db)),
		controllers.NewRoomController(services.NewRoomService(db)),
		controllers.NewRoomTypeController(services.NewRoomTypeService(db)),
		controllers.NewAmenityController(services.NewAmenityService(db)),
	)

	return &testAPI{router: router, db: db, hotelID: hotel.ID, roomID: room.ID}
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}) (int, apiEnvelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	var env apiEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec.Code, env
}

func (a *testAPI) createBooking(t *testing.T, checkIn, checkOut string) models.Booking {
	t.Helper()

	code, env := a.do(t, http.MethodPost, "/api/bookings", gin.H{
		"hotel":         a.hotelID,
		"roomId":        a.roomID,
		"customerName":  "Alice Carter",
		"customerEmail": "alice@example.com",
		"customerPhone": "+1-555-0123",
		"checkIn":       checkIn,
		"checkOut":      checkOut,
	})
	require.Equal(t, http.StatusCreated, code, "error: %s", env.Error)
	require.True(t, env.Success)

	var booking models.Booking
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	return booking
}

func TestCreateBookingEndpoint(t *testing.T) {
	api := newTestAPI(t)

	booking := api.createBooking(t, "2025-06-01", "2025-06-05")
	assert.NotZero(t, booking.ID)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "101", booking.RoomNumber)
	assert.Equal(t, float64(400), booking.TotalPrice)
	assert.True(t, strings.HasPrefix(booking.ReferenceCode, "BK-"))
}

func TestCreateBookingEndpointConflictIs409(t *testing.T) {
	api := newTestAPI(t)
	api.createBooking(t, "2025-06-01", "2025-06-05")

	code, env := api.do(t, http.MethodPost, "/api/bookings", gin.H{
		"hotel":         api.hotelID,
		"roomId":        api.roomID,
		"customerName":  "Bob Dunne",
		"customerEmail": "bob@example.com",
		"customerPhone": "+1-555-0199",
		"checkIn":       "2025-06-03",
		"checkOut":      "2025-06-07",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "2025-06-01")
	assert.Contains(t, env.Error, "2025-06-05")
	assert.Contains(t, env.Error, "Please select different dates")
}

func TestCreateBookingEndpointValidation(t *testing.T) {
	api := newTestAPI(t)

	t.Run("missing hotel", func(t *testing.T) {
		code, env := api.do(t, http.MethodPost, "/api/bookings", gin.H{
			"roomId":        api.roomID,
			"customerName":  "Alice Carter",
			"customerEmail": "alice@example.com",
			"customerPhone": "+1-555-0123",
			"checkIn":       "2025-06-01",
			"checkOut":      "2025-06-05",
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Valid hotel ID is required", env.Error)
	})

	t.Run("missing dates", func(t *testing.T) {
		code, env := api.do(t, http.MethodPost, "/api/bookings", gin.H{
			"hotel":         api.hotelID,
			"roomId":        api.roomID,
			"customerName":  "Alice Carter",
			"customerEmail": "alice@example.com",
			"customerPhone": "+1-555-0123",
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Check-in and check-out dates are required", env.Error)
	})

	t.Run("inverted dates", func(t *testing.T) {
		code, env := api.do(t, http.MethodPost, "/api/bookings", gin.H{
			"hotel":         api.hotelID,
			"roomId":        api.roomID,
			"customerName":  "Alice Carter",
			"customerEmail": "alice@example.com",
			"customerPhone": "+1-555-0123",
			"checkIn":       "2025-06-10",
			"checkOut":      "2025-06-09",
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Check-out date (2025-06-09) must be after check-in date (2025-06-10)", env.Error)
	})

	t.Run("unknown room", func(t *testing.T) {
		code, env := api.do(t, http.MethodPost, "/api/bookings", gin.H{
			"hotel":         api.hotelID,
			"roomId":        99999,
			"customerName":  "Alice Carter",
			"customerEmail": "alice@example.com",
			"customerPhone": "+1-555-0123",
			"checkIn":       "2025-06-01",
			"checkOut":      "2025-06-05",
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Room not found for this hotel", env.Error)
	})
}

func TestCreateBookingEndpointAcceptsEmbeddedRoomObject(t *testing.T) {
	api := newTestAPI(t)

	// clients that echo a populated room document back still work
	code, env := api.do(t, http.MethodPost, "/api/bookings", gin.H{
		"hotel":         api.hotelID,
		"roomId":        gin.H{"id": api.roomID, "roomNumber": "101", "price": 100},
		"customerName":  "Alice Carter",
		"customerEmail": "alice@example.com",
		"customerPhone": "+1-555-0123",
		"checkIn":       "2025-06-01",
		"checkOut":      "2025-06-05",
	})
	require.Equal(t, http.StatusCreated, code, "error: %s", env.Error)
}

func TestGetBookingDetailsEndpoint(t *testing.T) {
	api := newTestAPI(t)
	created := api.createBooking(t, "2025-06-01", "2025-06-05")

	code, env := api.do(t, http.MethodGet,
		fmt.Sprintf("/api/bookings/%d?hotelId=%d", created.ID, api.hotelID), nil)
	require.Equal(t, http.StatusOK, code)

	var booking models.Booking
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.Equal(t, created.ID, booking.ID)
	assert.Equal(t, "101", booking.Room.RoomNumber)

	code, env = api.do(t, http.MethodGet,
		fmt.Sprintf("/api/bookings/%d?hotelId=%d", created.ID+100, api.hotelID), nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Booking not found", env.Error)
}

func TestListBookingsEndpoint(t *testing.T) {
	api := newTestAPI(t)
	api.createBooking(t, "2025-06-01", "2025-06-05")
	api.createBooking(t, "2025-06-05", "2025-06-08")

	code, env := api.do(t, http.MethodGet, fmt.Sprintf("/api/bookings?hotelId=%d", api.hotelID), nil)
	require.Equal(t, http.StatusOK, code)

	var list []models.Booking
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 2)

	code, env = api.do(t, http.MethodGet, "/api/bookings", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Valid hotel ID is required", env.Error)
}

func TestUpdateBookingEndpoint(t *testing.T) {
	api := newTestAPI(t)
	created := api.createBooking(t, "2025-06-01", "2025-06-05")

	code, env := api.do(t, http.MethodPut, fmt.Sprintf("/api/bookings/%d", created.ID), gin.H{
		"hotel":          api.hotelID,
		"numberOfGuests": 3,
	})
	require.Equal(t, http.StatusOK, code, "error: %s", env.Error)

	var booking models.Booking
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.Equal(t, 3, booking.NumberOfGuests)
	assert.Equal(t, "Alice Carter", booking.CustomerName)
}

func TestUpdateBookingEndpointConflictIs409(t *testing.T) {
	api := newTestAPI(t)
	api.createBooking(t, "2025-06-01", "2025-06-05")
	second := api.createBooking(t, "2025-06-05", "2025-06-08")

	code, env := api.do(t, http.MethodPut, fmt.Sprintf("/api/bookings/%d", second.ID), gin.H{
		"hotel":   api.hotelID,
		"checkIn": "2025-06-04",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Contains(t, env.Error, "already booked")
}

func TestCancelBookingEndpoint(t *testing.T) {
	api := newTestAPI(t)
	created := api.createBooking(t, "2025-06-01", "2025-06-05")

	path := fmt.Sprintf("/api/bookings/%d/cancel?hotelId=%d", created.ID, api.hotelID)
	code, env := api.do(t, http.MethodPatch, path, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Booking cancelled successfully", env.Message)

	var booking models.Booking
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.Equal(t, models.BookingStatusCancelled, booking.Status)

	// cancelling again is fine
	code, _ = api.do(t, http.MethodPatch, path, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestDeleteBookingEndpoint(t *testing.T) {
	api := newTestAPI(t)
	created := api.createBooking(t, "2025-06-01", "2025-06-05")

	path := fmt.Sprintf("/api/bookings/%d?hotelId=%d", created.ID, api.hotelID)
	code, env := api.do(t, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Booking deleted successfully", env.Message)

	code, env = api.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Booking not found", env.Error)
}
