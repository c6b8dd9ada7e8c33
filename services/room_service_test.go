package services

import (
	"testing"

	"hotel-backoffice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomServiceCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	hotelID, _ := seedHotelAndRoom(t, db)

	room := models.Room{HotelID: hotelID, RoomNumber: "301", RoomType: "Suite", Price: 220, Capacity: 4}
	require.NoError(t, svc.Create(&room))
	assert.NotZero(t, room.ID)
	assert.Equal(t, models.RoomStatusAvailable, room.Status) // defaulted

	got, err := svc.GetByID(hotelID, room.ID)
	require.NoError(t, err)
	assert.Equal(t, "301", got.RoomNumber)

	got.Price = 240
	require.NoError(t, svc.Update(hotelID, got))
	got, err = svc.GetByID(hotelID, room.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(240), got.Price)

	rooms, err := svc.GetAll(hotelID)
	require.NoError(t, err)
	assert.Len(t, rooms, 2) // the seeded R101 plus this one

	require.NoError(t, svc.Delete(hotelID, room.ID))
	_, err = svc.GetByID(hotelID, room.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(hotelID, room.ID), ErrNotFound)
}

func TestRoomServiceTenantIsolation(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	hotelID, roomID := seedHotelAndRoom(t, db)

	other := models.Hotel{Name: "Other Hotel", Email: "other@test.local"}
	require.NoError(t, db.Create(&other).Error)

	_, err := svc.GetByID(other.ID, roomID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(other.ID, roomID), ErrNotFound)

	rooms, err := svc.GetAll(other.ID)
	require.NoError(t, err)
	assert.Empty(t, rooms)

	rooms, err = svc.GetAll(hotelID)
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
}

func TestRoomTypeAndAmenityServices(t *testing.T) {
	db := newTestDB(t)
	hotelID, _ := seedHotelAndRoom(t, db)

	rts := NewRoomTypeService(db)
	rt := models.RoomType{HotelID: hotelID, Name: "Suite", Description: "Top floor suite"}
	require.NoError(t, rts.Create(&rt))

	types, err := rts.GetAll(hotelID)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "Suite", types[0].Name)

	require.NoError(t, rts.Delete(hotelID, rt.ID))
	assert.ErrorIs(t, rts.Delete(hotelID, rt.ID), ErrNotFound)

	as := NewAmenityService(db)
	amenity := models.Amenity{HotelID: hotelID, Name: "Wi-Fi", Icon: "wifi"}
	require.NoError(t, as.Create(&amenity))

	amenity.Description = "Free throughout the building"
	require.NoError(t, as.Update(hotelID, amenity))

	got, err := as.GetByID(hotelID, amenity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Free throughout the building", got.Description)

	assert.ErrorIs(t, as.Create(&models.Amenity{Name: "No tenant"}), ErrInvalidReference)
}
