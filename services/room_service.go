package services

import (
	"errors"
	"fmt"

	"hotel-backoffice/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	if room.HotelID == 0 {
		return opErr(ErrInvalidReference, "Valid hotel ID is required")
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if err := s.DB.Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (s *RoomService) GetAll(hotelID uint) ([]models.Room, error) {
	if hotelID == 0 {
		return nil, opErr(ErrInvalidReference, "Valid hotel ID is required")
	}
	var rooms []models.Room
	err := s.DB.Where("hotel_id = ?", hotelID).Order("created_at DESC").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(hotelID, id uint) (models.Room, error) {
	var room models.Room
	if hotelID == 0 {
		return room, opErr(ErrInvalidReference, "Valid hotel ID is required")
	}
	err := s.DB.Where("id = ? AND hotel_id = ?", id, hotelID).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return room, opErr(ErrNotFound, "Room not found")
	}
	return room, err
}

func (s *RoomService) Update(hotelID uint, room models.Room) error {
	if hotelID == 0 {
		return opErr(ErrInvalidReference, "Valid hotel ID is required")
	}
	res := s.DB.Model(&models.Room{}).
		Where("id = ? AND hotel_id = ?", room.ID, hotelID).
		Updates(room)
	if res.Error != nil {
		return fmt.Errorf("failed to update room %d: %w", room.ID, res.Error)
	}
	return nil
}

func (s *RoomService) Delete(hotelID, id uint) error {
	if hotelID == 0 {
		return opErr(ErrInvalidReference, "Valid hotel ID is required")
	}
	res := s.DB.Where("hotel_id = ?", hotelID).Delete(&models.Room{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return opErr(ErrNotFound, "Room not found")
	}
	return nil
}
