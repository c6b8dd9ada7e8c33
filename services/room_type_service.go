package services

import (
	"errors"
	"fmt"

	"hotel-backoffice/models"

	"gorm.io/gorm"
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) Create(rt *models.RoomType) error {
	if rt.HotelID == 0 {
		return opErr(ErrInvalidReference, "Valid hotel ID is required")
	}
	if err := s.DB.Create(rt).Error; err != nil {
		return fmt.Errorf("failed to create room type: %w", err)
	}
	return nil
}

func (s *RoomTypeService) GetAll(hotelID uint) ([]models.RoomType, error) {
	if hotelID == 0 {
		return nil, opErr(ErrInvalidReference, "Valid hotel ID is required")
	}
	var types []models.RoomType
	err := s.DB.Where("hotel_id = ?", hotelID).Order("created_at DESC").Find(&types).Error
	return types, err
}

func (s *RoomTypeService) GetByID(hotelID, id uint) (models.RoomType, error) {
	var rt models.RoomType
	if hotelID == 0 {
		return rt, opErr(ErrInvalidReference, "Valid hotel ID is required")
	}
	err := s.DB.Where("id = ? AND hotel_id = ?", id, hotelID).First(&rt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rt, opErr(ErrNotFound, "Room type not found")
	}
	return rt, err
}

func (s *RoomTypeService) Update(hotelID uint, rt models.RoomType) error {
	if hotelID == 0 {
		return opErr(ErrInvalidReference, "Valid hotel ID is required")
	}
	return s.DB.Model(&models.RoomType{}).
		Where("id = ? AND hotel_id = ?", rt.ID, hotelID).
		Updates(rt).Error
}

func (s *RoomTypeService) Delete(hotelID, id uint) error {
	if hotelID == 0 {
		return opErr(ErrInvalidReference, "Valid hotel ID is required")
	}
	res := s.DB.Where("hotel_id = ?", hotelID).Delete(&models.RoomType{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return opErr(ErrNotFound, "Room type not found")
	}
	return nil
}
