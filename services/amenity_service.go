package services

import (
	"errors"
	"fmt"

	"hotel-backoffice/models"

	"gorm.io/gorm"
)

type AmenityService struct {
	DB *gorm.DB
}

func NewAmenityService(db *gorm.DB) *AmenityService {
	return &AmenityService{DB: db}
}

func (s *AmenityService) Create(a *models.Amenity) error {
	if a.HotelID == 0 {
		return opErr(ErrInvalidReference, "Valid hotel ID is required")
	}
	if err := s.DB.Create(a).Error; err != nil {
		return fmt.Errorf("failed to create amenity: %w", err)
	}
	return nil
}

func (s *AmenityService) GetAll(hotelID uint) ([]models.Amenity, error) {
	if hotelID == 0 {
		return nil, opErr(ErrInvalidReference, "Valid hotel ID is required")
	}
	var amenities []models.Amenity
	err := s.DB.Where("hotel_id = ?", hotelID).Order("created_at DESC").Find(&amenities).Error
	return amenities, err
}

func (s *AmenityService) GetByID(hotelID, id uint) (models.Amenity, error) {
	var a models.Amenity
	if hotelID == 0 {
		return a, opErr(ErrInvalidReference, "Valid hotel ID is required")
	}
	err := s.DB.Where("id = ? AND hotel_id = ?", id, hotelID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return a, opErr(ErrNotFound, "Amenity not found")
	}
	return a, err
}

func (s *AmenityService) Update(hotelID uint, a models.Amenity) error {
	if hotelID == 0 {
		return opErr(ErrInvalidReference, "Valid hotel ID is required")
	}
	return s.DB.Model(&models.Amenity{}).
		Where("id = ? AND hotel_id = ?", a.ID, hotelID).
		Updates(a).Error
}

func (s *AmenityService) Delete(hotelID, id uint) error {
	if hotelID == 0 {
		return opErr(ErrInvalidReference, "Valid hotel ID is required")
	}
	res := s.DB.Where("hotel_id = ?", hotelID).Delete(&models.Amenity{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return opErr(ErrNotFound, "Amenity not found")
	}
	return nil
}
