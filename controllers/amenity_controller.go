package controllers

import (
	"net/http"
	"strconv"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
)

type AmenityController struct {
	AmenitySvc *services.AmenityService
}

func NewAmenityController(svc *services.AmenityService) *AmenityController {
	return &AmenityController{AmenitySvc: svc}
}

func (ctrl *AmenityController) GetAmenities(c *gin.Context) {
	hotelID, ok := hotelIDFromQuery(c)
	if !ok {
		return
	}
	amenities, err := ctrl.AmenitySvc.GetAll(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, amenities)
}

func (ctrl *AmenityController) CreateAmenity(c *gin.Context) {
	var a models.Amenity
	if err := c.ShouldBindJSON(&a); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload: "+err.Error())
		return
	}
	if err := ctrl.AmenitySvc.Create(&a); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, a)
}

func (ctrl *AmenityController) UpdateAmenity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid amenity ID")
		return
	}

	var a models.Amenity
	if err := c.ShouldBindJSON(&a); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload: "+err.Error())
		return
	}
	a.ID = uint(id)
	if err := ctrl.AmenitySvc.Update(a.HotelID, a); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, a)
}

func (ctrl *AmenityController) DeleteAmenity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid amenity ID")
		return
	}
	hotelID, ok := hotelIDFromQuery(c)
	if !ok {
		return
	}
	if err := ctrl.AmenitySvc.Delete(hotelID, uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Amenity deleted successfully"})
}
