package controllers

import (
	"net/http"
	"strconv"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	hotelID, ok := hotelIDFromQuery(c)
	if !ok {
		return
	}
	rooms, err := ctrl.RoomSvc.GetAll(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *RoomController) GetRoomByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room ID")
		return
	}
	hotelID, ok := hotelIDFromQuery(c)
	if !ok {
		return
	}
	room, svcErr := ctrl.RoomSvc.GetByID(hotelID, uint(id))
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload: "+err.Error())
		return
	}
	if err := ctrl.RoomSvc.Create(&room); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload: "+err.Error())
		return
	}
	room.ID = uint(id)
	if err := ctrl.RoomSvc.Update(room.HotelID, room); err != nil {
		respondServiceError(c, err)
		return
	}

	updated, svcErr := ctrl.RoomSvc.GetByID(room.HotelID, uint(id))
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room ID")
		return
	}
	hotelID, ok := hotelIDFromQuery(c)
	if !ok {
		return
	}
	if err := ctrl.RoomSvc.Delete(hotelID, uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Room deleted successfully"})
}
