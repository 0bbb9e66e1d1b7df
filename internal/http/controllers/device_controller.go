package controllers

import (
	"net/http"
	"strings"

	"auto360_server/internal/db"
	"auto360_server/internal/models"
	"auto360_server/pkg/colors"

	"github.com/gin-gonic/gin"
)

// DeviceController manages a store's registered agent devices
type DeviceController struct{}

// NewDeviceController creates a new device controller
func NewDeviceController() *DeviceController {
	return &DeviceController{}
}

// GetDevices returns all devices for a store, newest first
func (dc *DeviceController) GetDevices(c *gin.Context) {
	storeID := c.Query("store_id")
	if _, _, ok := requireStoreMember(c, storeID); !ok {
		return
	}

	var devices []models.Device
	if err := db.GetDB().Where("store_id = ?", storeID).Order("created_at DESC").Find(&devices).Error; err != nil {
		errorJSON(c, http.StatusInternalServerError, "Database error", "Unable to retrieve devices")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    devices,
		Count:   len(devices),
	})
}

// CreateDeviceRequest represents the device creation body
type CreateDeviceRequest struct {
	StoreID    string `json:"store_id" binding:"required"`
	DeviceName string `json:"device_name" binding:"required"`
}

// CreateDevice registers a new agent device and returns its generated key.
// The key is shown once here and then copied into the agent's config.
func (dc *DeviceController) CreateDevice(c *gin.Context) {
	var req CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request format", err.Error())
		return
	}

	if _, _, ok := requireStoreMember(c, req.StoreID); !ok {
		return
	}

	if strings.TrimSpace(req.DeviceName) == "" {
		errorJSON(c, http.StatusBadRequest, "Invalid device name", "device_name is required")
		return
	}

	device := models.Device{
		StoreID:    req.StoreID,
		DeviceName: strings.TrimSpace(req.DeviceName),
		DeviceKey:  models.NewDeviceKey(),
	}

	if err := db.GetDB().Create(&device).Error; err != nil {
		colors.PrintError("Failed to create device for store %s: %v", req.StoreID, err)
		errorJSON(c, http.StatusInternalServerError, "Failed to create device", err.Error())
		return
	}

	colors.PrintSuccess("Device %s registered for store %s", device.DeviceName, device.StoreID)
	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "Device created successfully",
		Data:    device,
	})
}
