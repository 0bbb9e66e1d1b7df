package controllers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"auto360_server/internal/db"
	"auto360_server/internal/models"
	"auto360_server/internal/services"
	"auto360_server/pkg/colors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AgentController serves the shop-floor agent endpoints. These are
// authenticated by device key only, never by session; the resolved device
// identity is produced by one authentication step and handed through.
type AgentController struct {
	devices *services.DeviceService
	intake  *services.IntakeService
	notify  func(file *models.IntakeFile, duplicate bool)
}

// NewAgentController creates an agent controller. notify is invoked after
// each recorded upload so the intake monitor can update live; it may be nil.
func NewAgentController(devices *services.DeviceService, intake *services.IntakeService, notify func(*models.IntakeFile, bool)) *AgentController {
	return &AgentController{devices: devices, intake: intake, notify: notify}
}

// PingRequest is the agent heartbeat body
type PingRequest struct {
	DeviceKey  string `json:"device_key" binding:"required,min=10"`
	DeviceName string `json:"device_name,omitempty"`
	Version    string `json:"version,omitempty"`
}

// Ping authenticates the agent, touches its liveness and echoes its
// identity. A supplied device_name unconditionally renames the device.
func (ac *AgentController) Ping(c *gin.Context) {
	var req PingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid body"})
		return
	}

	device, err := ac.devices.Authenticate(req.DeviceKey)
	if err != nil {
		ac.rejectDevice(c, err)
		return
	}

	if err := ac.devices.Touch(device, req.DeviceName); err != nil {
		colors.PrintError("Failed to touch device %s: %v", device.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to update device"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"device_id": device.ID,
		"store_id":  device.StoreID,
	})
}

// Settings returns the agent configuration for the device's store, or null
// when the store has not been set up yet.
func (ac *AgentController) Settings(c *gin.Context) {
	deviceKey := c.Query("device_key")
	if deviceKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Missing device_key"})
		return
	}

	device, err := ac.devices.Authenticate(deviceKey)
	if err != nil {
		ac.rejectDevice(c, err)
		return
	}

	if err := ac.devices.Touch(device, ""); err != nil {
		colors.PrintError("Failed to touch device %s: %v", device.ID, err)
	}

	var setting models.StoreSetting
	err = db.GetDB().First(&setting, "store_id = ?", device.StoreID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to load settings"})
		return
	}

	response := gin.H{
		"ok":        true,
		"store_id":  device.StoreID,
		"device_id": device.ID,
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response["settings"] = nil
	} else {
		response["settings"] = setting
	}
	c.JSON(http.StatusOK, response)
}

// IngestFile records one file upload from the agent: authenticate, digest,
// content-addressed blob write (existing object = success), one metadata
// row per upload event.
func (ac *AgentController) IngestFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Missing file"})
		return
	}

	deviceKey := c.PostForm("device_key")
	if deviceKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Missing device_key"})
		return
	}

	device, err := ac.devices.Authenticate(deviceKey)
	if err != nil {
		ac.rejectDevice(c, err)
		return
	}

	if err := ac.devices.Touch(device, ""); err != nil {
		colors.PrintError("Failed to touch device %s: %v", device.ID, err)
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Unreadable upload"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Unreadable upload"})
		return
	}

	result, err := ac.intake.Ingest(c.Request.Context(), device, services.IntakeRequest{
		SourceType:  c.PostForm("source_type"),
		FileName:    fileHeader.Filename,
		FilePath:    c.PostForm("file_path"),
		ModifiedAt:  parseModifiedAt(c.PostForm("file_modified_at")),
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		colors.PrintError("Intake failed for device %s: %v", device.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	if ac.notify != nil {
		ac.notify(result.File, result.Duplicate)
	}

	colors.PrintInfo("Intake file %s recorded for store %s (duplicate blob: %v)",
		result.File.FileName, device.StoreID, result.Duplicate)
	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"storagePath": result.StoragePath,
		"hash":        result.Hash,
	})
}

func (ac *AgentController) rejectDevice(c *gin.Context, err error) {
	if errors.Is(err, services.ErrUnknownDeviceKey) {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Unknown device_key"})
		return
	}
	colors.PrintError("Device authentication failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Authentication service unavailable"})
}

// parseModifiedAt parses the device-reported modification time. Agents send
// RFC 3339; older builds sent a bare datetime. Anything unparseable
// degrades to null rather than failing the upload.
func parseModifiedAt(v string) *time.Time {
	if v == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	return nil
}
