package services

import (
	"errors"
	"time"

	"auto360_server/internal/models"

	"gorm.io/gorm"
)

// ErrUnknownDeviceKey is returned when no device matches the submitted key
var ErrUnknownDeviceKey = errors.New("unknown device key")

// DeviceService resolves agent device keys and maintains device liveness.
// Authenticate is the single authentication step for every agent endpoint;
// handlers receive the resolved device instead of doing their own lookups.
type DeviceService struct {
	db *gorm.DB
}

// NewDeviceService creates a device service on the given database
func NewDeviceService(db *gorm.DB) *DeviceService {
	return &DeviceService{db: db}
}

// Authenticate resolves an opaque device key to a device identity. The key
// is matched exactly; there is no hashing, expiry or rate limiting (a known
// security gap of the current design, kept deliberately).
func (s *DeviceService) Authenticate(deviceKey string) (*models.Device, error) {
	if deviceKey == "" {
		return nil, ErrUnknownDeviceKey
	}
	var device models.Device
	if err := s.db.Where("device_key = ?", deviceKey).First(&device).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownDeviceKey
		}
		return nil, err
	}
	return &device, nil
}

// Touch records device liveness after a successful authenticated call:
// last_seen_at always moves forward, and a supplied name unconditionally
// replaces the stored one.
func (s *DeviceService) Touch(device *models.Device, deviceName string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"last_seen_at": now,
	}
	if deviceName != "" {
		updates["device_name"] = deviceName
	}
	if err := s.db.Model(&models.Device{}).Where("id = ?", device.ID).Updates(updates).Error; err != nil {
		return err
	}
	device.LastSeenAt = &now
	if deviceName != "" {
		device.DeviceName = deviceName
	}
	return nil
}
