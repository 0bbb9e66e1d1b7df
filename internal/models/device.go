package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Device represents a shop-floor agent process, identified by an opaque
// device key. The key is the sole credential for the agent endpoints; it is
// never rotated or expired in the current design.
type Device struct {
	ID         string     `json:"id" gorm:"type:uuid;primaryKey"`
	StoreID    string     `json:"store_id" gorm:"type:uuid;not null;index"`
	DeviceName string     `json:"device_name" gorm:"size:100;not null" validate:"required"`
	DeviceKey  string     `json:"device_key" gorm:"size:64;uniqueIndex;not null"`
	LastSeenAt *time.Time `json:"last_seen_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Store Store `json:"-" gorm:"foreignKey:StoreID"`
}

// TableName specifies the table name for Device model
func (Device) TableName() string {
	return "devices"
}

// BeforeCreate hook assigns a uuid primary key and a device key if unset
func (d *Device) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.DeviceKey == "" {
		d.DeviceKey = NewDeviceKey()
	}
	return nil
}

// NewDeviceKey generates an opaque device key: a uuid with the hyphens
// stripped, 32 hex characters.
func NewDeviceKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
