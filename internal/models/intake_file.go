package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IntakeStatus tracks downstream processing of an uploaded file. The
// console only ever writes NEW; later states are set by external
// processors.
type IntakeStatus string

const (
	IntakeStatusNew       IntakeStatus = "NEW"
	IntakeStatusProcessed IntakeStatus = "PROCESSED"
	IntakeStatusError     IntakeStatus = "ERROR"
)

// IntakeFile records one upload event from a device. Rows are an
// append-only log: the same file bytes uploaded twice produce two rows even
// though the blob layer stores the content once.
type IntakeFile struct {
	ID             string       `json:"id" gorm:"type:uuid;primaryKey"`
	StoreID        string       `json:"store_id" gorm:"type:uuid;not null;index"`
	DeviceID       string       `json:"device_id" gorm:"type:uuid;not null;index"`
	SourceType     string       `json:"source_type" gorm:"size:50;not null;default:'UNKNOWN'"`
	FileName       string       `json:"file_name" gorm:"size:255;not null"`
	FilePath       string       `json:"file_path" gorm:"type:text"` // as reported by the device, not validated
	FileHash       string       `json:"file_hash" gorm:"size:64;not null;index"`
	FileModifiedAt *time.Time   `json:"file_modified_at"`
	Status         IntakeStatus `json:"status" gorm:"type:varchar(20);not null;default:'NEW'"`
	ErrorText      *string      `json:"error_text" gorm:"type:text"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`

	Device Device `json:"-" gorm:"foreignKey:DeviceID"`
}

// TableName specifies the table name for IntakeFile model
func (IntakeFile) TableName() string {
	return "intake_files"
}

// BeforeCreate hook assigns a uuid primary key
func (f *IntakeFile) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
