package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HubItemType tags the payload variant of an info hub item
type HubItemType string

const (
	HubItemNote HubItemType = "NOTE"
	HubItemLink HubItemType = "LINK"
)

// HubContent is the typed payload of a hub item. NOTE items carry Text;
// LINK items carry URL and an optional Note. Validate enforces one shape
// per variant at the boundary.
type HubContent struct {
	Text string `json:"text,omitempty"`
	URL  string `json:"url,omitempty"`
	Note string `json:"note,omitempty"`
}

// Value implements driver.Valuer so the payload is stored as jsonb
func (c HubContent) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner
func (c *HubContent) Scan(value interface{}) error {
	if value == nil {
		*c = HubContent{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported hub content type %T", value)
	}
}

// HubItem is a free-form note or link a store keeps for its team (SOPs,
// vendor links, training material).
type HubItem struct {
	ID        string      `json:"id" gorm:"type:uuid;primaryKey"`
	StoreID   string      `json:"store_id" gorm:"type:uuid;not null;index"`
	ItemType  HubItemType `json:"item_type" gorm:"type:varchar(10);not null" validate:"required,oneof=NOTE LINK"`
	Title     string      `json:"title" gorm:"size:200;not null" validate:"required"`
	Content   HubContent  `json:"content" gorm:"type:jsonb"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// TableName specifies the table name for HubItem model
func (HubItem) TableName() string {
	return "info_hub_items"
}

// BeforeCreate hook assigns a uuid primary key
func (h *HubItem) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// Validate checks that the payload matches the item type. NOTE items must
// not carry a URL; LINK items require one.
func (h *HubItem) Validate() error {
	if strings.TrimSpace(h.Title) == "" {
		return errors.New("title is required")
	}
	switch h.ItemType {
	case HubItemNote:
		if h.Content.URL != "" {
			return errors.New("NOTE items cannot carry a url")
		}
	case HubItemLink:
		if strings.TrimSpace(h.Content.URL) == "" {
			return errors.New("LINK items require a url")
		}
		if h.Content.Text != "" {
			return errors.New("LINK items use note, not text")
		}
	default:
		return fmt.Errorf("unknown item type %q", h.ItemType)
	}
	return nil
}
