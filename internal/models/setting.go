package models

import (
	"time"
)

// StoreSetting is the per-store agent configuration: the folder paths the
// agent watches and the label printer it drives. The console reads and
// writes it; the agent only reads it through the settings endpoint.
type StoreSetting struct {
	StoreID            string    `json:"store_id" gorm:"type:uuid;primaryKey"`
	CCCHomePath        *string   `json:"ccc_home_path" gorm:"size:255"`
	CCCProductionPath  *string   `json:"ccc_production_path" gorm:"size:255"`
	CCCPartsStatusPath *string   `json:"ccc_parts_status_path" gorm:"size:255"`
	BMSEMSPath         *string   `json:"bms_ems_path" gorm:"size:255"`
	InboxPath          *string   `json:"inbox_path" gorm:"size:255"`
	DymoPrinterName    *string   `json:"dymo_printer_name" gorm:"size:100"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TableName specifies the table name for StoreSetting model
func (StoreSetting) TableName() string {
	return "settings_store"
}
