package models

import (
	"time"
)

// CatalogEntry is one row of a store's master parts catalog. The pair
// (store_id, part_number_clean) is unique; re-ingesting the same clean part
// number overwrites every attribute (last-write-wins, no history).
type CatalogEntry struct {
	ID              uint       `json:"id" gorm:"primarykey"`
	StoreID         string     `json:"store_id" gorm:"type:uuid;not null;uniqueIndex:idx_store_part_clean"`
	PartNumberRaw   *string    `json:"part_number_raw" gorm:"size:100"`
	PartNumberClean string     `json:"part_number_clean" gorm:"size:100;not null;uniqueIndex:idx_store_part_clean"`
	Description     *string    `json:"description" gorm:"type:text"`
	Category        *string    `json:"category" gorm:"size:50"`
	Make            *string    `json:"make" gorm:"size:50"`
	Model           *string    `json:"model" gorm:"size:50"`
	YearStart       *int       `json:"year_start"`
	YearEnd         *int       `json:"year_end"`
	ListPrice       *float64   `json:"list_price"`
	Cost            *float64   `json:"cost"`
	PictureFile     *string    `json:"picture_file" gorm:"size:255"`
	AltPartNumber   *string    `json:"alt_part_number" gorm:"size:100"`
	CreatedBy       string     `json:"created_by" gorm:"type:uuid"`
	UpdatedBy       string     `json:"updated_by" gorm:"type:uuid"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName specifies the table name for CatalogEntry model
func (CatalogEntry) TableName() string {
	return "parts_master_catalog"
}
