package controllers

import (
	"errors"
	"net/http"

	"auto360_server/internal/db"
	"auto360_server/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingController manages per-store agent configuration
type SettingController struct{}

// NewSettingController creates a new setting controller
func NewSettingController() *SettingController {
	return &SettingController{}
}

// GetSettings returns the store's settings, or null data when the store
// has not been configured yet
func (sc *SettingController) GetSettings(c *gin.Context) {
	storeID := c.Query("store_id")
	if _, _, ok := requireStoreMember(c, storeID); !ok {
		return
	}

	var setting models.StoreSetting
	err := db.GetDB().First(&setting, "store_id = ?", storeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: nil})
			return
		}
		errorJSON(c, http.StatusInternalServerError, "Database error", "Could not retrieve settings")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: setting})
}

// UpdateSettingsRequest carries the folder intake paths and printer name
type UpdateSettingsRequest struct {
	StoreID            string  `json:"store_id" binding:"required"`
	CCCHomePath        *string `json:"ccc_home_path"`
	CCCProductionPath  *string `json:"ccc_production_path"`
	CCCPartsStatusPath *string `json:"ccc_parts_status_path"`
	BMSEMSPath         *string `json:"bms_ems_path"`
	InboxPath          *string `json:"inbox_path"`
	DymoPrinterName    *string `json:"dymo_printer_name"`
}

// UpdateSettings upserts the store's settings row. Requires ADMIN or
// SUPER_ADMIN in the store.
func (sc *SettingController) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request format", err.Error())
		return
	}

	if _, ok := requireStoreAdmin(c, req.StoreID); !ok {
		return
	}

	setting := models.StoreSetting{
		StoreID:            req.StoreID,
		CCCHomePath:        req.CCCHomePath,
		CCCProductionPath:  req.CCCProductionPath,
		CCCPartsStatusPath: req.CCCPartsStatusPath,
		BMSEMSPath:         req.BMSEMSPath,
		InboxPath:          req.InboxPath,
		DymoPrinterName:    req.DymoPrinterName,
	}

	if err := db.GetDB().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_id"}},
		UpdateAll: true,
	}).Create(&setting).Error; err != nil {
		errorJSON(c, http.StatusInternalServerError, "Failed to update settings", err.Error())
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Settings saved successfully",
		Data:    setting,
	})
}
