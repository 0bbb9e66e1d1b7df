package controllers

import (
	"net/http"

	"auto360_server/internal/db"
	"auto360_server/internal/models"

	"github.com/gin-gonic/gin"
)

// DashboardController serves the store overview screen
type DashboardController struct{}

// NewDashboardController creates a new dashboard controller
func NewDashboardController() *DashboardController {
	return &DashboardController{}
}

// DashboardResponse is the store overview payload
type DashboardResponse struct {
	Store          models.Store     `json:"store"`
	Role           models.StoreRole `json:"role"`
	CatalogEntries int64            `json:"catalog_entries"`
	Devices        int64            `json:"devices"`
	IntakeFiles    int64            `json:"intake_files"`
	HubItems       int64            `json:"hub_items"`
}

// GetDashboard returns the store profile, the caller's role in it, and
// per-store record counts
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	storeID := c.Query("store_id")
	_, role, ok := requireStoreMember(c, storeID)
	if !ok {
		return
	}

	gormDB := db.GetDB()

	var store models.Store
	if err := gormDB.First(&store, "id = ?", storeID).Error; err != nil {
		errorJSON(c, http.StatusInternalServerError, "Database error", "Unable to load store")
		return
	}

	resp := DashboardResponse{Store: store, Role: role}

	if err := gormDB.Model(&models.CatalogEntry{}).Where("store_id = ?", storeID).Count(&resp.CatalogEntries).Error; err != nil {
		errorJSON(c, http.StatusInternalServerError, "Database error", "Unable to count catalog entries")
		return
	}
	if err := gormDB.Model(&models.Device{}).Where("store_id = ?", storeID).Count(&resp.Devices).Error; err != nil {
		errorJSON(c, http.StatusInternalServerError, "Database error", "Unable to count devices")
		return
	}
	if err := gormDB.Model(&models.IntakeFile{}).Where("store_id = ?", storeID).Count(&resp.IntakeFiles).Error; err != nil {
		errorJSON(c, http.StatusInternalServerError, "Database error", "Unable to count intake files")
		return
	}
	if err := gormDB.Model(&models.HubItem{}).Where("store_id = ?", storeID).Count(&resp.HubItems).Error; err != nil {
		errorJSON(c, http.StatusInternalServerError, "Database error", "Unable to count hub items")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: resp})
}
