package controllers

import (
	"net/http"

	"auto360_server/internal/db"
	"auto360_server/internal/models"

	"github.com/gin-gonic/gin"
)

// intakeListLimit bounds the intake monitor listing
const intakeListLimit = 100

// IntakeController serves the intake monitor view
type IntakeController struct{}

// NewIntakeController creates a new intake controller
func NewIntakeController() *IntakeController {
	return &IntakeController{}
}

// GetIntakeFiles returns the store's most recent intake files (last 100)
func (ic *IntakeController) GetIntakeFiles(c *gin.Context) {
	storeID := c.Query("store_id")
	if _, _, ok := requireStoreMember(c, storeID); !ok {
		return
	}

	var files []models.IntakeFile
	if err := db.GetDB().
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Limit(intakeListLimit).
		Find(&files).Error; err != nil {
		errorJSON(c, http.StatusInternalServerError, "Database error", "Unable to retrieve intake files")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    files,
		Count:   len(files),
	})
}
