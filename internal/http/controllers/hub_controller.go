package controllers

import (
	"net/http"
	"strings"

	"auto360_server/internal/db"
	"auto360_server/internal/models"

	"github.com/gin-gonic/gin"
)

// hubListLimit bounds the info hub listing
const hubListLimit = 100

// HubController manages a store's info hub (free-form notes and links)
type HubController struct{}

// NewHubController creates a new hub controller
func NewHubController() *HubController {
	return &HubController{}
}

// GetHubItems returns the store's info hub items, most recently updated
// first (last 100)
func (hc *HubController) GetHubItems(c *gin.Context) {
	storeID := c.Query("store_id")
	if _, _, ok := requireStoreMember(c, storeID); !ok {
		return
	}

	var items []models.HubItem
	if err := db.GetDB().
		Where("store_id = ?", storeID).
		Order("updated_at DESC").
		Limit(hubListLimit).
		Find(&items).Error; err != nil {
		errorJSON(c, http.StatusInternalServerError, "Database error", "Unable to retrieve hub items")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    items,
		Count:   len(items),
	})
}

// CreateHubItemRequest is the typed creation body. Note/url/note text are
// folded into the payload variant selected by item_type.
type CreateHubItemRequest struct {
	StoreID  string `json:"store_id" binding:"required"`
	ItemType string `json:"item_type" binding:"required,oneof=NOTE LINK"`
	Title    string `json:"title" binding:"required"`
	Text     string `json:"text,omitempty"`
	URL      string `json:"url,omitempty"`
	Note     string `json:"note,omitempty"`
}

// CreateHubItem stores a note or link. The payload shape is validated
// against the item type before anything is written.
func (hc *HubController) CreateHubItem(c *gin.Context) {
	var req CreateHubItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid request format", err.Error())
		return
	}

	if _, _, ok := requireStoreMember(c, req.StoreID); !ok {
		return
	}

	item := models.HubItem{
		StoreID:  req.StoreID,
		ItemType: models.HubItemType(req.ItemType),
		Title:    strings.TrimSpace(req.Title),
	}
	switch item.ItemType {
	case models.HubItemNote:
		item.Content = models.HubContent{Text: strings.TrimSpace(req.Text)}
	case models.HubItemLink:
		item.Content = models.HubContent{URL: strings.TrimSpace(req.URL), Note: strings.TrimSpace(req.Note)}
	}

	if err := item.Validate(); err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid hub item", err.Error())
		return
	}

	if err := db.GetDB().Create(&item).Error; err != nil {
		errorJSON(c, http.StatusInternalServerError, "Failed to create hub item", err.Error())
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "Hub item created successfully",
		Data:    item,
	})
}
