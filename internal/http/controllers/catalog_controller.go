package controllers

import (
	"net/http"

	"auto360_server/internal/catalog"
	"auto360_server/internal/db"
	"auto360_server/internal/models"
	"auto360_server/pkg/colors"

	"github.com/gin-gonic/gin"
)

// maxReportedRowErrors caps the error list echoed to the client. The
// summary still counts every row error; only the display list is capped.
const maxReportedRowErrors = 200

// searchLimit bounds catalog search results
const searchLimit = 50

// CatalogController handles master catalog uploads and search
type CatalogController struct{}

// NewCatalogController creates a new catalog controller
func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// UploadResponse is the catalog upload result envelope
type UploadResponse struct {
	OK      bool               `json:"ok"`
	Error   string             `json:"error,omitempty"`
	Summary *catalog.Summary   `json:"summary,omitempty"`
	Errors  []catalog.RowError `json:"errors"`
}

// Upload ingests a spreadsheet into the store's master catalog: parse,
// normalize, dedup within the file, then chunked idempotent upsert. The
// role check happens before a single row is read from the file.
func (cc *CatalogController) Upload(c *gin.Context) {
	storeID := c.PostForm("store_id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, UploadResponse{OK: false, Error: "Missing file", Errors: []catalog.RowError{}})
		return
	}

	user, ok := requireStoreAdmin(c, storeID)
	if !ok {
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, UploadResponse{OK: false, Error: "Unreadable upload", Errors: []catalog.RowError{}})
		return
	}
	defer f.Close()

	rows, err := catalog.ParseWorkbook(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, UploadResponse{OK: false, Error: err.Error(), Errors: []catalog.RowError{}})
		return
	}

	batch, rowErrors, deduped := catalog.BuildBatch(rows, storeID, user.ID)

	upserted, upsertErr := catalog.UpsertBatch(db.GetDB(), batch)

	summary := &catalog.Summary{
		RowsRead:          len(rows),
		DedupedWithinFile: deduped,
		RowsUpserted:      upserted,
		Errors:            len(rowErrors),
	}

	reported := rowErrors
	if len(reported) > maxReportedRowErrors {
		reported = reported[:maxReportedRowErrors]
	}
	if reported == nil {
		reported = []catalog.RowError{}
	}

	if upsertErr != nil {
		colors.PrintError("Catalog upsert failed for store %s after %d rows: %v", storeID, upserted, upsertErr)
		c.JSON(http.StatusInternalServerError, UploadResponse{
			OK:      false,
			Error:   upsertErr.Error(),
			Summary: summary,
			Errors:  reported,
		})
		return
	}

	colors.PrintSuccess("Catalog upload for store %s: %d read, %d upserted, %d deduped, %d errors",
		storeID, summary.RowsRead, summary.RowsUpserted, summary.DedupedWithinFile, summary.Errors)
	c.JSON(http.StatusOK, UploadResponse{
		OK:      true,
		Summary: summary,
		Errors:  reported,
	})
}

// Search returns up to 50 catalog rows for the store, ordered by clean part
// number, matching the query against part number or description.
func (cc *CatalogController) Search(c *gin.Context) {
	storeID := c.Query("store_id")
	if _, _, ok := requireStoreMember(c, storeID); !ok {
		return
	}

	query := db.GetDB().
		Where("store_id = ?", storeID).
		Order("part_number_clean ASC").
		Limit(searchLimit)

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("part_number_clean ILIKE ? OR description ILIKE ?", like, like)
	}

	var entries []models.CatalogEntry
	if err := query.Find(&entries).Error; err != nil {
		errorJSON(c, http.StatusInternalServerError, "Database error", "Unable to search catalog")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    entries,
		Count:   len(entries),
	})
}
