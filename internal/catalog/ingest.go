package catalog

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"auto360_server/internal/models"

	"github.com/xuri/excelize/v2"
)

// headerRows is the number of header rows above the data; data row i
// (0-based) is reported to the user as spreadsheet row i+headerRows+1.
const headerRows = 1

// RowError describes one spreadsheet row that was excluded from the batch
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
	Part    string `json:"part,omitempty"`
}

// Summary is the upload result returned to the caller
type Summary struct {
	RowsRead          int `json:"rowsRead"`
	DedupedWithinFile int `json:"dedupedWithinFile"`
	RowsUpserted      int `json:"rowsUpserted"`
	Errors            int `json:"errors"`
}

// ParseWorkbook reads the first sheet of an uploaded spreadsheet and
// returns its data rows keyed by the header row's column names. A file
// that cannot be parsed as a spreadsheet at all fails the whole request.
func ParseWorkbook(r io.Reader) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("unreadable spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) <= headerRows {
		return []map[string]string{}, nil
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-headerRows)
	for _, row := range rows[headerRows:] {
		record := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = row[i]
			} else {
				record[name] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// BuildBatch validates and deduplicates parsed rows into catalog entries
// for one store. Rows without a usable part number become RowErrors and are
// excluded without aborting the batch; later rows whose part number
// normalizes to the same key silently overwrite earlier ones and are only
// counted. A row can never panic past this boundary.
func BuildBatch(rows []map[string]string, storeID, userID string) ([]models.CatalogEntry, []RowError, int) {
	var rowErrors []RowError
	order := make([]string, 0, len(rows))
	byKey := make(map[string]models.CatalogEntry, len(rows))

	for i, r := range rows {
		rowNumber := i + headerRows + 1

		raw := firstValue(r, "RAW Part Number", "Raw Part Number", "Raw")
		providedClean := firstValue(r, "Part Number (CLEAN)", "Part Number", "Clean Part Number")

		source := providedClean
		if source == "" {
			source = raw
		}
		clean := CleanPartNumber(source)
		if clean == "" {
			rowErrors = append(rowErrors, RowError{
				Row:     rowNumber,
				Message: "Missing Part Number (CLEAN) and RAW Part Number",
			})
			continue
		}

		desc := strings.TrimSpace(firstValue(r, "Part Description", "Description"))
		category := strings.TrimSpace(r["Category"])
		if category == "" {
			if inferred, ok := InferCategory(strings.ToLower(desc)); ok {
				category = inferred
			}
		}

		year := parseNumber(r["Year"])
		listPrice := parseNumber(firstValue(r, "List", "List Price", "Price"))
		cost := parseNumber(r["Cost"])

		entry := models.CatalogEntry{
			StoreID:         storeID,
			PartNumberRaw:   optional(strings.TrimSpace(raw)),
			PartNumberClean: clean,
			Description:     optional(desc),
			Category:        optional(category),
			Make:            optional(strings.TrimSpace(r["Make"])),
			Model:           optional(strings.TrimSpace(r["Model"])),
			ListPrice:       listPrice,
			Cost:            cost,
			PictureFile:     optional(strings.TrimSpace(r["Picture File"])),
			AltPartNumber:   optional(strings.TrimSpace(r["Alternative Part Number"])),
			CreatedBy:       userID,
			UpdatedBy:       userID,
		}
		// A zero year cell means "not filled in", not year zero
		if year != nil && *year != 0 {
			y := int(math.Trunc(*year))
			entry.YearStart = &y
			entry.YearEnd = &y
		}

		if _, seen := byKey[clean]; !seen {
			order = append(order, clean)
		}
		byKey[clean] = entry
	}

	batch := make([]models.CatalogEntry, 0, len(order))
	for _, key := range order {
		batch = append(batch, byKey[key])
	}

	deduped := len(rows) - len(byKey)
	return batch, rowErrors, deduped
}

// firstValue returns the first non-empty value among the accepted column
// aliases for a field.
func firstValue(r map[string]string, keys ...string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// parseNumber parses a numeric cell permissively: currency symbols and
// thousands separators are stripped, and anything non-finite degrades to
// nil rather than an error.
func parseNumber(v string) *float64 {
	s := strings.TrimSpace(strings.NewReplacer("$", "", ",", "").Replace(v))
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return nil
	}
	return &n
}

// optional maps the empty string to a NULL column
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
