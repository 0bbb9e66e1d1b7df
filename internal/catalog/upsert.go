package catalog

import (
	"auto360_server/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertChunkSize bounds the number of rows sent to the database in one
// statement. Chunks are written strictly sequentially so a large file makes
// visible, incremental progress instead of one all-or-nothing transaction.
const UpsertChunkSize = 500

// UpsertBatch persists a batch of catalog entries for one store, keyed on
// (store_id, part_number_clean) with overwrite-all-columns conflict
// resolution. On the first chunk failure the remaining chunks are skipped
// and the count of rows already committed is returned alongside the error;
// committed chunks are never rolled back.
func UpsertBatch(db *gorm.DB, entries []models.CatalogEntry) (int, error) {
	return upsertInChunks(entries, UpsertChunkSize, func(chunk []models.CatalogEntry) error {
		return db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "store_id"}, {Name: "part_number_clean"}},
			UpdateAll: true,
		}).Create(&chunk).Error
	})
}

// upsertInChunks drives the chunked write loop. Split out so the
// partial-progress semantics are testable without a database.
func upsertInChunks(entries []models.CatalogEntry, size int, write func([]models.CatalogEntry) error) (int, error) {
	upserted := 0
	for start := 0; start < len(entries); start += size {
		end := start + size
		if end > len(entries) {
			end = len(entries)
		}
		if err := write(entries[start:end]); err != nil {
			return upserted, err
		}
		upserted += end - start
	}
	return upserted, nil
}
