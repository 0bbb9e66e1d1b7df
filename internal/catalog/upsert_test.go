package catalog

import (
	"errors"
	"fmt"
	"testing"

	"auto360_server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func makeEntries(n int) []models.CatalogEntry {
	entries := make([]models.CatalogEntry, n)
	for i := range entries {
		entries[i] = models.CatalogEntry{
			StoreID:         "store-1",
			PartNumberClean: fmt.Sprintf("PN%04d", i),
		}
	}
	return entries
}

func TestUpsertInChunksSplitsBySize(t *testing.T) {
	var sizes []int
	count, err := upsertInChunks(makeEntries(7), 3, func(chunk []models.CatalogEntry) error {
		sizes = append(sizes, len(chunk))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.Equal(t, []int{3, 3, 1}, sizes)
}

func TestUpsertInChunksPartialProgressOnFailure(t *testing.T) {
	boom := errors.New("connection reset")
	calls := 0
	count, err := upsertInChunks(makeEntries(10), 4, func(chunk []models.CatalogEntry) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})

	// The first chunk stays committed; nothing after the failure runs.
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 4, count)
	assert.Equal(t, 2, calls)
}

func TestUpsertInChunksEmptyBatch(t *testing.T) {
	count, err := upsertInChunks(nil, 500, func(chunk []models.CatalogEntry) error {
		t.Fatal("write must not be called for an empty batch")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestUpsertBatchOverwritesOnConflict(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CatalogEntry{}))

	desc1 := "original description"
	price1 := 10.0
	first := []models.CatalogEntry{{
		StoreID:         "store-1",
		PartNumberClean: "AB12",
		Description:     &desc1,
		ListPrice:       &price1,
	}}
	count, err := UpsertBatch(db, first)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	desc2 := "replacement description"
	second := []models.CatalogEntry{{
		StoreID:         "store-1",
		PartNumberClean: "AB12",
		Description:     &desc2,
		// ListPrice intentionally nil: overwrite-all clears it too
	}}
	count, err = UpsertBatch(db, second)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var all []models.CatalogEntry
	require.NoError(t, db.Where("store_id = ?", "store-1").Find(&all).Error)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].Description)
	assert.Equal(t, "replacement description", *all[0].Description)
	assert.Nil(t, all[0].ListPrice)
}

func TestUpsertBatchScopedByStore(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CatalogEntry{}))

	entries := []models.CatalogEntry{
		{StoreID: "store-1", PartNumberClean: "AB12"},
		{StoreID: "store-2", PartNumberClean: "AB12"},
	}
	count, err := UpsertBatch(db, entries)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var total int64
	require.NoError(t, db.Model(&models.CatalogEntry{}).Count(&total).Error)
	assert.Equal(t, int64(2), total)
}
