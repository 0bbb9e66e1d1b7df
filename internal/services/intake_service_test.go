package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"auto360_server/internal/models"
	"auto360_server/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBlobStore keeps objects in a map so the dedup-by-key behavior of the
// real store can be exercised without S3.
type fakeBlobStore struct {
	objects map[string][]byte
	putErr  error
	puts    int
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: make(map[string][]byte)}
}

func (f *fakeBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) (bool, error) {
	f.puts++
	if f.putErr != nil {
		return false, f.putErr
	}
	if _, ok := f.objects[key]; ok {
		return true, nil
	}
	f.objects[key] = data
	return false, nil
}

var _ storage.BlobStore = (*fakeBlobStore)(nil)

func TestIngestWritesBlobAndMetadataRow(t *testing.T) {
	db := openTestDB(t)
	device := seedDevice(t, db)
	blobs := newFakeBlobStore()
	svc := NewIntakeService(db, blobs)

	modified := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	res, err := svc.Ingest(context.Background(), device, IntakeRequest{
		SourceType:  "CCC_EXPORT",
		FileName:    "estimate 42.pdf",
		FilePath:    `C:\Exports\estimate 42.pdf`,
		ModifiedAt:  &modified,
		ContentType: "application/pdf",
		Data:        []byte("pdf bytes"),
	})
	require.NoError(t, err)

	assert.False(t, res.Duplicate)
	assert.Equal(t, storage.ContentDigest([]byte("pdf bytes")), res.Hash)
	assert.Contains(t, res.StoragePath, device.StoreID+"/"+device.ID+"/")
	assert.Contains(t, res.StoragePath, "estimate_42.pdf")
	require.Contains(t, blobs.objects, res.StoragePath)

	var row models.IntakeFile
	require.NoError(t, db.First(&row, "id = ?", res.File.ID).Error)
	assert.Equal(t, device.StoreID, row.StoreID)
	assert.Equal(t, device.ID, row.DeviceID)
	assert.Equal(t, "CCC_EXPORT", row.SourceType)
	assert.Equal(t, "estimate 42.pdf", row.FileName)
	assert.Equal(t, res.Hash, row.FileHash)
	assert.Equal(t, models.IntakeStatusNew, row.Status)
	require.NotNil(t, row.FileModifiedAt)
	assert.True(t, modified.Equal(*row.FileModifiedAt))
}

func TestIngestDuplicateBytesAreSuccessWithNewRow(t *testing.T) {
	db := openTestDB(t)
	device := seedDevice(t, db)
	blobs := newFakeBlobStore()
	svc := NewIntakeService(db, blobs)

	req := IntakeRequest{FileName: "scan.pdf", Data: []byte("same bytes")}

	first, err := svc.Ingest(context.Background(), device, req)
	require.NoError(t, err)
	assert.False(t, first.Duplicate)

	second, err := svc.Ingest(context.Background(), device, req)
	require.NoError(t, err)
	assert.True(t, second.Duplicate, "an existing blob is a success, not an error")
	assert.Equal(t, first.StoragePath, second.StoragePath)
	assert.Equal(t, first.Hash, second.Hash)

	// The blob is stored once; the upload log records both events.
	assert.Len(t, blobs.objects, 1)
	var rows int64
	require.NoError(t, db.Model(&models.IntakeFile{}).Count(&rows).Error)
	assert.Equal(t, int64(2), rows)
	assert.NotEqual(t, first.File.ID, second.File.ID)
}

func TestIngestDefaultsSourceType(t *testing.T) {
	db := openTestDB(t)
	device := seedDevice(t, db)
	svc := NewIntakeService(db, newFakeBlobStore())

	res, err := svc.Ingest(context.Background(), device, IntakeRequest{
		FileName: "mystery.bin",
		Data:     []byte{0x01},
	})
	require.NoError(t, err)
	assert.Equal(t, "UNKNOWN", res.File.SourceType)
}

func TestIngestBlobFailureWritesNoRow(t *testing.T) {
	db := openTestDB(t)
	device := seedDevice(t, db)
	blobs := newFakeBlobStore()
	blobs.putErr = errors.New("bucket unavailable")
	svc := NewIntakeService(db, blobs)

	_, err := svc.Ingest(context.Background(), device, IntakeRequest{
		FileName: "scan.pdf",
		Data:     []byte("bytes"),
	})
	require.Error(t, err)

	var rows int64
	require.NoError(t, db.Model(&models.IntakeFile{}).Count(&rows).Error)
	assert.Equal(t, int64(0), rows, "no metadata row may exist for a failed blob write")
}
