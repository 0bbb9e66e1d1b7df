package services

import (
	"context"
	"fmt"
	"time"

	"auto360_server/internal/models"
	"auto360_server/internal/storage"

	"gorm.io/gorm"
)

// IntakeService runs the content-addressed file intake pipeline: digest,
// blob write, metadata row. Blobs are deduplicated by content; metadata
// rows are not; every upload event gets its own row.
type IntakeService struct {
	db    *gorm.DB
	blobs storage.BlobStore
}

// NewIntakeService creates an intake service over the given database and
// blob store
func NewIntakeService(db *gorm.DB, blobs storage.BlobStore) *IntakeService {
	return &IntakeService{db: db, blobs: blobs}
}

// IntakeRequest describes one file upload from an authenticated device
type IntakeRequest struct {
	SourceType  string
	FileName    string
	FilePath    string // origin path as reported by the device, not validated
	ModifiedAt  *time.Time
	ContentType string
	Data        []byte
}

// IntakeResult echoes the derived storage location back to the agent
type IntakeResult struct {
	File        *models.IntakeFile
	StoragePath string
	Hash        string
	Duplicate   bool
}

// Ingest durably records an upload: computes the content digest, writes the
// blob (an existing object is a duplicate-skip success) and inserts one
// IntakeFile row with status NEW. A blob failure aborts before any row is
// written.
func (s *IntakeService) Ingest(ctx context.Context, device *models.Device, req IntakeRequest) (*IntakeResult, error) {
	hash := storage.ContentDigest(req.Data)
	key := storage.ObjectKey(device.StoreID, device.ID, time.Now(), hash, req.FileName)

	duplicate, err := s.blobs.Put(ctx, key, req.Data, req.ContentType)
	if err != nil {
		return nil, fmt.Errorf("intake upload failed: %w", err)
	}

	sourceType := req.SourceType
	if sourceType == "" {
		sourceType = "UNKNOWN"
	}

	file := models.IntakeFile{
		StoreID:        device.StoreID,
		DeviceID:       device.ID,
		SourceType:     sourceType,
		FileName:       req.FileName,
		FilePath:       req.FilePath,
		FileHash:       hash,
		FileModifiedAt: req.ModifiedAt,
		Status:         models.IntakeStatusNew,
	}
	if err := s.db.Create(&file).Error; err != nil {
		return nil, fmt.Errorf("failed to record intake file: %w", err)
	}

	return &IntakeResult{
		File:        &file,
		StoragePath: key,
		Hash:        hash,
		Duplicate:   duplicate,
	}, nil
}
