package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// ContentDigest returns the hex sha256 of the file bytes. The digest is the
// dedup key at the blob layer and part of the storage path.
func ContentDigest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SanitizeFileName keeps letters, digits, '.', '_' and '-'; every other
// character becomes a single '_' so a device-reported name is always a safe
// key segment.
func SanitizeFileName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ObjectKey derives the deterministic storage path for an upload:
// store/device/upload-day (UTC)/digest_name. Identical bytes with the same
// name from the same device on the same day always land on the same key,
// which is what makes agent retries idempotent.
func ObjectKey(storeID, deviceID string, uploadedAt time.Time, digest, fileName string) string {
	day := uploadedAt.UTC().Format("2006-01-02")
	return fmt.Sprintf("%s/%s/%s/%s_%s", storeID, deviceID, day, digest, SanitizeFileName(fileName))
}
