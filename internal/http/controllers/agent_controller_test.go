package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"auto360_server/internal/models"
	"auto360_server/internal/services"
	"auto360_server/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type memoryBlobStore struct {
	objects map[string][]byte
}

func (m *memoryBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) (bool, error) {
	if _, ok := m.objects[key]; ok {
		return true, nil
	}
	m.objects[key] = data
	return false, nil
}

var _ storage.BlobStore = (*memoryBlobStore)(nil)

func newAgentTestRouter(t *testing.T) (*gin.Engine, *models.Device, *memoryBlobStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Store{}, &models.Device{}, &models.IntakeFile{}))

	store := models.Store{Name: "Main Street Body", StoreCode: "MSB"}
	require.NoError(t, conn.Create(&store).Error)
	device := models.Device{StoreID: store.ID, DeviceName: "front-desk"}
	require.NoError(t, conn.Create(&device).Error)

	blobs := &memoryBlobStore{objects: make(map[string][]byte)}
	ac := NewAgentController(
		services.NewDeviceService(conn),
		services.NewIntakeService(conn, blobs),
		nil,
	)

	router := gin.New()
	router.POST("/agent/ping", ac.Ping)
	router.POST("/agent/ingest-file", ac.IngestFile)
	return router, &device, blobs
}

func TestAgentPing(t *testing.T) {
	router, device, _ := newAgentTestRouter(t)

	body := `{"device_key":"` + device.DeviceKey + `","device_name":"parts-counter"}`
	req := httptest.NewRequest(http.MethodPost, "/agent/ping", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, device.ID, resp["device_id"])
	assert.Equal(t, device.StoreID, resp["store_id"])
}

func TestAgentPingUnknownKey(t *testing.T) {
	router, _, _ := newAgentTestRouter(t)

	body := `{"device_key":"00000000000000000000000000000000"}`
	req := httptest.NewRequest(http.MethodPost, "/agent/ping", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown device_key")
}

func TestAgentPingShortKeyRejected(t *testing.T) {
	router, _, _ := newAgentTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/agent/ping", strings.NewReader(`{"device_key":"short"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func ingestRequest(t *testing.T, deviceKey, fileName string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("device_key", deviceKey))
	require.NoError(t, mw.WriteField("source_type", "CCC_EXPORT"))
	require.NoError(t, mw.WriteField("file_path", `C:\Exports\`+fileName))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/agent/ingest-file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAgentIngestFile(t *testing.T) {
	router, device, blobs := newAgentTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, ingestRequest(t, device.DeviceKey, "estimate.pdf", []byte("pdf bytes")))

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, storage.ContentDigest([]byte("pdf bytes")), resp["hash"])
	require.Contains(t, blobs.objects, resp["storagePath"].(string))

	// Resubmitting the same bytes succeeds and reuses the blob
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, ingestRequest(t, device.DeviceKey, "estimate.pdf", []byte("pdf bytes")))
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Len(t, blobs.objects, 1)
}

func TestAgentIngestFileMissingFile(t *testing.T) {
	router, device, _ := newAgentTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("device_key", device.DeviceKey))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/agent/ingest-file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing file")
}

func TestAgentIngestFileUnknownKey(t *testing.T) {
	router, _, blobs := newAgentTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, ingestRequest(t, "00000000000000000000000000000000", "x.pdf", []byte("x")))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, blobs.objects)
}

func TestParseModifiedAt(t *testing.T) {
	got := parseModifiedAt("2025-06-10T12:00:00Z")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC), got.UTC())

	got = parseModifiedAt("2025-06-10 12:00:00")
	require.NotNil(t, got)

	assert.Nil(t, parseModifiedAt(""))
	assert.Nil(t, parseModifiedAt("last tuesday"))
}
