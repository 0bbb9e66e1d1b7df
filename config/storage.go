package config

// StorageConfig holds object storage configuration for the intake bucket.
// Works against AWS S3 or any S3-compatible endpoint (MinIO etc.).
type StorageConfig struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UsePathStyle    bool
}

// GetStorageConfig returns object storage configuration from environment variables
func GetStorageConfig() *StorageConfig {
	return &StorageConfig{
		Endpoint:        getEnv("STORAGE_ENDPOINT", ""),
		Region:          getEnv("STORAGE_REGION", "us-east-1"),
		AccessKeyID:     getEnv("STORAGE_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("STORAGE_SECRET_ACCESS_KEY", ""),
		Bucket:          getEnv("STORAGE_BUCKET", "intake"),
		UsePathStyle:    getEnv("STORAGE_PATH_STYLE", "true") == "true",
	}
}
