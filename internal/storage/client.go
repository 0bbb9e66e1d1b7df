package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	appconfig "auto360_server/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// BlobStore writes intake file content. Put reports alreadyExists=true when
// the key was present before the call; that case is a success, not an
// error, so agents can safely resubmit after a network timeout.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (alreadyExists bool, err error)
}

// Client is an S3-backed BlobStore for the intake bucket. Works against AWS
// or any S3-compatible endpoint (MinIO) via path-style addressing.
type Client struct {
	s3Client *s3.Client
	bucket   string
}

// NewClient builds the intake bucket client from storage configuration
func NewClient(cfg *appconfig.StorageConfig) (*Client, error) {
	endpoint := cfg.Endpoint
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &Client{
		s3Client: s3Client,
		bucket:   cfg.Bucket,
	}, nil
}

// Ping verifies bucket connectivity with a single-key list
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.s3Client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(c.bucket),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to intake bucket: %w", err)
	}
	return nil
}

// Put writes the bytes at key unless an object is already there. An
// existing object is treated as a duplicate-skip success; any other storage
// failure is returned as an error.
func (c *Client) Put(ctx context.Context, key string, data []byte, contentType string) (bool, error) {
	_, err := c.s3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}
	var notFound *types.NotFound
	if !errors.As(err, &notFound) {
		return false, fmt.Errorf("failed to check intake object %s: %w", key, err)
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err = c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return false, fmt.Errorf("failed to write intake object %s: %w", key, err)
	}
	return false, nil
}
