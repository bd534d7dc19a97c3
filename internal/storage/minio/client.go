package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/logger"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

// Internal adapter interface to enable mocking without a real MinIO server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	SetBucketPolicy(ctx context.Context, bucketName, policy string) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

var _ minioAPI = (*minio.Client)(nil)

var _ model.AvatarStorage = (*Client)(nil)

// avatarExtensions lists the accepted avatar content types.
var avatarExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

const publicReadPolicy = `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`

// Client stores avatar images in a publicly readable bucket.
type Client struct {
	api       minioAPI
	bucket    string
	publicURL string
	logger    *logger.Logger
}

// NewClient creates a new MinIO avatar storage using a real *minio.Client instance.
func NewClient(ctx context.Context, client *minio.Client, bucket, publicURL string, logger *logger.Logger) (*Client, error) {
	return NewClientWithAPI(ctx, client, bucket, publicURL, logger)
}

// NewClientWithAPI allows injecting a mockable API (used in tests).
func NewClientWithAPI(ctx context.Context, api minioAPI, bucket, publicURL string, logger *logger.Logger) (*Client, error) {
	c := &Client{
		api:       api,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}

	err := c.ensureBucketExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return c, nil
}

// ensureBucketExists creates the bucket with anonymous read access if it doesn't exist
func (c *Client) ensureBucketExists(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	err = c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{})
	if err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	err = c.api.SetBucketPolicy(ctx, c.bucket, fmt.Sprintf(publicReadPolicy, c.bucket))
	if err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	c.logger.Info("Avatar storage: bucket created", "bucket", c.bucket)

	return nil
}

// UploadAvatar stores an avatar image of userID and returns its public URL.
func (c *Client) UploadAvatar(ctx context.Context, userID int64, contentType string, data io.Reader, size int64) (string, error) {
	ext, ok := avatarExtensions[strings.ToLower(contentType)]
	if !ok {
		return "", model.NewBadProvidedDataError(model.FieldErrors{
			"file": fmt.Sprintf("Unsupported avatar content type: %s", contentType),
		})
	}

	key := fmt.Sprintf("users/%d/%s.%s", userID, uuid.NewString(), ext)

	_, err := c.api.PutObject(ctx, c.bucket, key, data, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	c.logger.Debug("Avatar storage: avatar uploaded", "user_id", userID, "key", key)

	return c.URL(key), nil
}

// DeleteByURL removes the object behind url. URLs that do not point into the bucket
// (for example generated default avatars) and missing objects are ignored.
func (c *Client) DeleteByURL(ctx context.Context, url string) error {
	key, ok := c.KeyFromURL(url)
	if !ok {
		c.logger.Debug("Avatar storage: url is not stored here, skipping delete", "url", url)
		return nil
	}

	err := c.api.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete object: %w", err)
	}

	c.logger.Debug("Avatar storage: avatar deleted", "key", key)

	return nil
}

// Exists checks if object exists in MinIO
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.api.StatObject(ctx, c.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object: %w", err)
	}
	return true, nil
}

// URL returns the public URL of key.
func (c *Client) URL(key string) string {
	return c.publicURL + "/" + c.bucket + "/" + key
}

// KeyFromURL extracts the object key from a URL produced by URL.
func (c *Client) KeyFromURL(url string) (string, bool) {
	prefix := c.publicURL + "/" + c.bucket + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}

func isNotFound(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
