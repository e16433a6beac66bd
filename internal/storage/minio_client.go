package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Kashikuroni/YP-Blogicum/internal/config"
)

// ImageStorage stores post images in an object store. UploadImage
// returns the object name and the public URL the stored image is
// served from.
type ImageStorage interface {
	UploadImage(ctx context.Context, postID, fileName string, file io.Reader, size int64) (string, string, error)
	DeleteImage(ctx context.Context, objectName string) error
}

// MinIOClient implements ImageStorage over a MinIO (or S3-compatible)
// endpoint.
type MinIOClient struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewMinIOClient connects to the configured endpoint and makes sure
// the image bucket exists.
func NewMinIOClient(ctx context.Context, cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.MinioBucket, err)
		}
	}

	return &MinIOClient{
		client:  client,
		bucket:  cfg.MinioBucket,
		baseURL: strings.TrimRight(cfg.MediaBaseURL, "/"),
	}, nil
}

// UploadImage stores the file under posts/<postID>/<year>/<month>/
// with a fresh UUID name, keeping uploads for one post grouped.
func (m *MinIOClient) UploadImage(ctx context.Context, postID, fileName string, file io.Reader, size int64) (string, string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now().UTC()
	objectName := fmt.Sprintf("posts/%s/%d/%02d/%s%s",
		postID, now.Year(), now.Month(), uuid.New().String(), fileExt)

	_, err := m.client.PutObject(ctx, m.bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"post-id":           postID,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload image: %w", err)
	}

	return objectName, m.baseURL + "/" + objectName, nil
}

// DeleteImage removes a previously uploaded object. Accepts either the
// object name or the public URL UploadImage returned. Missing objects
// are not an error.
func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	objectName = strings.TrimPrefix(objectName, m.baseURL+"/")
	err := m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete image %s: %w", objectName, err)
	}
	return nil
}
