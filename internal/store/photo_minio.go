package store

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/MKhiriev/selisih-berat/internal/config"
	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/internal/utils"
	"github.com/MKhiriev/selisih-berat/models"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// objectClient is the subset of *minio.Client used by the photo storage.
type objectClient interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// minioPhotoStorage stores photos in an S3-compatible bucket under
// entries/YYYY/MM/<uuid>.<ext>.
type minioPhotoStorage struct {
	client    objectClient
	bucket    string
	publicURL string

	uuid   *utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewMinioPhotoStorage connects to the configured endpoint and makes sure
// the bucket exists.
func NewMinioPhotoStorage(ctx context.Context, cfg config.Minio, log *logger.Logger) (PhotoStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = client.EndpointURL().String() + "/" + cfg.Bucket
	}

	storage := newMinioPhotoStorage(client, cfg.Bucket, publicURL, log)
	if err = storage.ensureBucket(ctx); err != nil {
		return nil, err
	}

	log.Info().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.Bucket).Msg("photo storage: minio")
	return storage, nil
}

func newMinioPhotoStorage(client objectClient, bucket, publicURL string, log *logger.Logger) *minioPhotoStorage {
	return &minioPhotoStorage{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		uuid:      utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    log,
	}
}

func (m *minioPhotoStorage) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err = m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket: %w", err)
	}
	m.logger.Info().Str("bucket", m.bucket).Msg("created photo bucket")
	return nil
}

// Upload stores photo and returns its public URL.
func (m *minioPhotoStorage) Upload(ctx context.Context, photo models.Photo) (string, error) {
	log := logger.FromContext(ctx)

	key := m.objectKey(photo.ContentType)
	_, err := m.client.PutObject(ctx, m.bucket, key, photo.Content, photo.Size, minio.PutObjectOptions{
		ContentType: photo.ContentType,
	})
	if err != nil {
		log.Err(err).Str("func", "*minioPhotoStorage.Upload").Str("key", key).Msg("failed to upload photo")
		return "", fmt.Errorf("%w: %w", ErrUploadingPhoto, err)
	}

	return m.publicURL + "/" + key, nil
}

// Delete removes the object behind photoURL. URLs outside the public base
// yield [ErrForeignPhoto].
func (m *minioPhotoStorage) Delete(ctx context.Context, photoURL string) error {
	key, ok := strings.CutPrefix(photoURL, m.publicURL+"/")
	if !ok || key == "" {
		return fmt.Errorf("%w: %s", ErrForeignPhoto, photoURL)
	}
	if unescaped, err := url.PathUnescape(key); err == nil {
		key = unescaped
	}

	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*minioPhotoStorage.Delete").Str("key", key).Msg("failed to delete photo")
		return fmt.Errorf("%w: %w", ErrDeletingPhoto, err)
	}
	return nil
}

func (m *minioPhotoStorage) objectKey(contentType string) string {
	now := m.now().UTC()
	return path.Join("entries", now.Format("2006"), now.Format("01"), m.uuid.Generate()+PhotoExtension(contentType))
}

// PhotoExtension returns the file extension for a photo content type.
func PhotoExtension(contentType string) string {
	switch strings.ToLower(contentType) {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
