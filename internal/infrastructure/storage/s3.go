package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"

	"github.com/localmarket/backend/internal/application/media"
	infraconfig "github.com/localmarket/backend/internal/infrastructure/config"
)

// S3ImageStore stores images in an S3 bucket. It works with any
// S3-compatible backend (AWS S3, MinIO, RustFS).
type S3ImageStore struct {
	client     *s3.Client
	bucket     string
	prefix     string
	publicBase string
	logger     *zap.Logger
}

// S3ImageStoreOption is a functional option for configuring S3ImageStore
type S3ImageStoreOption func(*S3ImageStore)

// WithLogger sets a custom logger for S3ImageStore
func WithLogger(logger *zap.Logger) S3ImageStoreOption {
	return func(s *S3ImageStore) {
		s.logger = logger
	}
}

// NewS3ImageStore creates a new S3ImageStore from configuration.
// Credentials come from the default AWS credential chain.
func NewS3ImageStore(cfg *infraconfig.StorageConfig, opts ...S3ImageStoreOption) (*S3ImageStore, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.S3Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.S3Region == "" {
		return nil, errors.New("storage region is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	store := &S3ImageStore{
		client:     client,
		bucket:     cfg.S3Bucket,
		prefix:     strings.Trim(cfg.S3Prefix, "/"),
		publicBase: strings.TrimSuffix(cfg.PublicBase, "/"),
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(store)
	}

	return store, nil
}

// EnsureBucket creates the bucket if it doesn't exist. Call this during
// application startup.
func (s *S3ImageStore) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err == nil {
		return nil
	}

	var notFound *types.NotFound
	var noSuchBucket *types.NoSuchBucket
	if !errors.As(err, &notFound) && !errors.As(err, &noSuchBucket) {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	s.logger.Info("Creating storage bucket", zap.String("bucket", s.bucket))
	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		var alreadyOwned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &alreadyOwned) {
			return nil
		}
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	return nil
}

// Save uploads the image under the given file name, replacing any previous
// object at that key
func (s *S3ImageStore) Save(ctx context.Context, fileName string, data []byte) (string, error) {
	if fileName == "" {
		return "", errors.New("file name is required")
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(fileName)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return s.publicBase + "/" + fileName, nil
}

// Delete removes the object behind a public path. A key that no longer
// exists is not an error; S3 deletes are idempotent.
func (s *S3ImageStore) Delete(ctx context.Context, publicPath string) error {
	fileName := path.Base(publicPath)
	if fileName == "" || fileName == "." || fileName == "/" {
		return fmt.Errorf("invalid image path %q", publicPath)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(fileName)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func (s *S3ImageStore) key(fileName string) string {
	if s.prefix == "" {
		return fileName
	}
	return s.prefix + "/" + fileName
}

// Ensure S3ImageStore implements media.ImageStore
var _ media.ImageStore = (*S3ImageStore)(nil)
