package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appconfig "github.com/Kanishak333/PBL--HireEdge/internal/config"
	"github.com/Kanishak333/PBL--HireEdge/internal/models"
)

// BackupStore writes the raw uploaded bytes under a pre-generated key.
// Best effort only: a failing store must never affect the analysis path.
type BackupStore interface {
	Save(ctx context.Context, key string, doc models.UploadedDocument) error
}

// BackupKey builds a collision-resistant object key: millisecond timestamp
// prefix plus the original filename, with a uuid in between so two uploads
// of the same file in the same millisecond cannot clash.
func BackupKey(filename string) string {
	return fmt.Sprintf("%d_%s_%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Base(filename))
}

type s3Store struct {
	client *s3.Client
	bucket string
}

func NewS3Store(ctx context.Context, cfg appconfig.BackupConfig) (BackupStore, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			// Custom endpoint for S3-compatible stores (Supabase, MinIO)
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Store{client: client, bucket: cfg.S3Bucket}, nil
}

func (s *s3Store) Save(ctx context.Context, key string, doc models.UploadedDocument) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(doc.Data),
	}
	if doc.MIMEType != "" {
		input.ContentType = aws.String(doc.MIMEType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload %q to bucket %q: %w", key, s.bucket, err)
	}

	return nil
}

type localStore struct {
	dir string
}

// NewLocalStore backs uploads up to a directory on disk. Development
// stand-in for the object store.
func NewLocalStore(dir string) (BackupStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	return &localStore{dir: dir}, nil
}

func (s *localStore) Save(_ context.Context, key string, doc models.UploadedDocument) error {
	path := filepath.Join(s.dir, key)
	if err := os.WriteFile(path, doc.Data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}

	return nil
}
