package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// s3Storage implements Storage against an S3-compatible object store.
// Range reads map directly onto S3 ranged GetObject requests.
type s3Storage struct {
	session *session.Session
	bucket  string
}

// S3Config holds connection settings for the object storage backend
type S3Config struct {
	Endpoint     string
	AccessKey    string
	AccessSecret string
	Region       string
	Bucket       string
}

// NewS3Storage creates a new object-storage-backed blob store
func NewS3Storage(c S3Config) (*s3Storage, error) {
	cfg := aws.NewConfig().
		WithCredentials(credentials.NewStaticCredentials(c.AccessKey, c.AccessSecret, "")).
		WithRegion(c.Region)
	if c.Endpoint != "" {
		cfg = cfg.WithEndpoint(c.Endpoint).WithS3ForcePathStyle(true)
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("s3 session: %w", err)
	}

	return &s3Storage{session: sess, bucket: c.Bucket}, nil
}

func (s *s3Storage) key(kind, filename string) string {
	return path.Join(kind, filename)
}

// Save uploads the full blob content under kind/filename
func (s *s3Storage) Save(ctx context.Context, kind, filename string, content io.Reader) error {
	_, err := s3manager.NewUploader(s.session).UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: &s.bucket,
		Key:    aws.String(s.key(kind, filename)),
		Body:   content,
	})
	if err != nil {
		return fmt.Errorf("upload blob: %w", err)
	}
	return nil
}

// Open returns a reader over the whole object
func (s *s3Storage) Open(ctx context.Context, kind, filename string) (io.ReadCloser, error) {
	return s.get(ctx, kind, filename, nil)
}

// OpenRange returns a reader over the inclusive byte window [start, end]
// using an S3 ranged request
func (s *s3Storage) OpenRange(ctx context.Context, kind, filename string, start, end int64) (io.ReadCloser, error) {
	return s.get(ctx, kind, filename, aws.String(fmt.Sprintf("bytes=%d-%d", start, end)))
}

func (s *s3Storage) get(ctx context.Context, kind, filename string, byteRange *string) (io.ReadCloser, error) {
	output, err := s3.New(s.session).GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(s.key(kind, filename)),
		Range:  byteRange,
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, fmt.Errorf("get object: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("get object: %w", err)
	}
	return output.Body, nil
}

// Delete removes the object
func (s *s3Storage) Delete(ctx context.Context, kind, filename string) error {
	svc := s3.New(s.session)
	key := s.key(kind, filename)

	// DeleteObject succeeds on missing keys, so check existence first to
	// keep parity with the filesystem backend
	if _, err := svc.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}); err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && (aerr.Code() == "NotFound" || aerr.Code() == s3.ErrCodeNoSuchKey) {
			return fmt.Errorf("head object: %w", ErrNotFound)
		}
		return fmt.Errorf("head object: %w", err)
	}

	if _, err := svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}
