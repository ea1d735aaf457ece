package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const bucketCheckTimeout = 5 * time.Second

var ErrBucketCreationFailed = errors.New("failed to create storage bucket")

type MinioStore struct {
	client *minio.Client
	bucket string

	// ensure prepares the bucket; only a nil result is remembered.
	ensure func(ctx context.Context) error
	mu     sync.Mutex
	ready  bool
}

// NewMinioStore builds the client; the bucket is created on first use.
func NewMinioStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	s := &MinioStore{client: client, bucket: bucket}
	s.ensure = s.ensureBucket
	return s, nil
}

// lazyInit prepares the bucket once it succeeds; failures are retried by the
// next call. A caller that goes away does not cancel the check.
func (s *MinioStore) lazyInit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}

	checkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), bucketCheckTimeout)
	defer cancel()
	if err := s.ensure(checkCtx); err != nil {
		return err
	}
	s.ready = true
	return nil
}

func (s *MinioStore) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("%w: check bucket: %v", ErrBucketCreationFailed, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("%w: make bucket: %v", ErrBucketCreationFailed, err)
	}
	return nil
}

func (s *MinioStore) Save(ctx context.Context, name string, r io.Reader, size int64) error {
	if !IsSanitized(name) {
		return ErrInvalidName
	}
	if err := s.lazyInit(ctx); err != nil {
		return err
	}

	_, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: mime.TypeByExtension(path.Ext(name)),
	})
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}

func (s *MinioStore) Open(ctx context.Context, name string) (*Object, error) {
	if !IsSanitized(name) {
		return nil, ErrNotFound
	}
	if err := s.lazyInit(ctx); err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, translateMinio(err)
	}
	st, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		return nil, translateMinio(err)
	}

	return &Object{Body: obj, Size: st.Size, ModTime: st.LastModified}, nil
}

func translateMinio(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return ErrNotFound
	}
	return err
}
