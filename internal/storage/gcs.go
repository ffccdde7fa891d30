package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GCSBackend implements the Backend interface for Google Cloud Storage.
type GCSBackend struct {
	client       *storage.Client
	bucket       string
	objectPrefix string
	ctx          context.Context
}

// NewGCSBackend creates a new GCSBackend instance. With an empty
// credentialsFile, application default credentials are used.
func NewGCSBackend(ctx context.Context, bucketName, objectPrefix, credentialsFile string) (*GCSBackend, error) {
	var client *storage.Client
	var err error

	if credentialsFile != "" {
		client, err = storage.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	} else {
		client, err = storage.NewClient(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSBackend{
		client:       client,
		bucket:       bucketName,
		objectPrefix: objectPrefix,
		ctx:          ctx,
	}, nil
}

func (s *GCSBackend) objectName(path string) string {
	name := strings.TrimPrefix(path, "/")
	if s.objectPrefix != "" {
		name = s.objectPrefix + "/" + name
	}
	return name
}

// GetReader returns a reader for a GCS object.
func (s *GCSBackend) GetReader(path string) (io.ReadCloser, error) {
	return s.client.Bucket(s.bucket).Object(s.objectName(path)).NewReader(s.ctx)
}

// GetWriter returns a writer for a GCS object. The object becomes visible
// atomically when the writer is closed.
func (s *GCSBackend) GetWriter(path string) (io.WriteCloser, error) {
	return s.client.Bucket(s.bucket).Object(s.objectName(path)).NewWriter(s.ctx), nil
}

// FileExists checks if an object exists in the bucket.
func (s *GCSBackend) FileExists(path string) bool {
	_, err := s.client.Bucket(s.bucket).Object(s.objectName(path)).Attrs(s.ctx)
	return err == nil
}

// ListFiles lists objects under a prefix matching a name pattern.
func (s *GCSBackend) ListFiles(dir string, pattern string) ([]string, error) {
	prefix := s.objectName(dir)
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	it := s.client.Bucket(s.bucket).Objects(s.ctx, &storage.Query{Prefix: prefix})

	var results []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}

		name := strings.TrimPrefix(attrs.Name, prefix)
		if pattern != "" && !strings.HasPrefix(name, pattern) {
			continue
		}
		results = append(results, attrs.Name)
	}

	return results, nil
}
