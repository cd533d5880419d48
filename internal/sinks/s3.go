package sinks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dmwalker/trackpipe/internal/pipeline"
	"github.com/dmwalker/trackpipe/internal/shared"
)

const (
	// keyTimestampLayout stamps object keys so repeated runs never overwrite
	// earlier artifacts.
	keyTimestampLayout = "2006-01-02_15-04-05"

	defaultKeyPrefix = "processed-data/spotify"

	csvContentType = "text/csv"
)

// ObjectPutter uploads one object to a bucket.
// [connectors.S3Connector] implements it; tests substitute a recorder.
type ObjectPutter interface {
	PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error
}

// S3Sink writes CSV objects under a bucket with timestamped keys of the form
// <prefix>/<entity>/<entity>_<timestamp>.csv.
type S3Sink struct {
	store  ObjectPutter
	bucket string
	prefix string
	logger *log.Logger
	now    func() time.Time
}

// NewS3Sink creates a sink writing to the given bucket. An empty prefix
// defaults to "processed-data/spotify".
func NewS3Sink(store ObjectPutter, bucket, prefix string, logger *log.Logger) *S3Sink {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &S3Sink{
		store:  store,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		logger: logger,
		now:    time.Now,
	}
}

// Write serializes the table and uploads it, returning the s3:// URI of the
// created object.
func (s *S3Sink) Write(ctx context.Context, entity string, table *pipeline.Table) (string, error) {
	if err := checkTable(entity, table); err != nil {
		return "", err
	}
	if s.bucket == "" {
		return "", fmt.Errorf("%w: bucket name", shared.ErrInvalidConfig)
	}

	data, err := table.CSV()
	if err != nil {
		return "", fmt.Errorf("failed to serialize %s: %w", entity, err)
	}

	timestamp := s.now().UTC().Format(keyTimestampLayout)
	key := fmt.Sprintf("%s/%s/%s_%s.csv", s.prefix, entity, entity, timestamp)

	if err := s.store.PutObject(ctx, s.bucket, key, data, csvContentType); err != nil {
		return "", fmt.Errorf("%w: %s: %v", shared.ErrSinkWrite, entity, err)
	}

	uri := fmt.Sprintf("s3://%s/%s", s.bucket, key)
	if s.logger != nil {
		s.logger.Info("uploaded record set", "entity", entity, "rows", table.Len(), "uri", uri)
	}
	return uri, nil
}

// WriteAll uploads all three record sets and returns their s3:// URIs keyed by
// entity name.
func (s *S3Sink) WriteAll(ctx context.Context, tables map[string]*pipeline.Table) (map[string]string, error) {
	return writeAll(ctx, s, tables)
}
