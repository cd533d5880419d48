package sinks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/dmwalker/trackpipe/internal/pipeline"
)

// LocalSink writes CSV files under a base directory, one per entity, named
// <entity>_<playlistID>.csv. The directory is created on first write.
type LocalSink struct {
	baseDir    string
	playlistID string
	logger     *log.Logger
}

// NewLocalSink creates a sink rooted at baseDir for the given playlist.
func NewLocalSink(baseDir, playlistID string, logger *log.Logger) *LocalSink {
	if baseDir == "" {
		baseDir = "./data"
	}
	return &LocalSink{baseDir: baseDir, playlistID: playlistID, logger: logger}
}

// Path returns the file path Write would use for an entity.
func (s *LocalSink) Path(entity string) string {
	return filepath.Join(s.baseDir, fmt.Sprintf("%s_%s.csv", entity, s.playlistID))
}

// Write serializes the table and writes it to the entity's file.
func (s *LocalSink) Write(ctx context.Context, entity string, table *pipeline.Table) (string, error) {
	if err := checkTable(entity, table); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := table.CSV()
	if err != nil {
		return "", fmt.Errorf("failed to serialize %s: %w", entity, err)
	}

	path := s.Path(entity)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", entity, err)
	}

	if s.logger != nil {
		s.logger.Info("wrote record set", "entity", entity, "rows", table.Len(), "path", path)
	}
	return path, nil
}

// WriteAll writes all three record sets under the base directory.
func (s *LocalSink) WriteAll(ctx context.Context, tables map[string]*pipeline.Table) (map[string]string, error) {
	return writeAll(ctx, s, tables)
}
