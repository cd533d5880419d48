// package testing contains shared testing utilities
package testing

import (
	"context"
	"os"
	"testing"

	"github.com/dmwalker/trackpipe/internal/services"
)

// MockCatalog is a test double for [services.CatalogService] returning a
// canned page or error.
type MockCatalog struct {
	Page *services.PlaylistTracksPage
	Err  error
}

func (m *MockCatalog) PlaylistTracks(ctx context.Context, playlistID string) (*services.PlaylistTracksPage, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Page, nil
}

func (m *MockCatalog) Name() string { return "mock" }

// PutCall records one object upload observed by [MockPutter].
type PutCall struct {
	Bucket      string
	Key         string
	Body        []byte
	ContentType string
}

// MockPutter records PutObject calls and optionally fails them.
type MockPutter struct {
	Calls []PutCall
	Err   error
}

func (m *MockPutter) PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Calls = append(m.Calls, PutCall{Bucket: bucket, Key: key, Body: body, ContentType: contentType})
	return nil
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
