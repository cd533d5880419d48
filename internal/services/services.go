// package services defines interface CatalogService for remote music catalog APIs
//
// Spotify is the only implementation; the pipeline depends on the interface so
// tests can substitute a fixture-backed catalog.
package services

import (
	"context"
)

// CatalogService defines the single operation the pipeline needs from the
// remote catalog: one page of track listings for a playlist.
type CatalogService interface {
	// PlaylistTracks retrieves one page of playlist-track data for the given playlist ID.
	PlaylistTracks(ctx context.Context, playlistID string) (*PlaylistTracksPage, error)

	// Name returns the name of the catalog backend (e.g., "Spotify")
	Name() string
}
