package pipeline

import (
	"github.com/dmwalker/trackpipe/internal/models"
	"github.com/dmwalker/trackpipe/internal/services"
)

// Extractor projects one page of playlist-track data into flat record slices.
//
// Each extraction method walks the page independently, so any of them may be
// invoked standalone. An item whose track is absent, or whose track carries no
// usable identifier, is skipped and counted; it never aborts the batch.
type Extractor struct {
	page *services.PlaylistTracksPage
}

// NewExtractor creates an Extractor over the given page.
func NewExtractor(page *services.PlaylistTracksPage) *Extractor {
	return &Extractor{page: page}
}

// usable reports whether the item carries a track worth projecting.
func usable(item services.PlaylistItem) bool {
	return item.Track != nil && item.Track.ID != ""
}

// Albums returns one [models.AlbumRecord] per item with a present track, in
// page order, along with the number of skipped items. Albums referenced by
// several tracks repeat; deduplication happens in transformation.
func (e *Extractor) Albums() ([]models.AlbumRecord, int) {
	var records []models.AlbumRecord
	skipped := 0

	for _, item := range e.page.Items {
		if !usable(item) {
			skipped++
			continue
		}

		album := item.Track.Album
		records = append(records, models.AlbumRecord{
			ID:          album.ID,
			Name:        album.Name,
			ReleaseDate: album.ReleaseDate,
			TotalTracks: album.TotalTracks,
			URL:         album.ExternalURLs.Spotify,
		})
	}

	return records, skipped
}

// Artists returns one [models.ArtistRecord] per (item, artist) pair with a
// present track, in page order, along with the number of skipped items.
// Artists without an identifier (local files) are dropped.
func (e *Extractor) Artists() ([]models.ArtistRecord, int) {
	var records []models.ArtistRecord
	skipped := 0

	for _, item := range e.page.Items {
		if !usable(item) {
			skipped++
			continue
		}

		for _, artist := range item.Track.Artists {
			if artist.ID == "" {
				continue
			}
			records = append(records, models.ArtistRecord{
				ID:   artist.ID,
				Name: artist.Name,
				URL:  artist.ExternalURLs.Spotify,
			})
		}
	}

	return records, skipped
}

// Songs returns one [models.SongRecord] per item with a present track, in page
// order, along with the number of skipped items.
//
// ArtistID is the first artist on the embedded album's artist list; an album
// with no listed artists produces a record with an empty ArtistID rather than
// failing the item.
func (e *Extractor) Songs() ([]models.SongRecord, int) {
	var records []models.SongRecord
	skipped := 0

	for _, item := range e.page.Items {
		if !usable(item) {
			skipped++
			continue
		}

		track := item.Track
		var artistID string
		if len(track.Album.Artists) > 0 {
			artistID = track.Album.Artists[0].ID
		}

		records = append(records, models.SongRecord{
			ID:         track.ID,
			Name:       track.Name,
			AddedAt:    item.AddedAt,
			DurationMS: track.DurationMS,
			Popularity: track.Popularity,
			URL:        track.ExternalURLs.Spotify,
			AlbumID:    track.Album.ID,
			ArtistID:   artistID,
		})
	}

	return records, skipped
}
