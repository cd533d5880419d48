package pipeline

import (
	"strconv"
	"time"

	"github.com/dmwalker/trackpipe/internal/models"
)

const dateLayout = "2006-01-02"

// releaseDateLayouts covers the precisions Spotify emits for album release dates.
var releaseDateLayouts = []string{dateLayout, "2006-01", "2006"}

// normalizeReleaseDate renders a full or partial-precision release date as
// YYYY-MM-DD. Unparseable values become an empty cell.
func normalizeReleaseDate(v string) string {
	for _, layout := range releaseDateLayouts {
		if ts, err := time.Parse(layout, v); err == nil {
			return ts.Format(dateLayout)
		}
	}
	return ""
}

// normalizeTimestamp renders an ISO-8601 timestamp in canonical UTC RFC 3339
// form. Unparseable values become an empty cell.
func normalizeTimestamp(v string) string {
	if ts, err := time.Parse(time.RFC3339, v); err == nil {
		return ts.UTC().Format(time.RFC3339)
	}
	return ""
}

// AlbumTable converts raw album records into a deduplicated table with columns
// id, name, release_date, total_tracks, url. Duplicate ids keep the first
// occurrence; release_date is coerced leniently.
func AlbumTable(records []models.AlbumRecord) *Table {
	t := NewTable([]string{"id", "name", "release_date", "total_tracks", "url"})
	for _, r := range records {
		t.Append([]string{r.ID, r.Name, r.ReleaseDate, strconv.Itoa(r.TotalTracks), r.URL})
	}
	t.DedupeBy("id")
	t.Coerce("release_date", normalizeReleaseDate)
	return t
}

// ArtistTable converts raw artist records into a deduplicated table with
// columns id, name, url.
func ArtistTable(records []models.ArtistRecord) *Table {
	t := NewTable([]string{"id", "name", "url"})
	for _, r := range records {
		t.Append([]string{r.ID, r.Name, r.URL})
	}
	t.DedupeBy("id")
	return t
}

// SongTable converts raw song records into a deduplicated table with columns
// id, name, added_at, duration_ms, popularity, url, album_id, artist_id.
// added_at is coerced leniently.
func SongTable(records []models.SongRecord) *Table {
	t := NewTable([]string{"id", "name", "added_at", "duration_ms", "popularity", "url", "album_id", "artist_id"})
	for _, r := range records {
		t.Append([]string{
			r.ID,
			r.Name,
			r.AddedAt,
			strconv.Itoa(r.DurationMS),
			strconv.Itoa(r.Popularity),
			r.URL,
			r.AlbumID,
			r.ArtistID,
		})
	}
	t.DedupeBy("id")
	t.Coerce("added_at", normalizeTimestamp)
	return t
}
