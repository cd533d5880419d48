package pipeline

import (
	"testing"

	"github.com/dmwalker/trackpipe/internal/models"
)

func TestAlbumTable(t *testing.T) {
	t.Run("Dedup Keeps First Occurrence", func(t *testing.T) {
		records := []models.AlbumRecord{
			{ID: "a1", Name: "First Name", ReleaseDate: "2020-01-01", TotalTracks: 10, URL: "u1"},
			{ID: "a2", Name: "Other", ReleaseDate: "2019-05-05", TotalTracks: 8, URL: "u2"},
			{ID: "a1", Name: "Conflicting Name", ReleaseDate: "1999-01-01", TotalTracks: 99, URL: "u3"},
		}

		table := AlbumTable(records)
		if table.Len() != 2 {
			t.Fatalf("expected 2 rows after dedup, got %d", table.Len())
		}
		if table.Rows[0][1] != "First Name" {
			t.Errorf("dedup must keep first occurrence, got name %s", table.Rows[0][1])
		}
		if table.Rows[0][0] != "a1" || table.Rows[1][0] != "a2" {
			t.Errorf("dedup must preserve input order: %v", table.Rows)
		}
	})

	t.Run("Partial Precision Release Dates", func(t *testing.T) {
		records := []models.AlbumRecord{
			{ID: "a1", ReleaseDate: "2021-03-05"},
			{ID: "a2", ReleaseDate: "2021-03"},
			{ID: "a3", ReleaseDate: "2021"},
			{ID: "a4", ReleaseDate: "not-a-date"},
			{ID: "a5", ReleaseDate: ""},
		}

		table := AlbumTable(records)
		want := []string{"2021-03-05", "2021-03-01", "2021-01-01", "", ""}
		for i, expected := range want {
			if got := table.Rows[i][2]; got != expected {
				t.Errorf("row %d: expected release_date %q, got %q", i, expected, got)
			}
		}
	})

	t.Run("Empty Input Yields Empty Table", func(t *testing.T) {
		table := AlbumTable(nil)
		if !table.Empty() {
			t.Errorf("expected empty table, got %d rows", table.Len())
		}
		if len(table.Columns) != 5 {
			t.Errorf("empty table must keep its schema, got %v", table.Columns)
		}
	})
}

func TestArtistTable(t *testing.T) {
	records := []models.ArtistRecord{
		{ID: "art1", Name: "First Artist", URL: "u1"},
		{ID: "art2", Name: "Second Artist", URL: "u2"},
		{ID: "art1", Name: "Renamed Artist", URL: "u3"},
		{ID: "art2", Name: "Second Artist", URL: "u2"},
	}

	table := ArtistTable(records)
	if table.Len() != 2 {
		t.Fatalf("expected 2 unique artists, got %d", table.Len())
	}
	if table.Rows[0][1] != "First Artist" {
		t.Errorf("expected first occurrence to win, got %s", table.Rows[0][1])
	}

	seen := map[string]bool{}
	for _, row := range table.Rows {
		if seen[row[0]] {
			t.Errorf("duplicate id after dedup: %s", row[0])
		}
		seen[row[0]] = true
	}
}

func TestSongTable(t *testing.T) {
	t.Run("Field Passthrough And Timestamp Coercion", func(t *testing.T) {
		records := []models.SongRecord{
			{ID: "s1", Name: "Song One", AddedAt: "2024-06-01T10:00:00Z", DurationMS: 201000, Popularity: 64, URL: "u1", AlbumID: "a1", ArtistID: "art1"},
			{ID: "s2", Name: "Song Two", AddedAt: "garbage", DurationMS: 180500, Popularity: 12, URL: "u2", AlbumID: "a1", ArtistID: ""},
		}

		table := SongTable(records)
		if table.Len() != 2 {
			t.Fatalf("expected 2 rows, got %d", table.Len())
		}

		row := table.Rows[0]
		if row[2] != "2024-06-01T10:00:00Z" {
			t.Errorf("expected canonical timestamp, got %s", row[2])
		}
		if row[3] != "201000" || row[4] != "64" {
			t.Errorf("numeric fields must pass through unchanged: %v", row)
		}

		if table.Rows[1][2] != "" {
			t.Errorf("malformed added_at must become an empty cell, got %q", table.Rows[1][2])
		}
		if table.Rows[1][7] != "" {
			t.Errorf("empty artist id must survive, got %q", table.Rows[1][7])
		}
	})

	t.Run("Timestamp Normalized To UTC", func(t *testing.T) {
		records := []models.SongRecord{
			{ID: "s1", AddedAt: "2024-06-01T12:00:00+02:00"},
		}
		table := SongTable(records)
		if got := table.Rows[0][2]; got != "2024-06-01T10:00:00Z" {
			t.Errorf("expected UTC-normalized timestamp, got %s", got)
		}
	})

	t.Run("Dedup By Track ID", func(t *testing.T) {
		records := []models.SongRecord{
			{ID: "s1", Name: "Original", AddedAt: "2024-06-01T10:00:00Z"},
			{ID: "s1", Name: "Duplicate", AddedAt: "2024-06-02T10:00:00Z"},
		}
		table := SongTable(records)
		if table.Len() != 1 {
			t.Fatalf("expected 1 row after dedup, got %d", table.Len())
		}
		if table.Rows[0][1] != "Original" {
			t.Errorf("expected first occurrence, got %s", table.Rows[0][1])
		}
	})
}
