// package models defines the flat record shapes projected from playlist-track data
package models

// AlbumRecord is one album row projected from a playlist item.
//
// Items referencing the same album each produce a candidate record; rows are
// deduplicated by ID during transformation.
type AlbumRecord struct {
	ID          string
	Name        string
	ReleaseDate string // as received: full or partial precision (2021-03-05, 2021-03, 2021)
	TotalTracks int
	URL         string
}

// ArtistRecord is one artist row. A track with several artists produces one
// candidate record per artist.
type ArtistRecord struct {
	ID   string
	Name string
	URL  string
}

// SongRecord is one track row with its playlist-membership timestamp and
// foreign keys into the album and artist record sets.
//
// ArtistID is taken from the first artist on the embedded album, not the
// track's own artist list. It is empty when the album lists no artists.
type SongRecord struct {
	ID         string
	Name       string
	AddedAt    string // ISO-8601, as received
	DurationMS int
	Popularity int
	URL        string
	AlbumID    string
	ArtistID   string
}
