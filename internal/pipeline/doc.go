// Package pipeline implements the extraction and transformation stages of the
// playlist ETL.
//
// # Extraction
//
// [Extractor] projects one fetched page of playlist-track data into three flat
// record slices (albums, artists, songs). Extraction is a pure structural
// projection: no deduplication, no type coercion. Each method walks the page
// independently and may be called on its own.
//
// Items whose track is absent are skipped everywhere; the number of skipped
// items is returned alongside the records so callers can observe extraction
// health. A malformed item degrades only its own contribution.
//
// # Transformation
//
// [AlbumTable], [ArtistTable], and [SongTable] convert raw record slices into
// a [Table]: rows are deduplicated by ID keeping the first occurrence in input
// order, and date fields are coerced leniently (an unparseable value becomes
// an empty cell, never an error). An empty input produces an empty Table;
// sinks reject empty tables at write time.
//
// Once a Table is handed to a sink it is treated as immutable.
package pipeline
