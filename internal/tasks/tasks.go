// package tasks orchestrates the playlist ETL run.
//
// The core abstraction is [Engine], which sequences one single-shot run
// through five ordered stages: fetch, extract, transform, route, write.
// There is no retry loop; a stage either completes or the run is abandoned.
// Progress is emitted via a non-blocking channel for CLI/UI layers.
package tasks

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/dmwalker/trackpipe/internal/pipeline"
	"github.com/dmwalker/trackpipe/internal/services"
	"github.com/dmwalker/trackpipe/internal/shared"
	"github.com/dmwalker/trackpipe/internal/sinks"
)

// Run modes accepted by [Engine.Run]. Any value other than ModeS3 selects the
// local sink.
const (
	ModeLocal = "local"
	ModeS3    = "s3"
)

// RunResult summarizes one pipeline run.
type RunResult struct {
	RunID        string            // Unique identifier for this run
	PlaylistID   string            // Source playlist
	Mode         string            // Resolved sink mode (local or s3)
	ItemCount    int               // Items on the fetched page
	SkippedItems int               // Items with an absent or unusable track
	RawCounts    map[string]int    // Records per entity before dedup
	RowCounts    map[string]int    // Rows per entity after transformation
	Locations    map[string]string // Entity name to written artifact location
}

// Engine executes the five-stage pipeline for one playlist.
// All dependencies are injected; the engine holds no state across runs.
type Engine struct {
	catalog services.CatalogService
	local   sinks.Sink
	cloud   sinks.Sink
	logger  *log.Logger
}

// NewEngine creates an Engine with the provided catalog service and sinks.
// Either sink may be nil if its mode is never requested.
func NewEngine(catalog services.CatalogService, local, cloud sinks.Sink, logger *log.Logger) *Engine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Engine{catalog: catalog, local: local, cloud: cloud, logger: logger}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *Engine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Run executes a single-shot ETL for one playlist. mode "s3" routes output to
// the cloud sink; any other value routes to the local sink.
//
// Connectivity and sink failures abort the run. Individual unusable items
// degrade only their own contribution and are reported via
// [RunResult.SkippedItems].
func (e *Engine) Run(ctx context.Context, progress chan<- ProgressUpdate, playlistID, mode string) (*RunResult, error) {
	if e.catalog == nil {
		return nil, fmt.Errorf("%w: catalog service not initialized", shared.ErrServiceUnavailable)
	}
	if playlistID == "" {
		return nil, fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}
	if mode != ModeS3 {
		mode = ModeLocal
	}

	result := &RunResult{
		RunID:      shared.GenerateID(),
		PlaylistID: playlistID,
		Mode:       mode,
	}
	logger := shared.WithLogger(e.logger, "run_id", result.RunID, "playlist_id", playlistID)

	e.sendProgress(progress, fetchUpdate(playlistID))
	page, err := e.catalog.PlaylistTracks(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch playlist tracks: %w", err)
	}
	result.ItemCount = len(page.Items)
	logger.Info("fetched playlist page", "items", result.ItemCount, "total", page.Total)

	e.sendProgress(progress, extractUpdate())
	extractor := pipeline.NewExtractor(page)
	albums, skipped := extractor.Albums()
	artists, _ := extractor.Artists()
	songs, _ := extractor.Songs()
	result.SkippedItems = skipped
	result.RawCounts = map[string]int{
		"albums":  len(albums),
		"artists": len(artists),
		"songs":   len(songs),
	}
	if skipped > 0 {
		logger.Warn("skipped items without a usable track", "skipped", skipped)
	}
	logger.Info("extracted raw records",
		"albums", len(albums), "artists", len(artists), "songs", len(songs))

	e.sendProgress(progress, transformUpdate())
	tables := map[string]*pipeline.Table{
		"albums":  pipeline.AlbumTable(albums),
		"artists": pipeline.ArtistTable(artists),
		"songs":   pipeline.SongTable(songs),
	}
	result.RowCounts = make(map[string]int, len(tables))
	for entity, table := range tables {
		result.RowCounts[entity] = table.Len()
	}
	logger.Info("transformed record sets",
		"albums", result.RowCounts["albums"],
		"artists", result.RowCounts["artists"],
		"songs", result.RowCounts["songs"])

	e.sendProgress(progress, routeUpdate(mode))
	sink := e.local
	if mode == ModeS3 {
		sink = e.cloud
	}
	if sink == nil {
		return nil, fmt.Errorf("%w: %s sink not initialized", shared.ErrServiceUnavailable, mode)
	}

	e.sendProgress(progress, writeUpdate())
	locations, err := sink.WriteAll(ctx, tables)
	result.Locations = locations
	if err != nil {
		return result, fmt.Errorf("write failed: %w", err)
	}

	e.sendProgress(progress, doneUpdate())
	return result, nil
}
