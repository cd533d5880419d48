package main

import (
	"context"
	"fmt"

	"github.com/dmwalker/trackpipe/internal/connectors"
	"github.com/dmwalker/trackpipe/internal/services"
	"github.com/dmwalker/trackpipe/internal/shared"
	"github.com/dmwalker/trackpipe/internal/sinks"
	"github.com/dmwalker/trackpipe/internal/tasks"
	"github.com/urfave/cli/v3"
)

// RunPipeline executes the full ETL run for one playlist: fetch, extract,
// transform, and write to the sink selected by --mode.
func (r *Runner) RunPipeline(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)

	playlistID := cmd.String("playlist-id")
	if playlistID == "" {
		playlistID = config.Pipeline.PlaylistID
	}
	if playlistID == "" {
		return fmt.Errorf("%w: playlist id (set --playlist-id or pipeline.playlist_id)", shared.ErrMissingArgument)
	}

	mode := cmd.String("mode")
	if mode == "" {
		mode = config.Pipeline.Mode
	}

	catalog, err := r.catalogService(config)
	if err != nil {
		return err
	}

	local := r.localSink
	if local == nil {
		outputDir := cmd.String("output")
		if outputDir == "" {
			outputDir = config.Pipeline.OutputDir
		}
		local = sinks.NewLocalSink(outputDir, playlistID, r.logger)
	}

	cloud := r.cloudSink
	if cloud == nil && mode == tasks.ModeS3 {
		bucket := cmd.String("bucket")
		if bucket == "" {
			bucket = config.Pipeline.Bucket
		}

		store, err := r.storageConnector(ctx, config)
		if err != nil {
			return err
		}
		cloud = sinks.NewS3Sink(store, bucket, config.Pipeline.KeyPrefix, r.logger)
	}

	engine := tasks.NewEngine(catalog, local, cloud, r.logger)

	progress := make(chan tasks.ProgressUpdate, 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.logger.Info(update.Message, "phase", update.Phase.String())
		}
	}()

	result, runErr := engine.Run(ctx, progress, playlistID, mode)
	close(progress)
	<-done

	if runErr != nil {
		return fmt.Errorf("pipeline run failed: %w", runErr)
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, true)
	}

	r.writePlain("Run %s complete (%s mode)\n", result.RunID, result.Mode)
	r.writePlain("Items: %d fetched, %d skipped\n", result.ItemCount, result.SkippedItems)
	for _, entity := range sinks.Entities {
		r.writePlain("%-8s %4d raw, %4d written -> %s\n",
			entity, result.RawCounts[entity], result.RowCounts[entity], result.Locations[entity])
	}
	return nil
}

// catalogService returns the injected catalog client or builds one from config.
func (r *Runner) catalogService(config *shared.Config) (services.CatalogService, error) {
	if r.catalog != nil {
		return r.catalog, nil
	}

	svc, err := services.NewSpotifyService(config.Credentials.Spotify.Map())
	if err != nil {
		return nil, fmt.Errorf("failed to create Spotify service: %w", err)
	}
	r.catalog = svc
	return svc, nil
}

// storageConnector returns the registered storage connector, or connects and
// registers a new one. The registry guarantees at most one live instance.
func (r *Runner) storageConnector(ctx context.Context, config *shared.Config) (*connectors.S3Connector, error) {
	if existing, ok := r.registry.Get(connectors.KindStorage); ok {
		if conn, ok := existing.(*connectors.S3Connector); ok {
			return conn, nil
		}
	}

	conn, err := connectors.NewS3Connector(ctx, config.Credentials.AWS)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to S3: %w", err)
	}
	if err := r.registry.Register(conn); err != nil {
		return nil, err
	}
	return conn, nil
}
