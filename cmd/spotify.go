package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// SpotifyTracks fetches one page of a playlist's track listing and prints the
// raw response as JSON. Useful for inspecting the source document shape.
func (r *Runner) SpotifyTracks(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)

	catalog, err := r.catalogService(config)
	if err != nil {
		return err
	}

	page, err := catalog.PlaylistTracks(ctx, cmd.String("id"))
	if err != nil {
		return fmt.Errorf("failed to fetch playlist tracks: %w", err)
	}

	return r.writeJSON(page, cmd.Bool("pretty"))
}
