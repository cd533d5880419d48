// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// runCommand executes the ETL pipeline for one playlist
func runCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Fetch, flatten, and write one playlist's track data",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "playlist-id",
				Aliases: []string{"p"},
				Usage:   "Playlist ID to process (overrides config)",
			},
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Usage:   "Output mode: \"s3\" writes to the bucket, anything else writes locally",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Local output directory (overrides config)",
			},
			&cli.StringFlag{
				Name:  "bucket",
				Usage: "S3 bucket name (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the run summary as JSON",
			},
		},
		Action: r.RunPipeline,
	}
}

// setupCommand handles configuration bootstrap
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Create a config.toml from the embedded example",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupConfig,
			},
		},
	}
}

// dbCommand handles relational database operations
func dbCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "db",
		Usage: "Relational database operations",
		Commands: []*cli.Command{
			{
				Name:   "ping",
				Usage:  "Connect to MySQL with the configured credentials and report status",
				Flags:  []cli.Flag{configFlag()},
				Action: r.DBPing,
			},
		},
	}
}

// spotifyCommand handles direct catalog API calls
func spotifyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "spotify",
		Aliases: []string{"spot"},
		Usage:   "Spotify catalog operations",
		Commands: []*cli.Command{
			{
				Name:  "tracks",
				Usage: "Fetch a playlist's track page and print it as JSON",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Playlist ID to fetch",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.SpotifyTracks,
			},
		},
	}
}
