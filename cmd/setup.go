package main

import (
	"context"
	"fmt"

	"github.com/dmwalker/trackpipe/internal/connectors"
	"github.com/dmwalker/trackpipe/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the embedded example config to the --config path.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	r.writePlain("✓ Created %s\n", configPath)
	r.writePlain("Fill in your Spotify and AWS credentials before running the pipeline.\n")
	return nil
}

// DBPing connects to MySQL with the configured credentials, reports the
// connection state, and closes the connection.
func (r *Runner) DBPing(ctx context.Context, cmd *cli.Command) error {
	config := r.loadConfig(cmd)

	if existing, ok := r.registry.Get(connectors.KindDatabase); ok {
		if conn, ok := existing.(*connectors.MySQLConnector); ok {
			r.writePlain("✓ MySQL connection already live (connected: %t)\n", conn.IsConnected(ctx))
			return nil
		}
	}

	conn, err := connectors.NewMySQLConnector(config.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to MySQL: %w", err)
	}

	if err := r.registry.Register(conn); err != nil {
		conn.Close()
		return err
	}
	defer r.registry.CloseAll()

	r.writePlain("✓ MySQL connection successful (%s@%s:%d/%s)\n",
		config.Database.User, config.Database.Host, config.Database.Port, config.Database.Name)
	return nil
}
