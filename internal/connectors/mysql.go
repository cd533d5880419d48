package connectors

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmwalker/trackpipe/internal/shared"
	_ "github.com/go-sql-driver/mysql"
)

// MySQLConnector wraps a [database/sql] handle to the MySQL backend.
//
// The pipeline itself never reads or writes the database; the connector exists
// for connectivity checks and later warehouse loads.
type MySQLConnector struct {
	db *sql.DB
}

// NewMySQLConnector opens a connection to MySQL using the given settings and
// verifies it with a ping. Returns an error wrapping
// [shared.ErrConnectFailed] if the server is unreachable or rejects the
// credentials.
func NewMySQLConnector(cfg shared.DatabaseConfig) (*MySQLConnector, error) {
	if cfg.User == "" || cfg.Host == "" {
		return nil, fmt.Errorf("%w: database host and user", shared.ErrMissingCredentials)
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", shared.ErrConnectFailed, err)
	}

	return &MySQLConnector{db: db}, nil
}

func (c *MySQLConnector) Kind() Kind { return KindDatabase }

// IsConnected reports whether the backend still answers a ping.
func (c *MySQLConnector) IsConnected(ctx context.Context) bool {
	return c.db.PingContext(ctx) == nil
}

// DB exposes the underlying handle for future load stages.
func (c *MySQLConnector) DB() *sql.DB {
	return c.db
}

// Close closes the database connection.
func (c *MySQLConnector) Close() error {
	return c.db.Close()
}
