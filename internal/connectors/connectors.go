// package connectors manages live connections to external backends (MySQL, S3)
//
// Each backend kind gets at most one live connector per process. The
// [Registry] enforces this: registering a second connector for a kind fails
// with [shared.ErrConnectorLive], and callers reuse the existing instance via
// [Registry.Get]. Connectors are plain injected dependencies, not hidden
// globals.
package connectors

import (
	"fmt"
	"sync"

	"github.com/dmwalker/trackpipe/internal/shared"
)

// Kind identifies a backend category.
type Kind string

const (
	KindDatabase Kind = "database"
	KindStorage  Kind = "storage"
)

// Connector is a live connection to an external backend.
type Connector interface {
	Kind() Kind
	Close() error
}

// Registry tracks live connectors by backend kind.
type Registry struct {
	mu   sync.Mutex
	live map[Kind]Connector
}

// NewRegistry creates an empty connector registry.
func NewRegistry() *Registry {
	return &Registry{live: make(map[Kind]Connector)}
}

// Register records c as the live connector for its kind.
// Fails with [shared.ErrConnectorLive] if one is already registered.
func (r *Registry) Register(c Connector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.live[c.Kind()]; ok && existing != nil {
		return fmt.Errorf("%w: %s", shared.ErrConnectorLive, c.Kind())
	}

	r.live[c.Kind()] = c
	return nil
}

// Get returns the live connector for the given kind, if any.
func (r *Registry) Get(kind Kind) (Connector, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.live[kind]
	return c, ok && c != nil
}

// CloseAll closes every live connector and clears the registry.
// Returns the first close error encountered.
func (r *Registry) CloseAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for kind, c := range r.live {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close %s connector: %w", kind, err)
		}
		delete(r.live, kind)
	}
	return firstErr
}
