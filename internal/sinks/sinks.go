// package sinks writes tabular record sets to their destinations (local files, S3)
package sinks

import (
	"context"
	"fmt"

	"github.com/dmwalker/trackpipe/internal/pipeline"
	"github.com/dmwalker/trackpipe/internal/shared"
)

// Entities lists the record set names in write order.
var Entities = []string{"albums", "artists", "songs"}

// Sink writes one entity's table to a destination.
//
// Write returns a location identifier for the written artifact (a file path or
// an s3:// URI). A nil or empty table is a precondition failure reported as
// [shared.ErrEmptyRecordSet]; nothing is written.
type Sink interface {
	Write(ctx context.Context, entity string, table *pipeline.Table) (string, error)

	// WriteAll writes the albums, artists, and songs tables in order,
	// surfacing the first failure immediately. Writes are not atomic across
	// entities. Returns entity name to location for the completed writes.
	WriteAll(ctx context.Context, tables map[string]*pipeline.Table) (map[string]string, error)
}

// checkTable enforces the non-empty precondition shared by every sink.
func checkTable(entity string, table *pipeline.Table) error {
	if table == nil || table.Empty() {
		return fmt.Errorf("%w: %s", shared.ErrEmptyRecordSet, entity)
	}
	return nil
}

// writeAll runs s.Write for each entity in [Entities] order, failing fast.
func writeAll(ctx context.Context, s Sink, tables map[string]*pipeline.Table) (map[string]string, error) {
	locations := make(map[string]string, len(Entities))
	for _, entity := range Entities {
		location, err := s.Write(ctx, entity, tables[entity])
		if err != nil {
			return locations, err
		}
		locations[entity] = location
	}
	return locations, nil
}
