package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/slate-client/pkg/graphql"
)

// decodeRow converts one merged node record into a typed entity by round
// tripping it through JSON. Entity types carry the json tags matching the
// server's field names, so this is the same decode path a direct response
// would take.
func decodeRow[T any](row map[string]any) (T, error) {
	var entity T

	raw, err := json.Marshal(row)
	if err != nil {
		return entity, fmt.Errorf("encoding row: %w", err)
	}

	err = json.Unmarshal(raw, &entity)
	if err != nil {
		return entity, fmt.Errorf("decoding row: %w", err)
	}

	return entity, nil
}

// rowsAt walks the parsed output down the given key path and returns the
// node records found there. Missing keys and null values yield no rows.
func rowsAt(output map[string]any, path ...string) []map[string]any {
	current := any(output)

	for _, key := range path {
		container, ok := current.(map[string]any)
		if !ok {
			return nil
		}

		current = container[key]
	}

	items, ok := current.([]any)
	if !ok {
		return nil
	}

	rows := make([]map[string]any, 0, len(items))

	for _, item := range items {
		if row, ok := item.(map[string]any); ok {
			rows = append(rows, row)
		}
	}

	return rows
}

// matchesActive reports whether a row passes the active filter. A nil
// filter matches everything.
func matchesActive(row map[string]any, active *bool) bool {
	if active == nil {
		return true
	}

	rowActive, ok := row["active"].(bool)

	return ok && rowActive == *active
}

// listEntities drains a paginated query and decodes the node records found
// at the given path into typed entities. Rows failing the active filter
// are dropped after the fetch; the server has no active filter of its own
// on list queries.
func listEntities[T any](ctx context.Context, transport graphql.Transport, query *graphql.Query, active *bool, path ...string) ([]T, error) {
	entities := []T{}

	stream := query.Stream(transport)
	for stream.HasNext() {
		result, err := stream.Next(ctx)
		if err != nil {
			return nil, err
		}

		for _, row := range rowsAt(result, path...) {
			if !matchesActive(row, active) {
				continue
			}

			entity, err := decodeRow[T](row)
			if err != nil {
				return nil, err
			}

			entities = append(entities, entity)
		}
	}

	return entities, nil
}

// withField returns a copy of fields with name appended when missing.
func withField(fields []string, name string) []string {
	for _, field := range fields {
		if field == name {
			return fields
		}
	}

	out := make([]string, 0, len(fields)+1)
	out = append(out, fields...)
	out = append(out, name)

	return out
}
