package graphql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Static errors for err113 compliance.
var (
	ErrDuplicateVariable     = errors.New("variable already declared")
	ErrUnknownVariable       = errors.New("variable not declared")
	ErrEmptyQuery            = errors.New("query has no fields")
	ErrMissingEdgeFields     = errors.New("edge field has no child fields")
	ErrUnsupportedFilterType = errors.New("unsupported filter value type")
	ErrEmptyResponse         = errors.New("response contains no data")
	ErrNoMorePages           = errors.New("no more pages")
)

// ShapeError reports a response value whose shape does not match the field
// tree that produced the query. It always indicates a mismatch between the
// built tree and the server schema, so it is fatal for the execution.
type ShapeError struct {
	// Path is the "/"-joined field path from the query root.
	Path string
	// Expected names the shape the field tree requires at Path.
	Expected string
	// Actual is the offending response value.
	Actual any
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected response shape at %q: expected %s, got %T", e.Path, e.Expected, e.Actual)
}

// QueryFailedError is returned when the server answers a query with a
// non-empty error list. It carries the raw errors together with the compiled
// query text and the variables payload for diagnosis.
type QueryFailedError struct {
	Errors    gqlerror.List
	Query     string
	Variables map[string]any
}

// Error implements the error interface. Every server error is rendered with
// its message, its path when present, and its source locations when present.
func (e *QueryFailedError) Error() string {
	if len(e.Errors) == 0 {
		return "graphql query failed"
	}

	messages := make([]string, 0, len(e.Errors))

	for _, gqlErr := range e.Errors {
		msg := gqlErr.Message
		if len(gqlErr.Path) > 0 {
			msg += fmt.Sprintf(" on item %q", gqlErr.Path.String())
		}

		if len(gqlErr.Locations) > 0 {
			locations := make([]string, 0, len(gqlErr.Locations))
			for _, location := range gqlErr.Locations {
				locations = append(locations, fmt.Sprintf("line %d column %d", location.Line, location.Column))
			}

			msg += fmt.Sprintf(" (%s)", strings.Join(locations, " and "))
		}

		messages = append(messages, msg)
	}

	return "graphql query failed: " + strings.Join(messages, " | ")
}

// IsQueryFailed checks if the error is a server-reported query failure.
func IsQueryFailed(err error) bool {
	failed := &QueryFailedError{}

	return errors.As(err, &failed)
}

// IsShapeError checks if the error is a response shape mismatch.
func IsShapeError(err error) bool {
	shape := &ShapeError{}

	return errors.As(err, &shape)
}
