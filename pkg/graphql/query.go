package graphql

import (
	"context"
	"fmt"
	"strings"
)

// SortOrder controls which end of a connection an edge field pages from.
type SortOrder int

const (
	// SortAscending pages forward and requests pages with "first".
	SortAscending SortOrder = iota
	// SortDescending pages from the tail and requests pages with "last".
	SortDescending
)

// Query is the root of a field tree. It owns the variable registry and the
// top-level fields, compiles the tree to wire text, and runs the fetch loop
// that merges paginated responses into one accumulator.
//
// A Query is single use and not safe for concurrent use.
type Query struct {
	name      string
	order     SortOrder
	variables []*Variable
	varIndex  map[string]*Variable
	children  []*Field
	multiEdge *bool
}

// NewQuery creates a query root with the given operation name. Edge fields
// page in ascending order unless changed with SetOrder.
func NewQuery(name string) *Query {
	return &Query{
		name:     name,
		varIndex: make(map[string]*Variable),
	}
}

// Name returns the operation name used in the compiled header.
func (q *Query) Name() string {
	return q.name
}

// SetOrder sets the paging direction used by edge fields that carry no
// explicit order of their own.
func (q *Query) SetOrder(order SortOrder) {
	q.order = order
}

// AddVariable declares a variable with the given GraphQL type, e.g.
// "String!" or "[String!]". The returned handle can be used directly as a
// filter value. Declaring the same key twice fails with ErrDuplicateVariable.
func (q *Query) AddVariable(key, graphqlType string) (*Variable, error) {
	if _, exists := q.varIndex[key]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, key)
	}

	variable := &Variable{key: key, typ: graphqlType}
	q.variables = append(q.variables, variable)
	q.varIndex[key] = variable

	return variable, nil
}

// Variable returns the handle for a declared variable, or nil when the key
// was never declared.
func (q *Query) Variable(key string) *Variable {
	return q.varIndex[key]
}

// VariableValue returns the current value of a variable and whether the key
// is declared.
func (q *Query) VariableValue(key string) (any, bool) {
	variable, ok := q.varIndex[key]
	if !ok {
		return nil, false
	}

	return variable.value, true
}

// SetVariableValue binds a value to a declared variable. Binding nil resets
// the variable to unset. Unknown keys fail with ErrUnknownVariable.
func (q *Query) SetVariableValue(key string, value any) error {
	variable, ok := q.varIndex[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVariable, key)
	}

	variable.value = value

	return nil
}

// SetVariableValues binds several variables at once.
func (q *Query) SetVariableValues(values map[string]any) error {
	for key, value := range values {
		if err := q.SetVariableValue(key, value); err != nil {
			return err
		}
	}

	return nil
}

// VariableValues returns the variables payload for the next request: every
// declared variable whose value is set, in no particular order.
func (q *Query) VariableValues() map[string]any {
	values := make(map[string]any, len(q.variables))

	for _, variable := range q.variables {
		if variable.value != nil {
			values[variable.key] = variable.value
		}
	}

	return values
}

// AddField adds a plain top-level field.
func (q *Query) AddField(name string) *Field {
	field := newField(name, plainField, nil, q)
	q.children = append(q.children, field)

	return field
}

// AddFieldWithEdges adds a top-level relay connection field.
func (q *Query) AddFieldWithEdges(name string) *Field {
	field := newField(name, edgeField, nil, q)
	q.children = append(q.children, field)

	return field
}

// FieldByPath looks up a field by its "/"-joined path from the root, e.g.
// "project/folders/tasks". It returns nil when no field matches.
func (q *Query) FieldByPath(path string) *Field {
	children := q.children

	var found *Field

	for _, key := range strings.Split(path, "/") {
		found = nil

		for _, child := range children {
			if child.name == key {
				found = child

				break
			}
		}

		if found == nil {
			return nil
		}

		children = found.children
	}

	return found
}

// NeedsFetch reports whether any field in the tree still needs a round trip.
func (q *Query) NeedsFetch() bool {
	for _, field := range q.children {
		if field.NeedsFetch() {
			return true
		}
	}

	return false
}

// Build compiles the tree into wire-format query text. Variables without a
// value are left out of the header. A query without fields fails with
// ErrEmptyQuery.
func (q *Query) Build() (string, error) {
	if len(q.children) == 0 {
		return "", ErrEmptyQuery
	}

	declarations := make([]string, 0, len(q.variables))

	for _, variable := range q.variables {
		if variable.value == nil {
			continue
		}

		declarations = append(declarations, fmt.Sprintf("$%s: %s", variable.key, variable.typ))
	}

	header := "query " + q.name
	if len(declarations) > 0 {
		header += fmt.Sprintf("(%s)", strings.Join(declarations, ","))
	}

	lines := make([]string, 0, 16)
	lines = append(lines, header+" {")

	for _, field := range q.children {
		var err error

		lines, err = field.render(lines)
		if err != nil {
			return "", err
		}
	}

	lines = append(lines, "}")

	return strings.Join(lines, "\n"), nil
}

// Execute runs the full fetch loop: compile, round trip, merge, until no
// field needs another page. It returns the complete merged accumulator. Any
// transport failure, server error list, or shape mismatch aborts the
// execution and the partial accumulator is discarded.
func (q *Query) Execute(ctx context.Context, transport Transport) (map[string]any, error) {
	progress := newMergeProgress()
	output := make(map[string]any)

	for q.NeedsFetch() {
		if err := q.fetchPage(ctx, transport, output, progress); err != nil {
			return nil, err
		}
	}

	return output, nil
}

// Stream returns an iterator over the fetch loop. See Stream for the yield
// granularity rules.
func (q *Query) Stream(transport Transport) *Stream {
	return &Stream{
		query:     q,
		transport: transport,
		progress:  newMergeProgress(),
		multi:     q.hasMultipleEdgeFields(),
	}
}

// fetchPage performs one round trip and merges the response into output.
func (q *Query) fetchPage(ctx context.Context, transport Transport, output map[string]any, progress *mergeProgress) error {
	text, err := q.Build()
	if err != nil {
		return err
	}

	variables := q.VariableValues()

	response, err := transport.Execute(ctx, text, variables)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if response != nil && len(response.Errors) > 0 {
		return &QueryFailedError{
			Errors:    response.Errors,
			Query:     text,
			Variables: variables,
		}
	}

	if response == nil || len(response.Data) == 0 {
		return ErrEmptyResponse
	}

	return q.parse(response.Data, output, progress)
}

// parse merges one response document into output.
func (q *Query) parse(data, output map[string]any, progress *mergeProgress) error {
	if len(data) == 0 {
		return nil
	}

	for _, field := range q.children {
		if err := field.parse(data, output, progress); err != nil {
			return err
		}
	}

	return nil
}

// hasMultipleEdgeFields reports whether the tree holds more than one
// pagination dimension. Computed once and cached; trees must not gain edge
// fields after execution starts.
func (q *Query) hasMultipleEdgeFields() bool {
	if q.multiEdge == nil {
		count := 0

		for _, field := range q.children {
			count += field.countEdgeFields(2)
			if count > 1 {
				break
			}
		}

		multi := count > 1
		q.multiEdge = &multi
	}

	return *q.multiEdge
}
