package graphql

// fieldKind discriminates plain object fields from relay connection fields.
type fieldKind int

const (
	plainField fieldKind = iota
	edgeField
)

// defaultPageSize is the number of nodes an edge field requests per round
// trip when no limit clamps it.
const defaultPageSize = 300

// Field is one node in a query tree: either a plain field or a relay
// connection ("edge field"). Fields are created through the AddField,
// AddFieldWithEdges and AddEdgeField methods and belong to exactly one
// query for its single execution.
type Field struct {
	name    string
	kind    fieldKind
	parent  *Field
	query   *Query
	filters []filterEntry

	// children render under "node" for edge fields. edgeChildren render
	// directly under "edges" and hold per-edge data such as link payloads.
	children     []*Field
	edgeChildren []*Field

	// needQuery starts true and clears the first time the field is observed
	// in a response, even when the observed value is null or empty.
	needQuery bool

	// pagination state, meaningful for edge fields only
	cursor   string
	limit    int
	fetched  int
	order    SortOrder
	orderSet bool
}

// filterEntry keeps filters in insertion order so compiles stay
// deterministic.
type filterEntry struct {
	key   string
	value any
}

func newField(name string, kind fieldKind, parent *Field, query *Query) *Field {
	return &Field{
		name:      name,
		kind:      kind,
		parent:    parent,
		query:     query,
		needQuery: true,
	}
}

// Name returns the field name as rendered in the query text.
func (f *Field) Name() string {
	return f.name
}

// HasEdges reports whether this field is a relay connection.
func (f *Field) HasEdges() bool {
	return f.kind == edgeField
}

// Path returns the "/"-joined field path from the query root, e.g.
// "project/folders/tasks". Used in error messages and progress tracking.
func (f *Field) Path() string {
	if f.parent == nil {
		return f.name
	}

	return f.parent.Path() + "/" + f.name
}

// AddField adds a plain child field. For edge fields the child renders
// under "node" and merges from each node object.
func (f *Field) AddField(name string) *Field {
	child := newField(name, plainField, f, f.query)
	f.children = append(f.children, child)

	return child
}

// AddFieldWithEdges adds a nested relay connection under this field.
func (f *Field) AddFieldWithEdges(name string) *Field {
	child := newField(name, edgeField, f, f.query)
	f.children = append(f.children, child)

	return child
}

// AddVariable declares a variable on the field's query. It is a
// convenience for builders that assemble a subtree without holding the
// query, e.g. when attaching filters to a nested connection.
func (f *Field) AddVariable(key, gqlType string) (*Variable, error) {
	return f.query.AddVariable(key, gqlType)
}

// AddEdgeField adds a per-edge field rendered directly under "edges",
// alongside "node". Per-edge fields carry data belonging to the relation
// itself, e.g. link payloads. It panics when called on a plain field.
func (f *Field) AddEdgeField(name string) *Field {
	if f.kind != edgeField {
		panic("graphql: AddEdgeField called on plain field " + f.Path())
	}

	child := newField(name, plainField, f, f.query)
	f.edgeChildren = append(f.edgeChildren, child)

	return child
}

// SetFilter sets a filter rendered into this field's argument clause. A
// *Variable value renders as "$key" and is dropped while the variable is
// unset. Setting an existing key replaces its value in place.
func (f *Field) SetFilter(key string, value any) {
	for i := range f.filters {
		if f.filters[i].key == key {
			f.filters[i].value = value

			return
		}
	}

	f.filters = append(f.filters, filterEntry{key: key, value: value})
}

// HasFilter reports whether a filter with the given key is set.
func (f *Field) HasFilter(key string) bool {
	for i := range f.filters {
		if f.filters[i].key == key {
			return true
		}
	}

	return false
}

// RemoveFilter removes a filter by key.
func (f *Field) RemoveFilter(key string) {
	for i := range f.filters {
		if f.filters[i].key == key {
			f.filters = append(f.filters[:i], f.filters[i+1:]...)

			return
		}
	}
}

// SetLimit caps how many nodes an edge field fetches in total across all
// pages. The final page size is clamped to the remaining budget. Zero means
// unlimited.
func (f *Field) SetLimit(limit int) {
	f.limit = limit
}

// SetOrder overrides the query-level paging direction for this edge field.
func (f *Field) SetOrder(order SortOrder) {
	f.order = order
	f.orderSet = true
}

// NeedsFetch reports whether this field or any descendant still needs a
// round trip.
func (f *Field) NeedsFetch() bool {
	if f.needQuery {
		return true
	}

	for _, child := range f.allChildren() {
		if child.NeedsFetch() {
			return true
		}
	}

	return false
}

// allChildren returns node children followed by edge children.
func (f *Field) allChildren() []*Field {
	if len(f.edgeChildren) == 0 {
		return f.children
	}

	combined := make([]*Field, 0, len(f.children)+len(f.edgeChildren))
	combined = append(combined, f.children...)
	combined = append(combined, f.edgeChildren...)

	return combined
}

// effectiveOrder resolves the field's own order when set, else the query's.
func (f *Field) effectiveOrder() SortOrder {
	if f.orderSet {
		return f.order
	}

	return f.query.order
}

// countEdgeFields counts edge fields in this subtree, short-circuiting once
// max is reached.
func (f *Field) countEdgeFields(max int) int {
	count := 0
	if f.kind == edgeField {
		count = 1
	}

	for _, child := range f.allChildren() {
		count += child.countEdgeFields(max)
		if count >= max {
			break
		}
	}

	return count
}

// childHasEdges reports whether any descendant is an edge field. Edge
// fields with nested pagination must track per-edge cursors to keep merged
// rows unique across replayed pages.
func (f *Field) childHasEdges() bool {
	for _, child := range f.allChildren() {
		if child.kind == edgeField || child.childHasEdges() {
			return true
		}
	}

	return false
}

// resetCursor rewinds this subtree so its pages are fetched again. Plain
// fields only propagate the reset; edge fields also clear their cursor and
// re-arm needQuery. Used when an outer connection holds its page while an
// inner one is replayed.
func (f *Field) resetCursor() {
	if f.kind == edgeField {
		f.cursor = ""
		f.needQuery = true
	}

	for _, child := range f.allChildren() {
		child.resetCursor()
	}
}

// resolve marks this subtree as observed without merging any data. Used
// when the response carries null or no edges for the subtree's root.
func (f *Field) resolve() {
	f.needQuery = false
	f.resolveChildren()
}

func (f *Field) resolveChildren() {
	for _, child := range f.allChildren() {
		child.resolve()
	}
}
