package graphql

import "fmt"

// mergeProgress re-identifies merged edge rows across paging replays. The
// index is keyed by edge field path, then by the edge's own cursor, and
// lives for exactly one execution.
type mergeProgress struct {
	nodesByCursor map[string]map[string]map[string]any
}

func newMergeProgress() *mergeProgress {
	return &mergeProgress{
		nodesByCursor: make(map[string]map[string]map[string]any),
	}
}

// nodes returns the cursor index of one edge field, creating it on first
// use.
func (p *mergeProgress) nodes(path string) map[string]map[string]any {
	nodes, ok := p.nodesByCursor[path]
	if !ok {
		nodes = make(map[string]map[string]any)
		p.nodesByCursor[path] = nodes
	}

	return nodes
}

// parse merges this field's slice of a response document into output.
// Accumulator values are plain nested maps and []any lists so the merged
// result round-trips through encoding/json unchanged.
func (f *Field) parse(data, output map[string]any, progress *mergeProgress) error {
	if f.kind == edgeField {
		return f.parseEdges(data, output, progress)
	}

	f.needQuery = false

	value, present := data[f.name]
	if value == nil {
		f.resolveChildren()

		if present {
			output[f.name] = nil
		}

		return nil
	}

	if len(f.children) == 0 {
		output[f.name] = value

		return nil
	}

	switch typed := value.(type) {
	case map[string]any:
		return f.parseObject(typed, output, progress)
	case []any:
		return f.parseList(typed, output, progress)
	default:
		return &ShapeError{Path: f.Path(), Expected: "object or list", Actual: value}
	}
}

// parseObject merges an object value by recursing children against the
// accumulator map stored under this field's name.
func (f *Field) parseObject(value, output map[string]any, progress *mergeProgress) error {
	var target map[string]any

	if existing := output[f.name]; existing == nil {
		target = make(map[string]any)
		output[f.name] = target
	} else {
		var ok bool

		target, ok = existing.(map[string]any)
		if !ok {
			return &ShapeError{Path: f.Path(), Expected: "object accumulator", Actual: existing}
		}
	}

	for _, child := range f.children {
		if err := child.parse(value, target, progress); err != nil {
			return err
		}
	}

	return nil
}

// parseList merges an array value index by index. The accumulator list only
// grows: a later merge with more elements appends empty records, a later
// merge with fewer elements leaves the tail untouched.
func (f *Field) parseList(value []any, output map[string]any, progress *mergeProgress) error {
	var items []any

	if existing := output[f.name]; existing != nil {
		var ok bool

		items, ok = existing.([]any)
		if !ok {
			return &ShapeError{Path: f.Path(), Expected: "list accumulator", Actual: existing}
		}
	} else {
		items = make([]any, 0, len(value))
	}

	if len(value) == 0 {
		output[f.name] = items
		f.resolveChildren()

		return nil
	}

	for len(items) < len(value) {
		items = append(items, make(map[string]any))
	}

	output[f.name] = items

	for idx, raw := range value {
		item, ok := raw.(map[string]any)
		if !ok {
			return &ShapeError{Path: fmt.Sprintf("%s[%d]", f.Path(), idx), Expected: "object", Actual: raw}
		}

		target, ok := items[idx].(map[string]any)
		if !ok {
			return &ShapeError{Path: fmt.Sprintf("%s[%d]", f.Path(), idx), Expected: "object accumulator", Actual: items[idx]}
		}

		for _, child := range f.children {
			if err := child.parse(item, target, progress); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEdges merges one page of a relay connection. Node children merge
// from each edge's node object, edge children from the edge object itself.
// When a descendant edge exists, rows are identified by edge cursor through
// progress so a replayed outer page never appends duplicates.
func (f *Field) parseEdges(data, output map[string]any, progress *mergeProgress) error {
	value := data[f.name]
	if value == nil {
		f.resolve()

		return nil
	}

	connection, ok := value.(map[string]any)
	if !ok {
		return &ShapeError{Path: f.Path(), Expected: "connection object", Actual: value}
	}

	var nodes []any

	if existing := output[f.name]; existing != nil {
		nodes, ok = existing.([]any)
		if !ok {
			return &ShapeError{Path: f.Path(), Expected: "list accumulator", Actual: existing}
		}
	} else {
		nodes = make([]any, 0)
	}

	handleCursors := f.childHasEdges()

	var nodesByCursor map[string]map[string]any
	if handleCursors {
		nodesByCursor = progress.nodes(f.Path())
	}

	pageInfo, ok := connection["pageInfo"].(map[string]any)
	if !ok {
		return &ShapeError{Path: f.Path(), Expected: "pageInfo object", Actual: connection["pageInfo"]}
	}

	newCursor, _ := pageInfo["endCursor"].(string)

	hasNext, ok := pageInfo["hasNextPage"].(bool)
	if !ok {
		return &ShapeError{Path: f.Path(), Expected: "boolean hasNextPage", Actual: pageInfo["hasNextPage"]}
	}

	f.needQuery = hasNext

	rawEdges, ok := connection["edges"].([]any)
	if !ok {
		return &ShapeError{Path: f.Path(), Expected: "edges list", Actual: connection["edges"]}
	}

	if len(rawEdges) == 0 {
		f.resolveChildren()
	}

	f.fetched += len(rawEdges)
	if f.limit > 0 && f.fetched >= f.limit {
		f.needQuery = false
	}

	for idx, rawEdge := range rawEdges {
		edge, ok := rawEdge.(map[string]any)
		if !ok {
			return &ShapeError{Path: fmt.Sprintf("%s[%d]", f.Path(), idx), Expected: "edge object", Actual: rawEdge}
		}

		var record map[string]any

		if handleCursors {
			edgeCursor, ok := edge["cursor"].(string)
			if !ok {
				return &ShapeError{Path: fmt.Sprintf("%s[%d]", f.Path(), idx), Expected: "edge cursor", Actual: edge["cursor"]}
			}

			record = nodesByCursor[edgeCursor]
			if record == nil {
				record = make(map[string]any)
				nodesByCursor[edgeCursor] = record
				nodes = append(nodes, record)
			}
		} else {
			record = make(map[string]any)
			nodes = append(nodes, record)
		}

		for _, child := range f.edgeChildren {
			if err := child.parse(edge, record, progress); err != nil {
				return err
			}
		}

		if len(f.children) > 0 {
			node, ok := edge["node"].(map[string]any)
			if !ok {
				return &ShapeError{Path: fmt.Sprintf("%s[%d]", f.Path(), idx), Expected: "node object", Actual: edge["node"]}
			}

			for _, child := range f.children {
				if err := child.parse(node, record, progress); err != nil {
					return err
				}
			}
		}
	}

	output[f.name] = nodes

	if !f.needQuery {
		return nil
	}

	// Hold this page while any descendant still has inner pages. The next
	// round trip replays the same outer page and the cursor index above
	// keeps its rows from duplicating.
	for _, child := range f.allChildren() {
		if child.NeedsFetch() {
			return nil
		}
	}

	for _, child := range f.allChildren() {
		child.resetCursor()
	}

	f.cursor = newCursor

	return nil
}
