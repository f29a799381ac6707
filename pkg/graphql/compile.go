package graphql

import (
	"fmt"
	"strings"
)

// indentStep is the number of spaces one nesting level adds.
const indentStep = 2

// indent returns the leading spaces of this field's own line.
func (f *Field) indent() int {
	if f.parent == nil {
		return indentStep
	}

	return f.parent.childIndent() + indentStep
}

// childIndent returns the base indentation of this field's children. Edge
// fields push children two extra levels for the edges and node wrappers.
func (f *Field) childIndent() int {
	if f.kind == edgeField {
		return f.indent() + 2*indentStep
	}

	return f.indent()
}

// render appends this field's compiled lines. A field without children
// renders as a bare filtered name; a field with children wraps them in
// braces.
func (f *Field) render(lines []string) ([]string, error) {
	if f.kind == edgeField {
		return f.renderEdges(lines)
	}

	clause, err := f.filterClause()
	if err != nil {
		return nil, err
	}

	pad := strings.Repeat(" ", f.indent())
	header := pad + f.name + clause

	if len(f.children) == 0 {
		return append(lines, header), nil
	}

	lines = append(lines, header+" {")

	for _, child := range f.children {
		lines, err = child.render(lines)
		if err != nil {
			return nil, err
		}
	}

	return append(lines, pad+"}"), nil
}

// renderEdges compiles the relay connection form of an edge field:
//
//	name(<filters, first/last, after>) {
//	  edges {
//	    <edge children>
//	    node { <children> }
//	    cursor
//	  }
//	  pageInfo { endCursor hasNextPage }
//	}
//
// The per-node cursor is requested only when a nested edge exists, because
// only replayed pages need to re-identify rows.
func (f *Field) renderEdges(lines []string) ([]string, error) {
	if len(f.children) == 0 && len(f.edgeChildren) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingEdgeFields, f.Path())
	}

	clause, err := f.filterClause()
	if err != nil {
		return nil, err
	}

	pad := strings.Repeat(" ", f.indent())
	edgesPad := pad + strings.Repeat(" ", indentStep)
	nodePad := edgesPad + strings.Repeat(" ", indentStep)

	lines = append(lines, pad+f.name+clause+" {")
	lines = append(lines, edgesPad+"edges {")

	for _, child := range f.edgeChildren {
		lines, err = child.render(lines)
		if err != nil {
			return nil, err
		}
	}

	if len(f.children) > 0 {
		lines = append(lines, nodePad+"node {")

		for _, child := range f.children {
			lines, err = child.render(lines)
			if err != nil {
				return nil, err
			}
		}

		lines = append(lines, nodePad+"}")

		if f.childHasEdges() {
			lines = append(lines, nodePad+"cursor")
		}
	}

	lines = append(lines, edgesPad+"}")
	lines = append(lines, edgesPad+"pageInfo {")
	lines = append(lines, nodePad+"endCursor")
	lines = append(lines, nodePad+"hasNextPage")
	lines = append(lines, edgesPad+"}")
	lines = append(lines, pad+"}")

	return lines, nil
}

// filterClause renders "(k1: v1, k2: v2)" from the compiled filters. An
// empty clause renders as nothing.
func (f *Field) filterClause() (string, error) {
	filters := f.compiledFilters()
	if len(filters) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(filters))

	for _, filter := range filters {
		text, ok, err := serializeFilterValue(filter.value)
		if err != nil {
			return "", fmt.Errorf("filter %q on %s: %w", filter.key, f.Path(), err)
		}

		if !ok {
			continue
		}

		parts = append(parts, filter.key+": "+text)
	}

	if len(parts) == 0 {
		return "", nil
	}

	return "(" + strings.Join(parts, ", ") + ")", nil
}

// compiledFilters returns the user filters plus the pagination arguments an
// edge field contributes: first (or last when paging descending) carrying
// the default page size clamped to the remaining limit budget, and after
// once a cursor is held.
func (f *Field) compiledFilters() []filterEntry {
	if f.kind != edgeField {
		return f.filters
	}

	filters := make([]filterEntry, 0, len(f.filters)+2)
	filters = append(filters, f.filters...)

	limitKey := "first"
	if f.effectiveOrder() == SortDescending {
		limitKey = "last"
	}

	amount := defaultPageSize
	if f.limit > 0 {
		if total := f.fetched + amount; total > f.limit {
			amount = f.limit - f.fetched
		}
	}

	filters = append(filters, filterEntry{key: limitKey, value: amount})

	if f.cursor != "" {
		filters = append(filters, filterEntry{key: "after", value: f.cursor})
	}

	return filters
}
