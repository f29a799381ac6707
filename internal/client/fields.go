package client

import (
	"sort"
	"strings"

	"github.com/fivetwenty-io/slate-client/pkg/graphql"
)

// fieldTree is a nested field selection parsed from dotted paths. A nil
// child marks a leaf.
type fieldTree map[string]fieldTree

// fieldsToTree expands dotted field paths such as "attrib.fps" into a
// nested selection tree.
func fieldsToTree(fields []string) fieldTree {
	tree := make(fieldTree)
	for _, field := range fields {
		tree.add(field)
	}

	return tree
}

// add inserts one dotted path. A path below an existing leaf is subsumed
// by the leaf; a leaf added over an existing subtree replaces it.
func (t fieldTree) add(path string) {
	parts := strings.Split(path, ".")
	node := t

	for _, part := range parts[:len(parts)-1] {
		child, ok := node[part]
		if ok && child == nil {
			return
		}

		if !ok {
			child = make(fieldTree)
			node[part] = child
		}

		node = child
	}

	node[parts[len(parts)-1]] = nil
}

// keys returns the selection keys sorted, keeping compiled documents
// deterministic.
func (t fieldTree) keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// apply adds the tree's selection under parent.
func (t fieldTree) apply(parent *graphql.Field) {
	for _, key := range t.keys() {
		child := parent.AddField(key)
		if t[key] != nil {
			t[key].apply(child)
		}
	}
}
