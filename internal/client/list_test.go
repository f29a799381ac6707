package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

func TestRowsAt(t *testing.T) {
	t.Parallel()

	output := map[string]any{
		"project": map[string]any{
			"folders": []any{
				map[string]any{"id": "f1"},
				"not a row",
				map[string]any{"id": "f2"},
			},
		},
	}

	rows := rowsAt(output, "project", "folders")
	require.Len(t, rows, 2)
	assert.Equal(t, "f1", rows[0]["id"])
	assert.Equal(t, "f2", rows[1]["id"])

	assert.Nil(t, rowsAt(output, "project", "tasks"))
	assert.Nil(t, rowsAt(output, "missing", "folders"))
}

func TestDecodeRow(t *testing.T) {
	t.Parallel()

	row := map[string]any{
		"id":        "f1",
		"name":      "hero",
		"active":    true,
		"someExtra": "ignored",
	}

	folder, err := decodeRow[slate.Folder](row)
	require.NoError(t, err)
	assert.Equal(t, "f1", folder.ID)
	assert.Equal(t, "hero", folder.Name)
	assert.True(t, folder.Active)
}

func TestMatchesActive(t *testing.T) {
	t.Parallel()

	row := map[string]any{"active": true}

	assert.True(t, matchesActive(row, nil))
	assert.True(t, matchesActive(row, slate.Bool(true)))
	assert.False(t, matchesActive(row, slate.Bool(false)))
	assert.False(t, matchesActive(map[string]any{}, slate.Bool(true)))
}

func TestWithField(t *testing.T) {
	t.Parallel()

	fields := []string{"id", "name"}

	extended := withField(fields, "active")
	assert.Equal(t, []string{"id", "name", "active"}, extended)
	assert.Equal(t, []string{"id", "name"}, fields)

	assert.Equal(t, fields, withField(fields, "name"))
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"b", "a", "c"}, dedupe([]string{"b", "a", "b", "c", "a"}))
	assert.Empty(t, dedupe(nil))
}

func TestPrepareListFilters(t *testing.T) {
	t.Parallel()

	t.Run("nil slices stay unset", func(t *testing.T) {
		t.Parallel()

		filters := map[string]any{}
		matchable := prepareListFilters(filters,
			listFilter{"folderIds", nil},
			listFilter{"folderNames", []string{"hero", "hero"}},
		)
		assert.True(t, matchable)
		assert.NotContains(t, filters, "folderIds")
		assert.Equal(t, []string{"hero"}, filters["folderNames"])
	})

	t.Run("empty slice can never match", func(t *testing.T) {
		t.Parallel()

		filters := map[string]any{}
		matchable := prepareListFilters(filters,
			listFilter{"folderIds", []string{}},
		)
		assert.False(t, matchable)
	})
}
