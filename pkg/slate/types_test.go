package slate_test

import (
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/slate-client/pkg/slate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataMapUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected slate.DataMap
	}{
		{
			name:     "object",
			raw:      `{"fps": 25, "pipeline": {"step": "comp"}}`,
			expected: slate.DataMap{"fps": 25.0, "pipeline": map[string]any{"step": "comp"}},
		},
		{
			name:     "json encoded string",
			raw:      `"{\"fps\": 25}"`,
			expected: slate.DataMap{"fps": 25.0},
		},
		{
			name:     "empty string",
			raw:      `""`,
			expected: slate.DataMap{},
		},
		{
			name:     "null",
			raw:      `null`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var data slate.DataMap

			require.NoError(t, json.Unmarshal([]byte(tt.raw), &data))
			assert.Equal(t, tt.expected, data)
		})
	}
}

func TestDataMapUnmarshal_Invalid(t *testing.T) {
	t.Parallel()

	var data slate.DataMap

	assert.Error(t, json.Unmarshal([]byte(`42`), &data))
	assert.Error(t, json.Unmarshal([]byte(`"not json"`), &data))
}

func TestFolderDecode(t *testing.T) {
	t.Parallel()

	raw := `{
		"id": "f1",
		"name": "sh010",
		"label": "SH010",
		"folderType": "Shot",
		"path": "/seq01/sh010",
		"active": true,
		"tags": ["wip"],
		"data": "{\"frameStart\": 1001}",
		"createdAt": "2024-03-05T10:00:00+00:00"
	}`

	var folder slate.Folder

	require.NoError(t, json.Unmarshal([]byte(raw), &folder))
	assert.Equal(t, "sh010", folder.Name)
	assert.Equal(t, "Shot", folder.FolderType)
	assert.Equal(t, slate.DataMap{"frameStart": 1001.0}, folder.Data)
	assert.Equal(t, 2024, folder.CreatedAt.Year())
}

func TestActivityDecode(t *testing.T) {
	t.Parallel()

	raw := `{
		"activityId": "a1",
		"activityType": "comment",
		"body": "looks good",
		"author": {"name": "jane"},
		"activityData": "{\"origin\": {\"type\": \"task\"}}"
	}`

	var activity slate.Activity

	require.NoError(t, json.Unmarshal([]byte(raw), &activity))
	assert.Equal(t, "comment", activity.ActivityType)
	require.NotNil(t, activity.Author)
	assert.Equal(t, "jane", activity.Author.Name)
	assert.Contains(t, activity.Data, "origin")
}
