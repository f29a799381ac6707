package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

func TestTasksClient_Get(t *testing.T) {
	t.Parallel()

	server := newGraphQLServer(t, `{"data": {"project": {"tasks": {
		"edges": [
			{"node": {"id": "t1", "name": "modeling", "taskType": "Modeling", "folderId": "f1", "assignees": ["jane"]}}
		],
		"pageInfo": {"endCursor": "c1", "hasNextPage": false}
	}}}}`)
	client := NewTestClient(server.URL)

	task, err := client.Tasks().Get(context.Background(), "demo", "t1")
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, "t1", task.ID)
	assert.Equal(t, "modeling", task.Name)
	assert.Equal(t, []string{"jane"}, task.Assignees)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, []any{"t1"}, requests[0].Variables["taskIds"])
}

func TestTasksClient_List_Filters(t *testing.T) {
	t.Parallel()

	server := newGraphQLServer(t, `{"data": {"project": {"tasks": {
		"edges": [
			{"node": {"id": "t1", "name": "modeling"}}
		],
		"pageInfo": {"endCursor": "c1", "hasNextPage": false}
	}}}}`)
	client := NewTestClient(server.URL)

	tasks, err := client.Tasks().List(context.Background(), "demo", &slate.TaskListOptions{
		FolderIDs:    []string{"f1"},
		AssigneesAny: []string{"jane", "sam"},
		TaskTypes:    []string{"Modeling"},
	})
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	requests := server.Requests()
	require.Len(t, requests, 1)

	variables := requests[0].Variables
	assert.Equal(t, []any{"f1"}, variables["folderIds"])
	assert.Equal(t, []any{"jane", "sam"}, variables["taskAssigneesAny"])
	assert.Equal(t, []any{"Modeling"}, variables["taskTypes"])
	assert.NotContains(t, variables, "taskAssigneesAll")
}

func TestTasksClient_ListByFolderPaths(t *testing.T) {
	t.Parallel()

	server := newGraphQLServer(t, `{"data": {"project": {"folders": {
		"edges": [
			{
				"cursor": "fc1",
				"node": {
					"path": "/assets/hero",
					"tasks": {
						"edges": [
							{"node": {"id": "t1", "name": "modeling"}},
							{"node": {"id": "t2", "name": "rigging"}}
						],
						"pageInfo": {"endCursor": "tc2", "hasNextPage": false}
					}
				}
			},
			{
				"cursor": "fc2",
				"node": {
					"path": "/assets/env",
					"tasks": {
						"edges": [],
						"pageInfo": {"endCursor": null, "hasNextPage": false}
					}
				}
			}
		],
		"pageInfo": {"endCursor": "fc2", "hasNextPage": false}
	}}}}`)
	client := NewTestClient(server.URL)

	paths := []string{"/assets/hero", "/assets/env", "/assets/hero"}

	tasks, err := client.Tasks().ListByFolderPaths(context.Background(), "demo", paths, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	require.Len(t, tasks["/assets/hero"], 2)
	assert.Equal(t, "modeling", tasks["/assets/hero"][0].Name)
	assert.Equal(t, "rigging", tasks["/assets/hero"][1].Name)

	// Folders without matching tasks keep their key.
	require.Contains(t, tasks, "/assets/env")
	assert.Empty(t, tasks["/assets/env"])

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, []any{"/assets/hero", "/assets/env"}, requests[0].Variables["folderPaths"])
}

func TestTasksClient_ListByFolderPaths_NoPaths(t *testing.T) {
	t.Parallel()

	server := newGraphQLServer(t)
	client := NewTestClient(server.URL)

	tasks, err := client.Tasks().ListByFolderPaths(context.Background(), "demo", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Empty(t, server.Requests())
}

func TestTasksClient_ListByFolderPaths_EmptyFilterShortCircuits(t *testing.T) {
	t.Parallel()

	server := newGraphQLServer(t)
	client := NewTestClient(server.URL)

	tasks, err := client.Tasks().ListByFolderPaths(context.Background(), "demo", []string{"/assets/hero"}, &slate.TaskListOptions{
		Names: []string{},
	})
	require.NoError(t, err)

	// Requested paths are still keyed so callers can range over them.
	require.Contains(t, tasks, "/assets/hero")
	assert.Empty(t, tasks["/assets/hero"])
	assert.Empty(t, server.Requests())
}
