package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/slate-client/pkg/graphql"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

func TestEventsClient_Get(t *testing.T) {
	t.Parallel()

	server := newGraphQLServer(t, `{"data": {"events": {
		"edges": [
			{"node": {"id": "e1", "topic": "entity.folder.created", "project": "demo", "user": "jane", "status": "finished"}}
		],
		"pageInfo": {"endCursor": "c1", "hasNextPage": false}
	}}}`)
	client := NewTestClient(server.URL)

	event, err := client.Events().Get(context.Background(), "e1")
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "e1", event.ID)
	assert.Equal(t, "entity.folder.created", event.Topic)
	assert.Equal(t, "demo", event.Project)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, []any{"e1"}, requests[0].Variables["eventIds"])
}

func TestEventsClient_List_Filters(t *testing.T) {
	t.Parallel()

	server := newGraphQLServer(t, `{"data": {"events": {
		"edges": [
			{"node": {"id": "e1", "topic": "entity.task.status_changed"}}
		],
		"pageInfo": {"endCursor": "c1", "hasNextPage": false}
	}}}`)
	client := NewTestClient(server.URL)

	events, err := client.Events().List(context.Background(), &slate.EventListOptions{
		Topics:      []string{"entity.task.status_changed"},
		Projects:    []string{"demo"},
		IncludeLogs: true,
		NewerThan:   "2025-01-01T00:00:00+00:00",
	})
	require.NoError(t, err)
	require.Len(t, events, 1)

	requests := server.Requests()
	require.Len(t, requests, 1)

	variables := requests[0].Variables
	assert.Equal(t, []any{"entity.task.status_changed"}, variables["eventTopics"])
	assert.Equal(t, []any{"demo"}, variables["projectNames"])
	assert.Equal(t, true, variables["includeLogsFilter"])
	assert.Equal(t, "2025-01-01T00:00:00+00:00", variables["newerThanFilter"])
	assert.NotContains(t, variables, "olderThanFilter")
	assert.NotContains(t, variables, "hasChildrenFilter")
}

func TestEventsClient_List_NewestFirst(t *testing.T) {
	t.Parallel()

	server := newGraphQLServer(t, `{"data": {"events": {
		"edges": [
			{"node": {"id": "e9", "topic": "log.info"}}
		],
		"pageInfo": {"endCursor": "c1", "hasNextPage": true}
	}}}`)
	client := NewTestClient(server.URL)

	events, err := client.Events().List(context.Background(), &slate.EventListOptions{
		Order: graphql.SortDescending,
		Limit: 1,
	})
	require.NoError(t, err)
	require.Len(t, events, 1)

	// Descending order pages from the tail and the limit stops after one
	// page.
	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Contains(t, requests[0].Query, "events(last: 1)")
}
