package graphql_test

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/slate-client/pkg/graphql"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

func TestStream_SingleDimensionYieldsPerPage(t *testing.T) {
	transport := &scriptedTransport{responses: []*graphql.Response{
		{Data: map[string]any{"tasks": connection(true, "c1", taskEdge("a"))}},
		{Data: map[string]any{"tasks": connection(true, "c2", taskEdge("b"))}},
		{Data: map[string]any{"tasks": connection(false, "c3", taskEdge("c"))}},
	}}

	query := graphql.NewQuery("TasksQuery")
	query.AddFieldWithEdges("tasks").AddField("id")

	stream := query.Stream(transport)

	var pages []map[string]any

	for stream.HasNext() {
		page, err := stream.Next(context.Background())
		require.NoError(t, err)

		pages = append(pages, page)
	}

	// One query field paginates, so every page is yielded on its own and
	// holds only that page's rows.
	expected := []map[string]any{
		{"tasks": []any{map[string]any{"id": "a"}}},
		{"tasks": []any{map[string]any{"id": "b"}}},
		{"tasks": []any{map[string]any{"id": "c"}}},
	}
	if diff := cmp.Diff(expected, pages); diff != "" {
		t.Errorf("pages mismatch (-want +got):\n%s", diff)
	}

	assert.Len(t, transport.queries, 3)
	assert.Contains(t, transport.queries[1], `after: "c1"`)
	assert.Contains(t, transport.queries[2], `after: "c2"`)

	_, err := stream.Next(context.Background())
	assert.ErrorIs(t, err, graphql.ErrNoMorePages)
}

func TestStream_MultiDimensionYieldsOnce(t *testing.T) {
	transport := &scriptedTransport{responses: []*graphql.Response{
		{Data: map[string]any{
			"folders": connection(true, "f1", map[string]any{"node": map[string]any{"id": "folder1"}}),
			"tasks":   connection(true, "t1", taskEdge("a")),
		}},
		{Data: map[string]any{
			"folders": connection(false, "f2", map[string]any{"node": map[string]any{"id": "folder2"}}),
			"tasks":   connection(false, "t2", taskEdge("b")),
		}},
	}}

	query := graphql.NewQuery("OverviewQuery")
	query.AddFieldWithEdges("folders").AddField("id")
	query.AddFieldWithEdges("tasks").AddField("id")

	stream := query.Stream(transport)
	require.True(t, stream.HasNext())

	// Two fields paginate, so per-page yields would tear rows that belong
	// together. The stream drains everything and yields a single document.
	result, err := stream.Next(context.Background())
	require.NoError(t, err)

	expected := map[string]any{
		"folders": []any{
			map[string]any{"id": "folder1"},
			map[string]any{"id": "folder2"},
		},
		"tasks": []any{
			map[string]any{"id": "a"},
			map[string]any{"id": "b"},
		},
	}
	if diff := cmp.Diff(expected, result); diff != "" {
		t.Errorf("merged result mismatch (-want +got):\n%s", diff)
	}

	assert.Len(t, transport.queries, 2)
	assert.False(t, stream.HasNext())

	_, err = stream.Next(context.Background())
	assert.ErrorIs(t, err, graphql.ErrNoMorePages)
}

func TestStream_AllDrainsRemainingPages(t *testing.T) {
	transport := &scriptedTransport{responses: []*graphql.Response{
		{Data: map[string]any{"tasks": connection(true, "c1", taskEdge("a"))}},
		{Data: map[string]any{"tasks": connection(true, "c2", taskEdge("b"))}},
		{Data: map[string]any{"tasks": connection(false, "c3", taskEdge("c"))}},
	}}

	query := graphql.NewQuery("TasksQuery")
	query.AddFieldWithEdges("tasks").AddField("id")

	stream := query.Stream(transport)

	first, err := stream.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"tasks": []any{map[string]any{"id": "a"}}}, first)

	rest, err := stream.All(context.Background())
	require.NoError(t, err)

	expected := map[string]any{"tasks": []any{
		map[string]any{"id": "b"},
		map[string]any{"id": "c"},
	}}
	if diff := cmp.Diff(expected, rest); diff != "" {
		t.Errorf("remaining pages mismatch (-want +got):\n%s", diff)
	}

	assert.False(t, stream.HasNext())
}

func TestStream_ErrorIsSticky(t *testing.T) {
	transport := &scriptedTransport{responses: []*graphql.Response{
		{Data: map[string]any{"tasks": connection(true, "c1", taskEdge("a"))}},
		{Errors: gqlerror.List{&gqlerror.Error{Message: "boom"}}},
	}}

	query := graphql.NewQuery("TasksQuery")
	query.AddFieldWithEdges("tasks").AddField("id")

	stream := query.Stream(transport)

	_, err := stream.Next(context.Background())
	require.NoError(t, err)

	_, err = stream.Next(context.Background())
	require.Error(t, err)
	assert.True(t, graphql.IsQueryFailed(err))
	assert.False(t, stream.HasNext())

	_, again := stream.Next(context.Background())
	assert.Equal(t, err, again)
	assert.Len(t, transport.queries, 2)
}

func TestStream_NoPagination(t *testing.T) {
	transport := &scriptedTransport{responses: []*graphql.Response{
		{Data: map[string]any{"project": map[string]any{"name": "demo"}}},
	}}

	query := graphql.NewQuery("ProjectQuery")
	query.AddField("project").AddField("name")

	stream := query.Stream(transport)
	require.True(t, stream.HasNext())

	result, err := stream.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"project": map[string]any{"name": "demo"}}, result)

	assert.False(t, stream.HasNext())

	_, err = stream.Next(context.Background())
	assert.ErrorIs(t, err, graphql.ErrNoMorePages)
}
