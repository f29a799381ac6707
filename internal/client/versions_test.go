package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

func TestVersionsClient_Get(t *testing.T) {
	t.Parallel()

	server := newGraphQLServer(t, `{"data": {"project": {"versions": {
		"edges": [
			{"node": {"id": "v1", "version": 3, "productId": "p1", "author": "jane"}}
		],
		"pageInfo": {"endCursor": "c1", "hasNextPage": false}
	}}}}`)
	client := NewTestClient(server.URL)

	version, err := client.Versions().Get(context.Background(), "demo", "v1")
	require.NoError(t, err)
	require.NotNil(t, version)
	assert.Equal(t, "v1", version.ID)
	assert.Equal(t, 3, version.Version)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, []any{"v1"}, requests[0].Variables["versionIds"])
}

func TestVersionsClient_GetLatest(t *testing.T) {
	t.Parallel()

	server := newGraphQLServer(t, `{"data": {"project": {"versions": {
		"edges": [
			{"node": {"id": "v9", "version": 9, "productId": "p1"}}
		],
		"pageInfo": {"endCursor": "c1", "hasNextPage": false}
	}}}}`)
	client := NewTestClient(server.URL)

	version, err := client.Versions().GetLatest(context.Background(), "demo", "p1")
	require.NoError(t, err)
	require.NotNil(t, version)
	assert.Equal(t, 9, version.Version)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, []any{"p1"}, requests[0].Variables["productIds"])
	assert.Equal(t, true, requests[0].Variables["latestOnly"])
}

func TestVersionsClient_GetLatest_NoVersions(t *testing.T) {
	t.Parallel()

	server := newGraphQLServer(t, `{"data": {"project": {"versions": {
		"edges": [],
		"pageInfo": {"endCursor": null, "hasNextPage": false}
	}}}}`)
	client := NewTestClient(server.URL)

	version, err := client.Versions().GetLatest(context.Background(), "demo", "p1")
	require.NoError(t, err)
	assert.Nil(t, version)
}

func TestVersionsClient_List_VersionNumbers(t *testing.T) {
	t.Parallel()

	server := newGraphQLServer(t, `{"data": {"project": {"versions": {
		"edges": [
			{"node": {"id": "v1", "version": 1}},
			{"node": {"id": "v3", "version": 3}}
		],
		"pageInfo": {"endCursor": "c2", "hasNextPage": false}
	}}}}`)
	client := NewTestClient(server.URL)

	versions, err := client.Versions().List(context.Background(), "demo", &slate.VersionListOptions{
		Versions: []int{1, 3},
	})
	require.NoError(t, err)
	require.Len(t, versions, 2)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, []any{float64(1), float64(3)}, requests[0].Variables["versions"])
}

func TestVersionsClient_List_EmptyVersionNumbersShortCircuits(t *testing.T) {
	t.Parallel()

	server := newGraphQLServer(t)
	client := NewTestClient(server.URL)

	versions, err := client.Versions().List(context.Background(), "demo", &slate.VersionListOptions{
		Versions: []int{},
	})
	require.NoError(t, err)
	assert.Empty(t, versions)
	assert.Empty(t, server.Requests())
}

func TestVersionsClient_List_HeroOnly(t *testing.T) {
	t.Parallel()

	server := newGraphQLServer(t, `{"data": {"project": {"versions": {
		"edges": [
			{"node": {"id": "v7", "version": -7, "productId": "p1"}}
		],
		"pageInfo": {"endCursor": "c1", "hasNextPage": false}
	}}}}`)
	client := NewTestClient(server.URL)

	versions, err := client.Versions().List(context.Background(), "demo", &slate.VersionListOptions{
		HeroOnly: true,
		Fields:   []string{"productId"},
	})
	require.NoError(t, err)
	require.Len(t, versions, 1)

	// Hero versions carry negative numbers.
	assert.Equal(t, -7, versions[0].Version)

	// id and version ride along even when the caller selects neither.
	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, true, requests[0].Variables["heroOnly"])
	assert.NotContains(t, requests[0].Variables, "latestOnly")
	assert.Contains(t, requests[0].Query, "id")
	assert.Contains(t, requests[0].Query, "version")
}
