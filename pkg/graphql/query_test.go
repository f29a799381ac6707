package graphql_test

import (
	"strings"
	"testing"

	"github.com/fivetwenty-io/slate-client/pkg/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

func TestQueryBuild_ProjectWithVariable(t *testing.T) {
	query := graphql.NewQuery("ProjectQuery")

	projectName, err := query.AddVariable("projectName", "String!")
	require.NoError(t, err)

	project := query.AddField("project")
	project.SetFilter("name", projectName)
	project.AddField("name")

	require.NoError(t, query.SetVariableValue("projectName", "demo"))

	text, err := query.Build()
	require.NoError(t, err)

	expected := strings.Join([]string{
		"query ProjectQuery($projectName: String!) {",
		"  project(name: $projectName) {",
		"    name",
		"  }",
		"}",
	}, "\n")
	assert.Equal(t, expected, text)
}

func TestQueryBuild_EmptyQuery(t *testing.T) {
	query := graphql.NewQuery("Empty")

	_, err := query.Build()
	require.ErrorIs(t, err, graphql.ErrEmptyQuery)
}

func TestQueryBuild_VariableOmission(t *testing.T) {
	query := graphql.NewQuery("FoldersQuery")

	projectName, err := query.AddVariable("projectName", "String!")
	require.NoError(t, err)
	folderIds, err := query.AddVariable("folderIds", "[String!]")
	require.NoError(t, err)

	project := query.AddField("project")
	project.SetFilter("name", projectName)
	folders := project.AddField("folders")
	folders.SetFilter("ids", folderIds)
	folders.AddField("id")

	require.NoError(t, query.SetVariableValue("projectName", "demo"))

	// folderIds has no value: neither the declaration nor the filter may
	// appear in the compiled text.
	text, err := query.Build()
	require.NoError(t, err)
	assert.NotContains(t, text, "folderIds")
	assert.Contains(t, text, "query FoldersQuery($projectName: String!) {")
	assert.Contains(t, text, "    folders {")

	require.NoError(t, query.SetVariableValue("folderIds", []string{"a"}))

	text, err = query.Build()
	require.NoError(t, err)
	assert.Contains(t, text, "$folderIds: [String!]")
	assert.Contains(t, text, "folders(ids: $folderIds) {")

	// Resetting the value to nil drops both again.
	require.NoError(t, query.SetVariableValue("folderIds", nil))

	text, err = query.Build()
	require.NoError(t, err)
	assert.NotContains(t, text, "folderIds")
}

func TestQueryBuild_Deterministic(t *testing.T) {
	query := graphql.NewQuery("TasksQuery")

	tasks := query.AddFieldWithEdges("tasks")
	tasks.SetFilter("names", []string{"comp", "anim"})
	tasks.SetFilter("statuses", []string{"wip"})
	tasks.AddField("id")

	first, err := query.Build()
	require.NoError(t, err)

	second, err := query.Build()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, `tasks(names: ["comp", "anim"], statuses: ["wip"], first: 300) {`)
}

func TestQueryBuild_EdgeField(t *testing.T) {
	query := graphql.NewQuery("TasksQuery")

	tasks := query.AddFieldWithEdges("tasks")
	tasks.AddField("id")

	text, err := query.Build()
	require.NoError(t, err)

	expected := strings.Join([]string{
		"query TasksQuery {",
		"  tasks(first: 300) {",
		"    edges {",
		"      node {",
		"        id",
		"      }",
		"    }",
		"    pageInfo {",
		"      endCursor",
		"      hasNextPage",
		"    }",
		"  }",
		"}",
	}, "\n")
	assert.Equal(t, expected, text)
}

func TestQueryBuild_NestedEdgeRequestsCursor(t *testing.T) {
	query := graphql.NewQuery("FoldersQuery")

	folders := query.AddFieldWithEdges("folders")
	folders.AddField("id")
	tasks := folders.AddFieldWithEdges("tasks")
	tasks.AddField("id")

	text, err := query.Build()
	require.NoError(t, err)

	expected := strings.Join([]string{
		"query FoldersQuery {",
		"  folders(first: 300) {",
		"    edges {",
		"      node {",
		"        id",
		"        tasks(first: 300) {",
		"          edges {",
		"            node {",
		"              id",
		"            }",
		"          }",
		"          pageInfo {",
		"            endCursor",
		"            hasNextPage",
		"          }",
		"        }",
		"      }",
		"      cursor",
		"    }",
		"    pageInfo {",
		"      endCursor",
		"      hasNextPage",
		"    }",
		"  }",
		"}",
	}, "\n")
	assert.Equal(t, expected, text)
}

func TestQueryBuild_EdgeChildren(t *testing.T) {
	query := graphql.NewQuery("LinksQuery")

	links := query.AddFieldWithEdges("links")
	links.AddEdgeField("linkType")
	links.AddEdgeField("direction")
	links.AddField("name")

	text, err := query.Build()
	require.NoError(t, err)

	// Per-edge fields render under "edges" alongside "node".
	assert.Contains(t, text, "linkType")
	assert.Contains(t, text, "direction")

	edgesIdx := strings.Index(text, "edges {")
	nodeIdx := strings.Index(text, "node {")
	linkTypeIdx := strings.Index(text, "linkType")
	assert.Greater(t, linkTypeIdx, edgesIdx)
	assert.Less(t, linkTypeIdx, nodeIdx)
}

func TestQueryBuild_EdgeWithoutChildren(t *testing.T) {
	query := graphql.NewQuery("TasksQuery")
	query.AddFieldWithEdges("tasks")

	_, err := query.Build()
	require.ErrorIs(t, err, graphql.ErrMissingEdgeFields)
	assert.Contains(t, err.Error(), "tasks")
}

func TestQueryBuild_DescendingUsesLast(t *testing.T) {
	query := graphql.NewQuery("EventsQuery")
	query.SetOrder(graphql.SortDescending)

	events := query.AddFieldWithEdges("events")
	events.AddField("id")

	text, err := query.Build()
	require.NoError(t, err)
	assert.Contains(t, text, "events(last: 300) {")
	assert.NotContains(t, text, "first:")
}

func TestQueryBuild_FieldOrderOverride(t *testing.T) {
	query := graphql.NewQuery("EventsQuery")

	events := query.AddFieldWithEdges("events")
	events.SetOrder(graphql.SortDescending)
	events.AddField("id")

	text, err := query.Build()
	require.NoError(t, err)
	assert.Contains(t, text, "events(last: 300) {")
}

func TestQueryBuild_LimitClampsPageSize(t *testing.T) {
	query := graphql.NewQuery("TasksQuery")

	tasks := query.AddFieldWithEdges("tasks")
	tasks.AddField("id")
	tasks.SetLimit(2)

	text, err := query.Build()
	require.NoError(t, err)
	assert.Contains(t, text, "tasks(first: 2) {")

	// A limit above the default page size does not grow the page.
	query = graphql.NewQuery("TasksQuery")
	tasks = query.AddFieldWithEdges("tasks")
	tasks.AddField("id")
	tasks.SetLimit(500)

	text, err = query.Build()
	require.NoError(t, err)
	assert.Contains(t, text, "tasks(first: 300) {")
}

func TestQueryBuild_ParsesAsGraphQL(t *testing.T) {
	query := graphql.NewQuery("FoldersQuery")

	projectName, err := query.AddVariable("projectName", "String!")
	require.NoError(t, err)

	project := query.AddField("project")
	project.SetFilter("name", projectName)

	folders := project.AddFieldWithEdges("folders")
	folders.SetFilter("folderTypes", []string{"Asset", "Shot"})
	folders.AddField("id")
	folders.AddField("attrib").AddField("resolutionWidth")

	tasks := folders.AddFieldWithEdges("tasks")
	tasks.AddField("id")

	require.NoError(t, query.SetVariableValue("projectName", "demo"))

	text, err := query.Build()
	require.NoError(t, err)

	_, err = parser.ParseQuery(&ast.Source{Input: text})
	require.NoError(t, err)
}

func TestQueryVariables(t *testing.T) {
	query := graphql.NewQuery("TasksQuery")

	_, err := query.AddVariable("projectName", "String!")
	require.NoError(t, err)

	_, err = query.AddVariable("projectName", "String!")
	require.ErrorIs(t, err, graphql.ErrDuplicateVariable)

	err = query.SetVariableValue("missing", "x")
	require.ErrorIs(t, err, graphql.ErrUnknownVariable)

	require.NoError(t, query.SetVariableValues(map[string]any{"projectName": "demo"}))

	value, ok := query.VariableValue("projectName")
	require.True(t, ok)
	assert.Equal(t, "demo", value)

	_, ok = query.VariableValue("missing")
	assert.False(t, ok)

	assert.Equal(t, map[string]any{"projectName": "demo"}, query.VariableValues())

	require.NoError(t, query.SetVariableValue("projectName", nil))
	assert.Empty(t, query.VariableValues())

	assert.NotNil(t, query.Variable("projectName"))
	assert.Nil(t, query.Variable("missing"))
}

func TestQueryFieldByPath(t *testing.T) {
	query := graphql.NewQuery("FoldersQuery")

	project := query.AddField("project")
	folders := project.AddFieldWithEdges("folders")
	tasks := folders.AddFieldWithEdges("tasks")
	tasks.AddField("id")

	found := query.FieldByPath("project/folders/tasks")
	require.NotNil(t, found)
	assert.Equal(t, "tasks", found.Name())
	assert.Equal(t, "project/folders/tasks", found.Path())
	assert.True(t, found.HasEdges())

	assert.Nil(t, query.FieldByPath("project/missing"))
	assert.Nil(t, query.FieldByPath("missing"))
}
