package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/slate-client/pkg/graphql"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// TasksClient implements slate.TasksClient.
type TasksClient struct {
	transport graphql.Transport
}

// NewTasksClient creates a new tasks client.
func NewTasksClient(transport graphql.Transport) *TasksClient {
	return &TasksClient{transport: transport}
}

// Get implements slate.TasksClient.Get.
func (c *TasksClient) Get(ctx context.Context, projectName, taskID string) (*slate.Task, error) {
	if taskID == "" {
		return nil, slate.ErrIdentifierRequired
	}

	tasks, err := c.List(ctx, projectName, &slate.TaskListOptions{
		IDs: []string{taskID},
	})
	if err != nil {
		return nil, err
	}

	if len(tasks) == 0 {
		return nil, nil
	}

	return &tasks[0], nil
}

// List implements slate.TasksClient.List.
func (c *TasksClient) List(ctx context.Context, projectName string, opts *slate.TaskListOptions) ([]slate.Task, error) {
	if projectName == "" {
		return nil, slate.ErrProjectNameRequired
	}

	if opts == nil {
		opts = &slate.TaskListOptions{}
	}

	filters := map[string]any{"projectName": projectName}

	matchable := prepareListFilters(filters,
		listFilter{"taskIds", opts.IDs},
		listFilter{"taskNames", opts.Names},
		listFilter{"taskTypes", opts.TaskTypes},
		listFilter{"folderIds", opts.FolderIDs},
		listFilter{"taskAssigneesAny", opts.AssigneesAny},
		listFilter{"taskAssigneesAll", opts.AssigneesAll},
		listFilter{"taskStatuses", opts.Statuses},
		listFilter{"taskTags", opts.Tags},
	)
	if !matchable {
		return []slate.Task{}, nil
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = defaultTaskFields
	}

	if opts.Active != nil {
		fields = withField(fields, "active")
	}

	query, err := tasksQuery(fields)
	if err != nil {
		return nil, fmt.Errorf("building tasks query: %w", err)
	}

	if err := query.SetVariableValues(filters); err != nil {
		return nil, err
	}

	if opts.Limit > 0 {
		query.FieldByPath("project/tasks").SetLimit(opts.Limit)
	}

	tasks, err := listEntities[slate.Task](ctx, c.transport, query, opts.Active, "project", "tasks")
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	return tasks, nil
}

// ListByFolderPaths implements slate.TasksClient.ListByFolderPaths. The id
// and folder id filters of the options do not apply here; the folder paths
// are the grouping key and the only folder filter.
func (c *TasksClient) ListByFolderPaths(ctx context.Context, projectName string, folderPaths []string, opts *slate.TaskListOptions) (map[string][]slate.Task, error) {
	if projectName == "" {
		return nil, slate.ErrProjectNameRequired
	}

	if opts == nil {
		opts = &slate.TaskListOptions{}
	}

	paths := dedupe(folderPaths)

	output := make(map[string][]slate.Task, len(paths))
	for _, path := range paths {
		output[path] = []slate.Task{}
	}

	if len(paths) == 0 {
		return output, nil
	}

	filters := map[string]any{
		"projectName": projectName,
		"folderPaths": paths,
	}

	matchable := prepareListFilters(filters,
		listFilter{"taskNames", opts.Names},
		listFilter{"taskTypes", opts.TaskTypes},
		listFilter{"taskAssigneesAny", opts.AssigneesAny},
		listFilter{"taskAssigneesAll", opts.AssigneesAll},
		listFilter{"taskStatuses", opts.Statuses},
		listFilter{"taskTags", opts.Tags},
	)
	if !matchable {
		return output, nil
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = defaultTaskFields
	}

	if opts.Active != nil {
		fields = withField(fields, "active")
	}

	query, err := tasksByFolderPathsQuery(fields)
	if err != nil {
		return nil, fmt.Errorf("building tasks by folder path query: %w", err)
	}

	if err := query.SetVariableValues(filters); err != nil {
		return nil, err
	}

	stream := query.Stream(c.transport)
	for stream.HasNext() {
		result, err := stream.Next(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing tasks by folder path: %w", err)
		}

		for _, folderRow := range rowsAt(result, "project", "folders") {
			folderPath, _ := folderRow["path"].(string)

			for _, row := range rowsAt(folderRow, "tasks") {
				if !matchesActive(row, opts.Active) {
					continue
				}

				task, err := decodeRow[slate.Task](row)
				if err != nil {
					return nil, err
				}

				output[folderPath] = append(output[folderPath], task)
			}
		}
	}

	return output, nil
}

// Links implements slate.TasksClient.Links.
func (c *TasksClient) Links(ctx context.Context, projectName string, taskIDs []string, opts *slate.LinkOptions) (map[string][]slate.Link, error) {
	links, err := listLinks(ctx, c.transport, projectName, tasksQuery, "taskIds", "tasks", taskIDs, opts)
	if err != nil {
		return nil, fmt.Errorf("listing task links: %w", err)
	}

	return links, nil
}
