package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/slate-client/pkg/graphql"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// WorkfilesClient implements slate.WorkfilesClient.
type WorkfilesClient struct {
	transport graphql.Transport
}

// NewWorkfilesClient creates a new workfiles client.
func NewWorkfilesClient(transport graphql.Transport) *WorkfilesClient {
	return &WorkfilesClient{transport: transport}
}

// Get implements slate.WorkfilesClient.Get.
func (c *WorkfilesClient) Get(ctx context.Context, projectName, workfileID string) (*slate.Workfile, error) {
	if workfileID == "" {
		return nil, slate.ErrIdentifierRequired
	}

	workfiles, err := c.List(ctx, projectName, &slate.WorkfileListOptions{
		IDs: []string{workfileID},
	})
	if err != nil {
		return nil, err
	}

	if len(workfiles) == 0 {
		return nil, nil
	}

	return &workfiles[0], nil
}

// List implements slate.WorkfilesClient.List.
func (c *WorkfilesClient) List(ctx context.Context, projectName string, opts *slate.WorkfileListOptions) ([]slate.Workfile, error) {
	if projectName == "" {
		return nil, slate.ErrProjectNameRequired
	}

	if opts == nil {
		opts = &slate.WorkfileListOptions{}
	}

	filters := map[string]any{"projectName": projectName}

	matchable := prepareListFilters(filters,
		listFilter{"workfileIds", opts.IDs},
		listFilter{"taskIds", opts.TaskIDs},
		listFilter{"paths", opts.Paths},
		listFilter{"workfileStatuses", opts.Statuses},
		listFilter{"workfileTags", opts.Tags},
	)
	if !matchable {
		return []slate.Workfile{}, nil
	}

	if opts.PathRegex != "" {
		filters["workfilePathRegex"] = opts.PathRegex
	}

	if opts.HasLinks != "" {
		filters["workfileHasLinks"] = opts.HasLinks
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = defaultWorkfileFields
	}

	if opts.Active != nil {
		fields = withField(fields, "active")
	}

	query, err := workfilesQuery(fields)
	if err != nil {
		return nil, fmt.Errorf("building workfiles query: %w", err)
	}

	if err := query.SetVariableValues(filters); err != nil {
		return nil, err
	}

	if opts.Limit > 0 {
		query.FieldByPath("project/workfiles").SetLimit(opts.Limit)
	}

	workfiles, err := listEntities[slate.Workfile](ctx, c.transport, query, opts.Active, "project", "workfiles")
	if err != nil {
		return nil, fmt.Errorf("listing workfiles: %w", err)
	}

	return workfiles, nil
}
