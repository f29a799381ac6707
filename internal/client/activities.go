package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/slate-client/pkg/graphql"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// ActivitiesClient implements slate.ActivitiesClient.
type ActivitiesClient struct {
	transport graphql.Transport
}

// NewActivitiesClient creates a new activities client.
func NewActivitiesClient(transport graphql.Transport) *ActivitiesClient {
	return &ActivitiesClient{transport: transport}
}

// List implements slate.ActivitiesClient.List.
func (c *ActivitiesClient) List(ctx context.Context, projectName string, opts *slate.ActivityListOptions) ([]slate.Activity, error) {
	if projectName == "" {
		return nil, slate.ErrProjectNameRequired
	}

	if opts == nil {
		opts = &slate.ActivityListOptions{}
	}

	filters := map[string]any{"projectName": projectName}

	// Without an explicit reference filter only origin entries are
	// returned, so mentions and reactions do not duplicate the feed.
	referenceTypes := opts.ReferenceTypes
	if referenceTypes == nil {
		referenceTypes = []string{"origin"}
	}

	matchable := prepareListFilters(filters,
		listFilter{"activityIds", opts.IDs},
		listFilter{"activityTypes", opts.ActivityTypes},
		listFilter{"entityIds", opts.EntityIDs},
		listFilter{"entityNames", opts.EntityNames},
		listFilter{"referenceTypes", referenceTypes},
	)
	if !matchable {
		return []slate.Activity{}, nil
	}

	if opts.EntityType != "" {
		filters["entityType"] = opts.EntityType
	}

	if opts.ChangedAfter != "" {
		filters["changedAfter"] = opts.ChangedAfter
	}

	if opts.ChangedBefore != "" {
		filters["changedBefore"] = opts.ChangedBefore
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = defaultActivityFields
	}

	query, err := activitiesQuery(fields, opts.Order)
	if err != nil {
		return nil, fmt.Errorf("building activities query: %w", err)
	}

	if err := query.SetVariableValues(filters); err != nil {
		return nil, err
	}

	if opts.Limit > 0 {
		query.FieldByPath("project/activities").SetLimit(opts.Limit)
	}

	activities, err := listEntities[slate.Activity](ctx, c.transport, query, nil, "project", "activities")
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}

	return activities, nil
}
