package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/slate-client/pkg/graphql"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// EventsClient implements slate.EventsClient.
type EventsClient struct {
	transport graphql.Transport
}

// NewEventsClient creates a new events client.
func NewEventsClient(transport graphql.Transport) *EventsClient {
	return &EventsClient{transport: transport}
}

// Get implements slate.EventsClient.Get.
func (c *EventsClient) Get(ctx context.Context, eventID string) (*slate.Event, error) {
	if eventID == "" {
		return nil, slate.ErrIdentifierRequired
	}

	events, err := c.List(ctx, &slate.EventListOptions{
		IDs: []string{eventID},
	})
	if err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return nil, nil
	}

	return &events[0], nil
}

// List implements slate.EventsClient.List.
func (c *EventsClient) List(ctx context.Context, opts *slate.EventListOptions) ([]slate.Event, error) {
	if opts == nil {
		opts = &slate.EventListOptions{}
	}

	filters := map[string]any{}

	matchable := prepareListFilters(filters,
		listFilter{"eventIds", opts.IDs},
		listFilter{"eventTopics", opts.Topics},
		listFilter{"projectNames", opts.Projects},
		listFilter{"eventStatuses", opts.Statuses},
		listFilter{"eventUsers", opts.Users},
	)
	if !matchable {
		return []slate.Event{}, nil
	}

	if opts.IncludeLogs {
		filters["includeLogsFilter"] = true
	}

	if opts.HasChildren != nil {
		filters["hasChildrenFilter"] = *opts.HasChildren
	}

	if opts.NewerThan != "" {
		filters["newerThanFilter"] = opts.NewerThan
	}

	if opts.OlderThan != "" {
		filters["olderThanFilter"] = opts.OlderThan
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = defaultEventFields
	}

	query, err := eventsQuery(fields, opts.Order)
	if err != nil {
		return nil, fmt.Errorf("building events query: %w", err)
	}

	if err := query.SetVariableValues(filters); err != nil {
		return nil, err
	}

	if opts.Limit > 0 {
		query.FieldByPath("events").SetLimit(opts.Limit)
	}

	events, err := listEntities[slate.Event](ctx, c.transport, query, nil, "events")
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	return events, nil
}
