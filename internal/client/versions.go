package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/slate-client/pkg/graphql"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// VersionsClient implements slate.VersionsClient.
type VersionsClient struct {
	transport graphql.Transport
}

// NewVersionsClient creates a new versions client.
func NewVersionsClient(transport graphql.Transport) *VersionsClient {
	return &VersionsClient{transport: transport}
}

// Get implements slate.VersionsClient.Get.
func (c *VersionsClient) Get(ctx context.Context, projectName, versionID string) (*slate.Version, error) {
	if versionID == "" {
		return nil, slate.ErrIdentifierRequired
	}

	versions, err := c.List(ctx, projectName, &slate.VersionListOptions{
		IDs: []string{versionID},
	})
	if err != nil {
		return nil, err
	}

	if len(versions) == 0 {
		return nil, nil
	}

	return &versions[0], nil
}

// GetLatest implements slate.VersionsClient.GetLatest.
func (c *VersionsClient) GetLatest(ctx context.Context, projectName, productID string) (*slate.Version, error) {
	if productID == "" {
		return nil, slate.ErrIdentifierRequired
	}

	versions, err := c.List(ctx, projectName, &slate.VersionListOptions{
		ProductIDs: []string{productID},
		LatestOnly: true,
	})
	if err != nil {
		return nil, err
	}

	if len(versions) == 0 {
		return nil, nil
	}

	return &versions[0], nil
}

// List implements slate.VersionsClient.List.
func (c *VersionsClient) List(ctx context.Context, projectName string, opts *slate.VersionListOptions) ([]slate.Version, error) {
	if projectName == "" {
		return nil, slate.ErrProjectNameRequired
	}

	if opts == nil {
		opts = &slate.VersionListOptions{}
	}

	filters := map[string]any{"projectName": projectName}

	matchable := prepareListFilters(filters,
		listFilter{"versionIds", opts.IDs},
		listFilter{"productIds", opts.ProductIDs},
		listFilter{"taskIds", opts.TaskIDs},
		listFilter{"versionStatuses", opts.Statuses},
		listFilter{"versionTags", opts.Tags},
	)
	if !matchable {
		return []slate.Version{}, nil
	}

	if opts.Versions != nil {
		if len(opts.Versions) == 0 {
			return []slate.Version{}, nil
		}

		filters["versions"] = opts.Versions
	}

	if opts.HeroOnly {
		filters["heroOnly"] = true
	}

	if opts.LatestOnly {
		filters["latestOnly"] = true
	}

	if opts.HeroOrLatestOnly {
		filters["heroOrLatestOnly"] = true
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = defaultVersionFields
	}

	// Hero versions carry negative numbers; id and version are the minimum
	// a caller needs to make sense of a row.
	fields = withField(fields, "id")
	fields = withField(fields, "version")

	if opts.Active != nil {
		fields = withField(fields, "active")
	}

	query, err := versionsQuery(fields)
	if err != nil {
		return nil, fmt.Errorf("building versions query: %w", err)
	}

	if err := query.SetVariableValues(filters); err != nil {
		return nil, err
	}

	if opts.Limit > 0 {
		query.FieldByPath("project/versions").SetLimit(opts.Limit)
	}

	versions, err := listEntities[slate.Version](ctx, c.transport, query, opts.Active, "project", "versions")
	if err != nil {
		return nil, fmt.Errorf("listing versions: %w", err)
	}

	return versions, nil
}

// Links implements slate.VersionsClient.Links.
func (c *VersionsClient) Links(ctx context.Context, projectName string, versionIDs []string, opts *slate.LinkOptions) (map[string][]slate.Link, error) {
	links, err := listLinks(ctx, c.transport, projectName, versionsQuery, "versionIds", "versions", versionIDs, opts)
	if err != nil {
		return nil, fmt.Errorf("listing version links: %w", err)
	}

	return links, nil
}
