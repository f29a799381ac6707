package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/slate-client/pkg/graphql"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// RepresentationsClient implements slate.RepresentationsClient.
type RepresentationsClient struct {
	transport graphql.Transport
}

// NewRepresentationsClient creates a new representations client.
func NewRepresentationsClient(transport graphql.Transport) *RepresentationsClient {
	return &RepresentationsClient{transport: transport}
}

// Get implements slate.RepresentationsClient.Get.
func (c *RepresentationsClient) Get(ctx context.Context, projectName, representationID string) (*slate.Representation, error) {
	if representationID == "" {
		return nil, slate.ErrIdentifierRequired
	}

	representations, err := c.List(ctx, projectName, &slate.RepresentationListOptions{
		IDs: []string{representationID},
	})
	if err != nil {
		return nil, err
	}

	if len(representations) == 0 {
		return nil, nil
	}

	return &representations[0], nil
}

// List implements slate.RepresentationsClient.List.
func (c *RepresentationsClient) List(ctx context.Context, projectName string, opts *slate.RepresentationListOptions) ([]slate.Representation, error) {
	if projectName == "" {
		return nil, slate.ErrProjectNameRequired
	}

	if opts == nil {
		opts = &slate.RepresentationListOptions{}
	}

	filters := map[string]any{"projectName": projectName}

	matchable := prepareListFilters(filters,
		listFilter{"representationIds", opts.IDs},
		listFilter{"representationNames", opts.Names},
		listFilter{"versionIds", opts.VersionIDs},
		listFilter{"representationStatuses", opts.Statuses},
		listFilter{"representationTags", opts.Tags},
	)
	if !matchable {
		return []slate.Representation{}, nil
	}

	if opts.HasLinks != "" {
		filters["representationHasLinks"] = opts.HasLinks
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = defaultRepresentationFields
	}

	if opts.Active != nil {
		fields = withField(fields, "active")
	}

	query, err := representationsQuery(fields)
	if err != nil {
		return nil, fmt.Errorf("building representations query: %w", err)
	}

	if err := query.SetVariableValues(filters); err != nil {
		return nil, err
	}

	if opts.Limit > 0 {
		query.FieldByPath("project/representations").SetLimit(opts.Limit)
	}

	representations, err := listEntities[slate.Representation](ctx, c.transport, query, opts.Active, "project", "representations")
	if err != nil {
		return nil, fmt.Errorf("listing representations: %w", err)
	}

	return representations, nil
}

// Parents implements slate.RepresentationsClient.Parents. Every requested
// id gets a key; ids the server does not know keep zero-value parents.
func (c *RepresentationsClient) Parents(ctx context.Context, projectName string, representationIDs []string) (map[string]slate.RepresentationParents, error) {
	if projectName == "" {
		return nil, slate.ErrProjectNameRequired
	}

	ids := dedupe(representationIDs)

	output := make(map[string]slate.RepresentationParents, len(ids))
	for _, id := range ids {
		output[id] = slate.RepresentationParents{}
	}

	if len(ids) == 0 {
		return output, nil
	}

	// The parent chain query cannot select the project, so it is fetched
	// separately and shared by every entry.
	project, err := NewProjectsClient(c.transport).Get(ctx, projectName)
	if err != nil {
		return nil, err
	}

	query, err := representationsParentsQuery(defaultVersionFields, defaultProductFields, defaultFolderFields)
	if err != nil {
		return nil, fmt.Errorf("building representation parents query: %w", err)
	}

	err = query.SetVariableValues(map[string]any{
		"projectName":       projectName,
		"representationIds": ids,
	})
	if err != nil {
		return nil, err
	}

	result, err := query.Execute(ctx, c.transport)
	if err != nil {
		return nil, fmt.Errorf("listing representation parents: %w", err)
	}

	for _, row := range rowsAt(result, "project", "representations") {
		representationID, _ := row["id"].(string)
		if representationID == "" {
			continue
		}

		parents := slate.RepresentationParents{Project: project}

		versionRow, ok := row["version"].(map[string]any)
		if !ok {
			output[representationID] = parents

			continue
		}

		productRow, _ := versionRow["product"].(map[string]any)
		delete(versionRow, "product")

		version, err := decodeRow[slate.Version](versionRow)
		if err != nil {
			return nil, err
		}

		parents.Version = &version

		if productRow != nil {
			folderRow, _ := productRow["folder"].(map[string]any)
			delete(productRow, "folder")

			product, err := decodeRow[slate.Product](productRow)
			if err != nil {
				return nil, err
			}

			parents.Product = &product

			if folderRow != nil {
				folder, err := decodeRow[slate.Folder](folderRow)
				if err != nil {
					return nil, err
				}

				parents.Folder = &folder
			}
		}

		output[representationID] = parents
	}

	return output, nil
}

// Links implements slate.RepresentationsClient.Links.
func (c *RepresentationsClient) Links(ctx context.Context, projectName string, representationIDs []string, opts *slate.LinkOptions) (map[string][]slate.Link, error) {
	links, err := listLinks(ctx, c.transport, projectName, representationsQuery, "representationIds", "representations", representationIDs, opts)
	if err != nil {
		return nil, fmt.Errorf("listing representation links: %w", err)
	}

	return links, nil
}
