package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/slate-client/pkg/graphql"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// FoldersClient implements slate.FoldersClient.
type FoldersClient struct {
	transport graphql.Transport
}

// NewFoldersClient creates a new folders client.
func NewFoldersClient(transport graphql.Transport) *FoldersClient {
	return &FoldersClient{transport: transport}
}

// Get implements slate.FoldersClient.Get.
func (c *FoldersClient) Get(ctx context.Context, projectName, folderID string) (*slate.Folder, error) {
	if folderID == "" {
		return nil, slate.ErrIdentifierRequired
	}

	folders, err := c.List(ctx, projectName, &slate.FolderListOptions{
		IDs: []string{folderID},
	})
	if err != nil {
		return nil, err
	}

	if len(folders) == 0 {
		return nil, nil
	}

	return &folders[0], nil
}

// GetByPath implements slate.FoldersClient.GetByPath.
func (c *FoldersClient) GetByPath(ctx context.Context, projectName, path string) (*slate.Folder, error) {
	if path == "" {
		return nil, slate.ErrIdentifierRequired
	}

	folders, err := c.List(ctx, projectName, &slate.FolderListOptions{
		Paths: []string{path},
	})
	if err != nil {
		return nil, err
	}

	if len(folders) == 0 {
		return nil, nil
	}

	return &folders[0], nil
}

// List implements slate.FoldersClient.List.
func (c *FoldersClient) List(ctx context.Context, projectName string, opts *slate.FolderListOptions) ([]slate.Folder, error) {
	if projectName == "" {
		return nil, slate.ErrProjectNameRequired
	}

	if opts == nil {
		opts = &slate.FolderListOptions{}
	}

	filters := map[string]any{"projectName": projectName}

	matchable := prepareListFilters(filters,
		listFilter{"folderIds", opts.IDs},
		listFilter{"folderPaths", opts.Paths},
		listFilter{"folderNames", opts.Names},
		listFilter{"folderTypes", opts.FolderTypes},
		listFilter{"parentFolderIds", opts.ParentIDs},
		listFilter{"folderStatuses", opts.Statuses},
		listFilter{"folderAssigneesAll", opts.Assignees},
		listFilter{"folderTags", opts.Tags},
	)
	if !matchable {
		return []slate.Folder{}, nil
	}

	if opts.PathRegex != "" {
		filters["folderPathRegex"] = opts.PathRegex
	}

	if opts.HasProducts != nil {
		filters["folderHasProducts"] = *opts.HasProducts
	}

	if opts.HasTasks != nil {
		filters["folderHasTasks"] = *opts.HasTasks
	}

	if opts.HasChildren != nil {
		filters["folderHasChildren"] = *opts.HasChildren
	}

	if opts.HasLinks != "" {
		filters["folderHasLinks"] = opts.HasLinks
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = defaultFolderFields
	}

	if opts.Active != nil {
		fields = withField(fields, "active")
	}

	query, err := foldersQuery(fields)
	if err != nil {
		return nil, fmt.Errorf("building folders query: %w", err)
	}

	if err := query.SetVariableValues(filters); err != nil {
		return nil, err
	}

	if opts.Limit > 0 {
		query.FieldByPath("project/folders").SetLimit(opts.Limit)
	}

	folders, err := listEntities[slate.Folder](ctx, c.transport, query, opts.Active, "project", "folders")
	if err != nil {
		return nil, fmt.Errorf("listing folders: %w", err)
	}

	return folders, nil
}

// Links implements slate.FoldersClient.Links.
func (c *FoldersClient) Links(ctx context.Context, projectName string, folderIDs []string, opts *slate.LinkOptions) (map[string][]slate.Link, error) {
	links, err := listLinks(ctx, c.transport, projectName, foldersQuery, "folderIds", "folders", folderIDs, opts)
	if err != nil {
		return nil, fmt.Errorf("listing folder links: %w", err)
	}

	return links, nil
}
