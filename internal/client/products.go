package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/slate-client/pkg/graphql"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// ProductsClient implements slate.ProductsClient.
type ProductsClient struct {
	transport graphql.Transport
}

// NewProductsClient creates a new products client.
func NewProductsClient(transport graphql.Transport) *ProductsClient {
	return &ProductsClient{transport: transport}
}

// Get implements slate.ProductsClient.Get.
func (c *ProductsClient) Get(ctx context.Context, projectName, productID string) (*slate.Product, error) {
	if productID == "" {
		return nil, slate.ErrIdentifierRequired
	}

	products, err := c.List(ctx, projectName, &slate.ProductListOptions{
		IDs: []string{productID},
	})
	if err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return nil, nil
	}

	return &products[0], nil
}

// List implements slate.ProductsClient.List.
func (c *ProductsClient) List(ctx context.Context, projectName string, opts *slate.ProductListOptions) ([]slate.Product, error) {
	if projectName == "" {
		return nil, slate.ErrProjectNameRequired
	}

	if opts == nil {
		opts = &slate.ProductListOptions{}
	}

	filters := map[string]any{"projectName": projectName}

	matchable := prepareListFilters(filters,
		listFilter{"productIds", opts.IDs},
		listFilter{"productNames", opts.Names},
		listFilter{"folderIds", opts.FolderIDs},
		listFilter{"productTypes", opts.ProductTypes},
		listFilter{"productStatuses", opts.Statuses},
		listFilter{"productTags", opts.Tags},
	)
	if !matchable {
		return []slate.Product{}, nil
	}

	if opts.NameRegex != "" {
		filters["productNameRegex"] = opts.NameRegex
	}

	if opts.PathRegex != "" {
		filters["productPathRegex"] = opts.PathRegex
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = defaultProductFields
	}

	if opts.Active != nil {
		fields = withField(fields, "active")
	}

	query, err := productsQuery(fields)
	if err != nil {
		return nil, fmt.Errorf("building products query: %w", err)
	}

	if err := query.SetVariableValues(filters); err != nil {
		return nil, err
	}

	if opts.Limit > 0 {
		query.FieldByPath("project/products").SetLimit(opts.Limit)
	}

	products, err := listEntities[slate.Product](ctx, c.transport, query, opts.Active, "project", "products")
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	return products, nil
}

// Links implements slate.ProductsClient.Links.
func (c *ProductsClient) Links(ctx context.Context, projectName string, productIDs []string, opts *slate.LinkOptions) (map[string][]slate.Link, error) {
	links, err := listLinks(ctx, c.transport, projectName, productsQuery, "productIds", "products", productIDs, opts)
	if err != nil {
		return nil, fmt.Errorf("listing product links: %w", err)
	}

	return links, nil
}
