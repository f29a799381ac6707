package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/slate-client/pkg/graphql"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// UsersClient implements slate.UsersClient.
type UsersClient struct {
	transport graphql.Transport
}

// NewUsersClient creates a new users client.
func NewUsersClient(transport graphql.Transport) *UsersClient {
	return &UsersClient{transport: transport}
}

// Get implements slate.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, name string) (*slate.User, error) {
	if name == "" {
		return nil, slate.ErrIdentifierRequired
	}

	users, err := c.List(ctx, &slate.UserListOptions{
		Names: []string{name},
	})
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, nil
	}

	return &users[0], nil
}

// List implements slate.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, opts *slate.UserListOptions) ([]slate.User, error) {
	if opts == nil {
		opts = &slate.UserListOptions{}
	}

	filters := map[string]any{}

	matchable := prepareListFilters(filters,
		listFilter{"userNames", opts.Names},
		listFilter{"emails", opts.Emails},
	)
	if !matchable {
		return []slate.User{}, nil
	}

	if opts.ProjectName != "" {
		filters["projectName"] = opts.ProjectName
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = defaultUserFields
	}

	query, err := usersQuery(fields)
	if err != nil {
		return nil, fmt.Errorf("building users query: %w", err)
	}

	if err := query.SetVariableValues(filters); err != nil {
		return nil, err
	}

	if opts.Limit > 0 {
		query.FieldByPath("users").SetLimit(opts.Limit)
	}

	users, err := listEntities[slate.User](ctx, c.transport, query, nil, "users")
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return users, nil
}
