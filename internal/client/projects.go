package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/slate-client/pkg/graphql"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// ProjectsClient implements slate.ProjectsClient.
type ProjectsClient struct {
	transport graphql.Transport
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(transport graphql.Transport) *ProjectsClient {
	return &ProjectsClient{transport: transport}
}

// Get implements slate.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, name string) (*slate.Project, error) {
	if name == "" {
		return nil, slate.ErrProjectNameRequired
	}

	query, err := projectQuery(expandProjectFields(defaultProjectFields))
	if err != nil {
		return nil, fmt.Errorf("building project query: %w", err)
	}

	if err := query.SetVariableValue("projectName", name); err != nil {
		return nil, err
	}

	output, err := query.Execute(ctx, c.transport)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	row, ok := output["project"].(map[string]any)
	if !ok {
		return nil, nil
	}

	// The singular project field does not return the name it was matched
	// on, so carry it over.
	row["name"] = name

	project, err := decodeRow[slate.Project](row)
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// List implements slate.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, opts *slate.ProjectListOptions) ([]slate.Project, error) {
	if opts == nil {
		opts = &slate.ProjectListOptions{}
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = defaultProjectFields
	}

	fields = expandProjectFields(fields)

	// The projects connection has no filter arguments; active and library
	// are filtered after the fetch and need their columns selected.
	if opts.Active != nil {
		fields = withField(fields, "active")
	}

	if opts.Library != nil {
		fields = withField(fields, "library")
	}

	query := projectsQuery(fields)

	projects, err := listEntities[slate.Project](ctx, c.transport, query, opts.Active, "projects")
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	if opts.Library == nil {
		return projects, nil
	}

	filtered := make([]slate.Project, 0, len(projects))

	for _, project := range projects {
		if project.Library == *opts.Library {
			filtered = append(filtered, project)
		}
	}

	return filtered, nil
}

// expandProjectFields rewrites group selections into their concrete
// subfields. The server exposes folder, task, and product types plus
// statuses as object lists; selecting the bare group name is not valid.
func expandProjectFields(fields []string) []string {
	out := make([]string, 0, len(fields))

	for _, field := range fields {
		switch field {
		case "folderTypes":
			out = append(out, "folderTypes.name", "folderTypes.shortName", "folderTypes.icon")
		case "taskTypes":
			out = append(out, "taskTypes.name", "taskTypes.shortName", "taskTypes.color", "taskTypes.icon")
		case "productTypes":
			out = append(out, "productTypes.name", "productTypes.icon", "productTypes.color")
		case "statuses":
			out = append(out, "statuses.name", "statuses.shortName", "statuses.state", "statuses.icon", "statuses.color")
		default:
			out = append(out, field)
		}
	}

	return out
}
