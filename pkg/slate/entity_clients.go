package slate

import "context"

// ProjectsClient provides access to projects.
type ProjectsClient interface {
	// Get returns one project by name, or (nil, nil) when it does not exist.
	Get(ctx context.Context, name string) (*Project, error)
	// List returns all projects matching the options.
	List(ctx context.Context, opts *ProjectListOptions) ([]Project, error)
}

// FoldersClient provides access to folders within a project.
type FoldersClient interface {
	// Get returns one folder by id, or (nil, nil) when it does not exist.
	Get(ctx context.Context, projectName, folderID string) (*Folder, error)
	// GetByPath returns one folder by its hierarchy path, or (nil, nil) when
	// it does not exist.
	GetByPath(ctx context.Context, projectName, path string) (*Folder, error)
	// List returns all folders matching the options.
	List(ctx context.Context, projectName string, opts *FolderListOptions) ([]Folder, error)
	// Links returns links per folder id for the given folders.
	Links(ctx context.Context, projectName string, folderIDs []string, opts *LinkOptions) (map[string][]Link, error)
}

// TasksClient provides access to tasks within a project.
type TasksClient interface {
	// Get returns one task by id, or (nil, nil) when it does not exist.
	Get(ctx context.Context, projectName, taskID string) (*Task, error)
	// List returns all tasks matching the options.
	List(ctx context.Context, projectName string, opts *TaskListOptions) ([]Task, error)
	// ListByFolderPaths returns tasks grouped by folder path. Every requested
	// path is present in the result, with an empty slice when the folder has
	// no matching tasks.
	ListByFolderPaths(ctx context.Context, projectName string, folderPaths []string, opts *TaskListOptions) (map[string][]Task, error)
	// Links returns links per task id for the given tasks.
	Links(ctx context.Context, projectName string, taskIDs []string, opts *LinkOptions) (map[string][]Link, error)
}

// ProductsClient provides access to products within a project.
type ProductsClient interface {
	// Get returns one product by id, or (nil, nil) when it does not exist.
	Get(ctx context.Context, projectName, productID string) (*Product, error)
	// List returns all products matching the options.
	List(ctx context.Context, projectName string, opts *ProductListOptions) ([]Product, error)
	// Links returns links per product id for the given products.
	Links(ctx context.Context, projectName string, productIDs []string, opts *LinkOptions) (map[string][]Link, error)
}

// VersionsClient provides access to versions within a project.
type VersionsClient interface {
	// Get returns one version by id, or (nil, nil) when it does not exist.
	Get(ctx context.Context, projectName, versionID string) (*Version, error)
	// GetLatest returns the latest version of a product, or (nil, nil) when
	// the product has no versions.
	GetLatest(ctx context.Context, projectName, productID string) (*Version, error)
	// List returns all versions matching the options.
	List(ctx context.Context, projectName string, opts *VersionListOptions) ([]Version, error)
	// Links returns links per version id for the given versions.
	Links(ctx context.Context, projectName string, versionIDs []string, opts *LinkOptions) (map[string][]Link, error)
}

// RepresentationsClient provides access to representations within a project.
type RepresentationsClient interface {
	// Get returns one representation by id, or (nil, nil) when it does not
	// exist.
	Get(ctx context.Context, projectName, representationID string) (*Representation, error)
	// List returns all representations matching the options.
	List(ctx context.Context, projectName string, opts *RepresentationListOptions) ([]Representation, error)
	// Parents returns, per representation id, the version, product, folder,
	// and task the representation hangs under.
	Parents(ctx context.Context, projectName string, representationIDs []string) (map[string]RepresentationParents, error)
	// Links returns links per representation id for the given representations.
	Links(ctx context.Context, projectName string, representationIDs []string, opts *LinkOptions) (map[string][]Link, error)
}

// WorkfilesClient provides access to workfiles within a project.
type WorkfilesClient interface {
	// Get returns one workfile by id, or (nil, nil) when it does not exist.
	Get(ctx context.Context, projectName, workfileID string) (*Workfile, error)
	// List returns all workfiles matching the options.
	List(ctx context.Context, projectName string, opts *WorkfileListOptions) ([]Workfile, error)
}

// UsersClient provides access to user accounts.
type UsersClient interface {
	// Get returns one user by name, or (nil, nil) when it does not exist.
	Get(ctx context.Context, name string) (*User, error)
	// List returns all users matching the options.
	List(ctx context.Context, opts *UserListOptions) ([]User, error)
}

// EventsClient provides access to the server event log.
type EventsClient interface {
	// Get returns one event by id, or (nil, nil) when it does not exist.
	Get(ctx context.Context, eventID string) (*Event, error)
	// List returns all events matching the options.
	List(ctx context.Context, opts *EventListOptions) ([]Event, error)
}

// ActivitiesClient provides access to activity feeds within a project.
type ActivitiesClient interface {
	// List returns all activities matching the options.
	List(ctx context.Context, projectName string, opts *ActivityListOptions) ([]Activity, error)
}
