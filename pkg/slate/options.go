package slate

import "github.com/fivetwenty-io/slate-client/pkg/graphql"

// List options follow one convention for slice filters: a nil slice leaves
// the filter out, a non-nil empty slice matches nothing and short-circuits
// the call without a server round trip. Pointer fields (*bool) leave the
// filter out when nil.

// ProjectListOptions filters ProjectsClient.List.
type ProjectListOptions struct {
	// Active keeps only projects whose active flag matches.
	Active *bool
	// Library keeps only library (or non-library) projects.
	Library *bool
	// Fields narrows the returned attributes. Nested attributes use dotted
	// paths (e.g. "config.roots"). Empty means the default field set.
	Fields []string
}

// FolderListOptions filters FoldersClient.List.
type FolderListOptions struct {
	IDs         []string
	Paths       []string
	PathRegex   string
	Names       []string
	FolderTypes []string
	ParentIDs   []string
	Statuses    []string
	Assignees   []string
	Tags        []string
	HasProducts *bool
	HasTasks    *bool
	HasChildren *bool
	// HasLinks filters by link presence: "IN", "OUT", or "ANY".
	HasLinks string
	Active   *bool
	Fields   []string
	// Limit caps the total number of folders fetched across pages. 0 means
	// no limit.
	Limit int
}

// TaskListOptions filters TasksClient.List and ListByFolderPaths.
type TaskListOptions struct {
	IDs       []string
	Names     []string
	TaskTypes []string
	FolderIDs []string
	// AssigneesAny matches tasks with at least one of the given assignees.
	AssigneesAny []string
	// AssigneesAll matches tasks assigned to all of the given assignees.
	AssigneesAll []string
	Statuses     []string
	Tags         []string
	Active       *bool
	Fields       []string
	Limit        int
}

// ProductListOptions filters ProductsClient.List.
type ProductListOptions struct {
	IDs          []string
	Names        []string
	FolderIDs    []string
	ProductTypes []string
	NameRegex    string
	PathRegex    string
	Statuses     []string
	Tags         []string
	Active       *bool
	Fields       []string
	Limit        int
}

// VersionListOptions filters VersionsClient.List.
type VersionListOptions struct {
	IDs        []string
	ProductIDs []string
	TaskIDs    []string
	// Versions filters by version number.
	Versions []int
	// HeroOnly keeps only hero versions.
	HeroOnly bool
	// LatestOnly keeps only the latest version of each product.
	LatestOnly bool
	// HeroOrLatestOnly keeps the hero version where one exists and the
	// latest version otherwise.
	HeroOrLatestOnly bool
	Statuses         []string
	Tags             []string
	Active           *bool
	Fields           []string
	Limit            int
}

// RepresentationListOptions filters RepresentationsClient.List.
type RepresentationListOptions struct {
	IDs        []string
	Names      []string
	VersionIDs []string
	// HasLinks filters by link presence: "IN", "OUT", or "ANY".
	HasLinks string
	Statuses []string
	Tags     []string
	Active   *bool
	Fields   []string
	Limit    int
}

// WorkfileListOptions filters WorkfilesClient.List.
type WorkfileListOptions struct {
	IDs       []string
	TaskIDs   []string
	Paths     []string
	PathRegex string
	// HasLinks filters by link presence: "IN", "OUT", or "ANY".
	HasLinks string
	Statuses []string
	Tags     []string
	Active   *bool
	Fields   []string
	Limit    int
}

// UserListOptions filters UsersClient.List.
type UserListOptions struct {
	Names  []string
	Emails []string
	// ProjectName scopes the listing to members of one project. Users
	// without manager access can only list users this way.
	ProjectName string
	Fields      []string
	Limit       int
}

// EventListOptions filters EventsClient.List.
type EventListOptions struct {
	IDs      []string
	Topics   []string
	Projects []string
	Statuses []string
	Users    []string
	// IncludeLogs also returns log events, which are filtered out by
	// default.
	IncludeLogs bool
	HasChildren *bool
	// NewerThan and OlderThan take ISO-8601 timestamps.
	NewerThan string
	OlderThan string
	Fields    []string
	// Limit caps the total number of events fetched across pages. Strongly
	// recommended together with descending Order.
	Limit int
	Order graphql.SortOrder
}

// ActivityListOptions filters ActivitiesClient.List.
type ActivityListOptions struct {
	IDs           []string
	ActivityTypes []string
	EntityIDs     []string
	EntityNames   []string
	EntityType    string
	// ChangedAfter and ChangedBefore take ISO-8601 timestamps.
	ChangedAfter   string
	ChangedBefore  string
	ReferenceTypes []string
	Fields         []string
	Limit          int
	Order          graphql.SortOrder
}

// LinkOptions filters the Links methods of entity clients.
type LinkOptions struct {
	// Types keeps only links of the given link types.
	Types []string
	// Direction keeps only incoming ("in") or outgoing ("out") links.
	Direction string
	// Names keeps only links with the given names.
	Names []string
	// NameRegex keeps only links whose name matches the regex.
	NameRegex string
}
