// Package client implements the public Slate client interfaces on top of
// the GraphQL transport. Each entity type gets its own client; they share
// the paginated listing flow in list.go and the query builders in
// queries.go.
package client

import (
	"strings"

	"github.com/fivetwenty-io/slate-client/internal/constants"
	"github.com/fivetwenty-io/slate-client/internal/http"
	"github.com/fivetwenty-io/slate-client/pkg/graphql"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// Client implements the slate.Client interface.
type Client struct {
	transport graphql.Transport
	logger    slate.Logger

	// Entity clients
	projects        slate.ProjectsClient
	folders         slate.FoldersClient
	tasks           slate.TasksClient
	products        slate.ProductsClient
	versions        slate.VersionsClient
	representations slate.RepresentationsClient
	workfiles       slate.WorkfilesClient
	users           slate.UsersClient
	events          slate.EventsClient
	activities      slate.ActivitiesClient
}

// New creates a new Slate client from the given configuration.
func New(config *slate.Config) (*Client, error) {
	if config == nil {
		return nil, slate.ErrConfigRequired
	}

	if config.ServerURL == "" {
		return nil, slate.ErrServerURLRequired
	}

	endpoint := NormalizeServerURL(config.ServerURL) + constants.GraphQLPath
	transport := http.NewClient(endpoint, transportOptions(config)...)

	return NewWithTransport(transport, config.Logger), nil
}

// NewWithTransport creates a client around an existing transport. Callers
// that manage their own HTTP stack use this entry point.
func NewWithTransport(transport graphql.Transport, logger slate.Logger) *Client {
	client := &Client{
		transport: transport,
		logger:    logger,
	}

	client.initializeEntityClients()

	return client
}

// NormalizeServerURL trims surrounding whitespace and trailing slashes and
// defaults the scheme to https when none is given.
func NormalizeServerURL(serverURL string) string {
	serverURL = strings.TrimRight(strings.TrimSpace(serverURL), "/")
	if serverURL != "" && !strings.Contains(serverURL, "://") {
		serverURL = "https://" + serverURL
	}

	return serverURL
}

// transportOptions builds transport options from config.
func transportOptions(config *slate.Config) []http.Option {
	var opts []http.Option

	// The API key wins when both credentials are set, matching the header
	// precedence of the transport itself.
	switch {
	case config.APIKey != "":
		opts = append(opts, http.WithAPIKey(config.APIKey))
	case config.AccessToken != "":
		opts = append(opts, http.WithAccessToken(config.AccessToken))
	}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	// RetryMax zero means the default policy, negative disables retries.
	if config.RetryMax >= 0 {
		retryMax := config.RetryMax
		if retryMax == 0 {
			retryMax = constants.DefaultRetryMax
		}

		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(retryMax, retryWaitMin, retryWaitMax))
	}

	return opts
}

// initializeEntityClients initializes all entity-specific clients.
func (c *Client) initializeEntityClients() {
	c.projects = NewProjectsClient(c.transport)
	c.folders = NewFoldersClient(c.transport)
	c.tasks = NewTasksClient(c.transport)
	c.products = NewProductsClient(c.transport)
	c.versions = NewVersionsClient(c.transport)
	c.representations = NewRepresentationsClient(c.transport)
	c.workfiles = NewWorkfilesClient(c.transport)
	c.users = NewUsersClient(c.transport)
	c.events = NewEventsClient(c.transport)
	c.activities = NewActivitiesClient(c.transport)
}

// Entity client accessors

// Projects implements slate.Client.Projects.
func (c *Client) Projects() slate.ProjectsClient {
	return c.projects
}

// Folders implements slate.Client.Folders.
func (c *Client) Folders() slate.FoldersClient {
	return c.folders
}

// Tasks implements slate.Client.Tasks.
func (c *Client) Tasks() slate.TasksClient {
	return c.tasks
}

// Products implements slate.Client.Products.
func (c *Client) Products() slate.ProductsClient {
	return c.products
}

// Versions implements slate.Client.Versions.
func (c *Client) Versions() slate.VersionsClient {
	return c.versions
}

// Representations implements slate.Client.Representations.
func (c *Client) Representations() slate.RepresentationsClient {
	return c.representations
}

// Workfiles implements slate.Client.Workfiles.
func (c *Client) Workfiles() slate.WorkfilesClient {
	return c.workfiles
}

// Users implements slate.Client.Users.
func (c *Client) Users() slate.UsersClient {
	return c.users
}

// Events implements slate.Client.Events.
func (c *Client) Events() slate.EventsClient {
	return c.events
}

// Activities implements slate.Client.Activities.
func (c *Client) Activities() slate.ActivitiesClient {
	return c.activities
}

// GraphQL implements slate.Client.GraphQL.
func (c *Client) GraphQL() graphql.Transport {
	return c.transport
}

// loggerAdapter adapts slate.Logger to http.Logger.
type loggerAdapter struct {
	logger slate.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
