package slate

import (
	"time"

	"github.com/fivetwenty-io/slate-client/pkg/graphql"
)

// ProductionClients provides access to the core production hierarchy.
type ProductionClients interface {
	Projects() ProjectsClient
	Folders() FoldersClient
	Tasks() TasksClient
}

// PublishClients provides access to published content clients.
type PublishClients interface {
	Products() ProductsClient
	Versions() VersionsClient
	Representations() RepresentationsClient
	Workfiles() WorkfilesClient
}

// AccountClients provides access to identity and audit clients.
type AccountClients interface {
	Users() UsersClient
	Events() EventsClient
	Activities() ActivitiesClient
}

// Client provides access to all entity-specific clients.
type Client interface {
	// Composite interfaces for related entity groups
	ProductionClients
	PublishClients
	AccountClients

	// GraphQL exposes the authenticated transport for custom queries built
	// with the graphql package.
	GraphQL() graphql.Transport
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// Config represents client configuration for building a slate.Client.
//
// # Authentication precedence
//
// The following precedence is applied by the concrete client implementation
// (see pkg/slateclient and internal/http):
//  1. APIKey: if set, it is sent as the "x-api-key" header on every request.
//     Service accounts use this form.
//  2. AccessToken: if set (and APIKey is not), it is sent as a Bearer token in
//     the Authorization header. This is the form a user session produces.
//  3. No credentials: requests are sent without authentication. The server
//     will reject them unless it allows anonymous access.
//
// # Timeouts and retries
//
// Per-request timeouts should generally be controlled via context passed to
// client methods; HTTPTimeout bounds a single round trip as a safety net.
// Transient failures (>=500, 429, and connection errors) are retried with
// exponential backoff tunable via RetryMax/RetryWaitMin/RetryWaitMax.
type Config struct {
	// Required fields
	// ServerURL: base URL for the Slate server (e.g., "https://slate.example.com").
	// slateclient.New normalizes this value by trimming a trailing slash and
	// adding "https://" if no scheme is present. GraphQL requests are posted
	// to "<ServerURL>/graphql".
	ServerURL string

	// Authentication options (provide one)
	// APIKey: service API key sent as the "x-api-key" header.
	APIKey string
	// AccessToken: user session token sent as a Bearer token. Ignored when
	// APIKey is set.
	AccessToken string

	// Optional configurations
	// HTTPTimeout: optional per-round-trip timeout. Most client calls should
	// rely on context timeouts; if 0, a default is applied.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures. If 0, a
	// sensible default is used by the client.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
