// Package constants centralizes defaults shared by the client, transport
// and CLI layers.
package constants

import "time"

// ClientVersion is the library version reported in the User-Agent header.
const ClientVersion = "0.1.0"

// DefaultUserAgent identifies this client to the server.
const DefaultUserAgent = "slate-client-go/" + ClientVersion

// GraphQLPath is the server's GraphQL endpoint, relative to the base URL.
const GraphQLPath = "/graphql"

// Environment variables honored by NewFromEnv and the CLI.
const (
	// EnvServerURL holds the server base URL.
	EnvServerURL = "SLATE_SERVER_URL"

	// EnvAPIKey holds a service account API key.
	EnvAPIKey = "SLATE_API_KEY"

	// EnvAccessToken holds a user session token.
	EnvAccessToken = "SLATE_ACCESS_TOKEN"

	// EnvTimeout holds the request timeout in seconds.
	EnvTimeout = "SLATE_TIMEOUT"

	// EnvDefaultProject holds the project the CLI falls back to when no
	// --project flag is given.
	EnvDefaultProject = "SLATE_PROJECT"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as connectivity
	// checks.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Output format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output format.
	FormatTable = "table"
)

// Display limits.
const (
	// DefaultListLimit caps rows fetched by CLI list commands. Zero
	// means unlimited in the client API; the CLI always bounds output.
	DefaultListLimit = 500

	// BodyDisplayLength truncates long activity bodies in table output.
	BodyDisplayLength = 60

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"
)
