package constants

import "errors"

// CLI configuration errors.
var (
	ErrNoServerConfigured = errors.New("no server configured, set SLATE_SERVER_URL or run 'slate login'")
	ErrNotAuthenticated   = errors.New("not authenticated, set SLATE_API_KEY or run 'slate login'")
	ErrNoProjectSelected  = errors.New("no project selected, pass --project or set SLATE_PROJECT")
)

// CLI input errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json or yaml")
	ErrEmptyQueryDocument  = errors.New("query document is empty")
	ErrUnknownConfigKey    = errors.New("unknown config key, expected server_url, api_key or access_token")
	ErrInvalidVariable     = errors.New("invalid variable, expected key=value")
)
