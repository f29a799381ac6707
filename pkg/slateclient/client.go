// Package slateclient provides the main entry point for creating Slate
// production-tracking server clients.
package slateclient

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fivetwenty-io/slate-client/internal/client"
	"github.com/fivetwenty-io/slate-client/internal/constants"
	"github.com/fivetwenty-io/slate-client/pkg/slate"
)

// New creates a new Slate client from the given configuration.
func New(config *slate.Config) (slate.Client, error) {
	if config == nil {
		return nil, slate.ErrConfigRequired
	}

	if config.ServerURL == "" {
		return nil, slate.ErrServerURLRequired
	}

	cli, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return cli, nil
}

// NewWithAPIKey creates a new client authenticating with a service API key.
func NewWithAPIKey(serverURL, apiKey string) (slate.Client, error) {
	return New(&slate.Config{
		ServerURL: serverURL,
		APIKey:    apiKey,
	})
}

// NewWithToken creates a new client authenticating with a user session
// token.
func NewWithToken(serverURL, token string) (slate.Client, error) {
	return New(&slate.Config{
		ServerURL:   serverURL,
		AccessToken: token,
	})
}

// NewFromEnv creates a new client configured from the environment. It reads
// SLATE_SERVER_URL, SLATE_API_KEY, SLATE_ACCESS_TOKEN, and SLATE_TIMEOUT
// (seconds). Services running next to a Slate server are started with these
// set.
func NewFromEnv() (slate.Client, error) {
	serverURL := os.Getenv(constants.EnvServerURL)
	if serverURL == "" {
		return nil, fmt.Errorf("%w: %s is not set", slate.ErrServerURLRequired, constants.EnvServerURL)
	}

	config := &slate.Config{
		ServerURL:   serverURL,
		APIKey:      os.Getenv(constants.EnvAPIKey),
		AccessToken: os.Getenv(constants.EnvAccessToken),
	}

	if raw := os.Getenv(constants.EnvTimeout); raw != "" {
		seconds, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", constants.EnvTimeout, err)
		}

		config.HTTPTimeout = time.Duration(seconds * float64(time.Second))
	}

	return New(config)
}
