// Package slateclient provides the primary entry point for constructing a
// Slate client that implements the slate.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// entity interfaces and types defined in the slate package. Most
// applications should import slateclient to build a client, then use the
// returned slate.Client to access entity-specific clients, for example
// Folders(), Tasks(), Versions(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/slate-client/pkg/slate"
//	  "github.com/fivetwenty-io/slate-client/pkg/slateclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // With a service API key:
//	  cli, err := slateclient.New(&slate.Config{
//	    ServerURL: "https://slate.example.com",
//	    APIKey:    "sk-service-key",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a user session token you already have:
//	  cli, err = slateclient.New(&slate.Config{
//	    ServerURL:   "https://slate.example.com",
//	    AccessToken: "eyJhbGciOi...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use entity clients via the slate.Client interface
//	  tasks, err := cli.Tasks().List(ctx, "demo_commercial", &slate.TaskListOptions{
//	    Statuses: []string{"In progress"},
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = tasks
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithAPIKey,
// NewWithToken, and NewFromEnv that wrap New with the appropriate
// configuration. NewFromEnv is the form services use; it picks the server
// URL and credentials up from SLATE_SERVER_URL, SLATE_API_KEY, and
// SLATE_ACCESS_TOKEN.
package slateclient
