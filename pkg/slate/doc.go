// Package slate provides types, interfaces, and helpers for working with a
// Slate production-tracking server.
//
// # Overview
//
// The slate package defines the domain types (e.g., Project, Folder, Task,
// Product, Version) and the interfaces for entity-oriented clients (e.g.,
// FoldersClient, TasksClient). A concrete implementation of these clients is
// provided by the slateclient package, which wires configuration, transport,
// and authentication. Most consumers should import slateclient to construct a
// client and then interact with the entity client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := slateclient.New(&slate.Config{
//	    ServerURL: "https://slate.example.com",
//	    APIKey:    "sk-service-key",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  folders, err := cli.Folders().List(ctx, "demo_commercial", &slate.FolderListOptions{
//	    FolderTypes: []string{"Shot"},
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = folders
//	}
//
// # Listing and filtering
//
// Every entity client exposes a List method taking a typed options struct.
// Options translate to server-side filters where the server supports them;
// the Fields option narrows the returned attributes, and Limit caps the total
// number of entities fetched across pages. Paging is handled internally, one
// relay page at a time.
//
// # Custom queries
//
// The underlying GraphQL transport is exposed for queries the typed surface
// does not cover:
//
//	query := graphql.NewQuery("ProjectsQuery")
//	projects := query.AddFieldWithEdges("projects")
//	projects.AddField("name")
//
//	result, err := query.Execute(ctx, cli.GraphQL())
//
// # Errors
//
// Server-reported query failures are represented by graphql.QueryFailedError
// and can be detected with graphql.IsQueryFailed. Lookups of a single entity
// that does not exist return (nil, nil) rather than an error, mirroring how
// the server reports absence.
package slate
