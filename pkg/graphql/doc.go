// Package graphql builds and executes relay-style paginated GraphQL queries
// against the Slate server.
//
// # Overview
//
// A Query is a tree of named fields. Plain fields map one-to-one onto object
// fields in the response; edge fields model relay connections
// (edges/node/cursor/pageInfo) and page themselves transparently. The query
// compiles to wire text with Build, and Execute or Stream run the fetch loop
// against a Transport, merging every page into one accumulator.
//
// Building a query
//
//	query := graphql.NewQuery("FoldersQuery")
//	projectName, _ := query.AddVariable("projectName", "String!")
//
//	project := query.AddField("project")
//	project.SetFilter("name", projectName)
//
//	folders := project.AddFieldWithEdges("folders")
//	folders.AddField("id")
//	folders.AddField("name")
//
//	_ = query.SetVariableValue("projectName", "demo")
//
// # Pagination
//
// Edge fields request pages of 300 nodes by default and keep their own
// cursor. Nested edge fields advance in lock step: an outer cursor only
// moves once every inner connection under the current outer page is
// exhausted, and already-merged outer rows are re-identified by edge cursor
// so replayed pages never duplicate them. SetLimit caps the total number of
// fetched nodes and clamps the last page size to the remaining budget.
//
// # Execution
//
// Execute loops until no field in the tree needs another round trip and
// returns the fully merged result. Stream returns an iterator that yields
// after every round trip when the tree holds at most one edge field, or a
// single fully merged result when several pagination dimensions exist:
//
//	stream := query.Stream(transport)
//	for stream.HasNext() {
//	    page, err := stream.Next(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    _ = page
//	}
//
// A Query is single use. Once executed to completion it reports no pending
// pages and will not issue further round trips; build a fresh tree for a
// fresh execution. Queries are not safe for concurrent use.
//
// # Errors
//
// Server-reported errors surface as *QueryFailedError carrying the raw
// error list, the compiled query text, and the variables used. Responses
// whose shape does not match the field tree fail loudly with *ShapeError.
package graphql
