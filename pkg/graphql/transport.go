package graphql

import (
	"context"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Transport executes one compiled GraphQL document against a server. The
// query engine never inspects HTTP concerns; timeouts and retries belong to
// the implementation behind this interface.
type Transport interface {
	Execute(ctx context.Context, query string, variables map[string]any) (*Response, error)
}

// Response is the parsed GraphQL response envelope. A non-empty error list
// fails the execution with *QueryFailedError; transport-level failures are
// returned as plain errors by Execute instead.
type Response struct {
	Data   map[string]any
	Errors gqlerror.List
}
