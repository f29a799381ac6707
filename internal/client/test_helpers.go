package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/fivetwenty-io/slate-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/slate-client/internal/http"
)

// NewTestClient creates a client posting to the given test server URL.
func NewTestClient(baseURL string) *Client {
	transport := internalhttp.NewClient(baseURL + constants.GraphQLPath)

	return NewWithTransport(transport, nil)
}

// recordedRequest is one GraphQL request captured by a scripted server.
type recordedRequest struct {
	Query     string
	Variables map[string]any
}

// graphqlServer answers each request with the next scripted response body
// and records what it was asked. Requests past the end of the script get an
// empty data object, which the query engine rejects, so an overrunning test
// fails loudly instead of looping.
type graphqlServer struct {
	*httptest.Server

	mu        sync.Mutex
	requests  []recordedRequest
	responses []string
}

// newGraphQLServer starts a scripted GraphQL endpoint.
func newGraphQLServer(t *testing.T, responses ...string) *graphqlServer {
	t.Helper()

	server := &graphqlServer{responses: responses}
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}

		server.mu.Lock()
		index := len(server.requests)
		server.requests = append(server.requests, recordedRequest{
			Query:     request.Query,
			Variables: request.Variables,
		})
		server.mu.Unlock()

		body := `{"data": {}}`
		if index < len(server.responses) {
			body = server.responses[index]
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

// Requests returns a copy of the requests handled so far.
func (s *graphqlServer) Requests() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]recordedRequest(nil), s.requests...)
}
