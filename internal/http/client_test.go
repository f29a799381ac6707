package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	slatehttp "github.com/fivetwenty-io/slate-client/internal/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Execute(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/graphql", request.URL.Path)
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Contains(t, body["query"], "FoldersQuery")

			variables, _ := body["variables"].(map[string]interface{})
			assert.Equal(t, "demo", variables["projectName"])

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"data": map[string]interface{}{
					"project": map[string]interface{}{"name": "demo"},
				},
			})
		}))
		defer server.Close()

		client := slatehttp.NewClient(server.URL+"/graphql", slatehttp.WithAccessToken("test-token"))

		resp, err := client.Execute(context.Background(),
			"query FoldersQuery($projectName: String!) { project(name: $projectName) { name } }",
			map[string]any{"projectName": "demo"})
		require.NoError(t, err)
		assert.Empty(t, resp.Errors)

		project, ok := resp.Data["project"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "demo", project["name"])
	})

	t.Run("api key header", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "service-key", request.Header.Get("x-api-key"))
			assert.Empty(t, request.Header.Get("Authorization"))

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"data": map[string]interface{}{}})
		}))
		defer server.Close()

		client := slatehttp.NewClient(server.URL+"/graphql", slatehttp.WithAPIKey("service-key"))

		_, err := client.Execute(context.Background(), "query { projects { edges { node { name } } } }", nil)
		require.NoError(t, err)
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "pipeline-tool/2.0", request.Header.Get("User-Agent"))

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"data": map[string]interface{}{}})
		}))
		defer server.Close()

		client := slatehttp.NewClient(server.URL+"/graphql", slatehttp.WithUserAgent("pipeline-tool/2.0"))

		_, err := client.Execute(context.Background(), "query { projects { edges { node { name } } } }", nil)
		require.NoError(t, err)
	})

	t.Run("server reported errors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"data": nil,
				"errors": []map[string]interface{}{
					{
						"message":   "project not found",
						"locations": []map[string]int{{"line": 1, "column": 9}},
					},
				},
			})
		}))
		defer server.Close()

		client := slatehttp.NewClient(server.URL + "/graphql")

		resp, err := client.Execute(context.Background(), "query { project(name: \"missing\") { name } }", nil)
		require.NoError(t, err)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "project not found", resp.Errors[0].Message)
	})

	t.Run("http error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"detail": "invalid token"}`))
		}))
		defer server.Close()

		client := slatehttp.NewClient(server.URL + "/graphql")

		resp, err := client.Execute(context.Background(), "query { projects { edges { node { name } } } }", nil)
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.Contains(t, err.Error(), "posting graphql query")
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"data": map[string]interface{}{}})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := slatehttp.NewClient(server.URL+"/graphql", slatehttp.WithLogger(logger), slatehttp.WithDebug(true))

		_, err := client.Execute(context.Background(), "query { projects { edges { node { name } } } }", nil)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusInternalServerError)

				return
			}

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"data": map[string]interface{}{"ok": true},
			})
		}))
		defer server.Close()

		client := slatehttp.NewClient(server.URL+"/graphql",
			slatehttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Execute(context.Background(), "query { ok }", nil)
		require.NoError(t, err)
		assert.Equal(t, true, resp.Data["ok"])
		assert.Equal(t, 3, attempts)
	})

	t.Run("retries on rate limiting", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 2 {
				writer.WriteHeader(http.StatusTooManyRequests)

				return
			}

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"data": map[string]interface{}{"ok": true},
			})
		}))
		defer server.Close()

		client := slatehttp.NewClient(server.URL+"/graphql",
			slatehttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		_, err := client.Execute(context.Background(), "query { ok }", nil)
		require.NoError(t, err)
		assert.Equal(t, 2, attempts)
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := slatehttp.NewClient(server.URL+"/graphql",
			slatehttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		_, err := client.Execute(context.Background(), "query { ok }", nil)
		require.Error(t, err)
		assert.Equal(t, 1, attempts) // Should not retry
	})
}
