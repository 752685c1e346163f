// Package webmock provides a web-application stand-in: a fixed testing
// configuration and a test client served by an in-process httptest server
// that always answers with the canned httpmock response.
package webmock

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arthur-debert/testkit/pkg/httpmock"
)

// App simulates a web application configured for testing.
type App struct {
	Config map[string]interface{}
}

// NewApp returns an app stand-in with the fixed testing configuration.
func NewApp() *App {
	return &App{
		Config: map[string]interface{}{
			"TESTING":    true,
			"DEBUG":      true,
			"SECRET_KEY": "test_secret_key",
		},
	}
}

// Result is the outcome of a test-client request.
type Result struct {
	StatusCode int
	Body       string
	Header     http.Header
}

// Client issues requests against the app's in-process test server.
type Client struct {
	base string
	http *http.Client
}

// TestClient starts an in-process server answering every route with the
// canned response and returns a client bound to it. The server shuts down
// with the test.
func (a *App) TestClient(t *testing.T) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, httpmock.DefaultBody)
	}))
	t.Cleanup(server.Close)

	return &Client{base: server.URL, http: server.Client()}
}

// Get performs a GET against the test server. Transport failures fail the
// test as setup errors.
func (c *Client) Get(t *testing.T, path string) *Result {
	t.Helper()

	resp, err := c.http.Get(c.base + path)
	if err != nil {
		t.Fatalf("test client GET %s: %v", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("test client read body: %v", err)
	}

	return &Result{
		StatusCode: resp.StatusCode,
		Body:       string(body),
		Header:     resp.Header,
	}
}
