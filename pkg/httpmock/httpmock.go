// Package httpmock provides an inert HTTP client stand-in. Every verb on
// the client returns the identical canned response; nothing ever reaches a
// real network boundary.
package httpmock

import (
	"encoding/json"
	"net/http"
)

// DefaultBody is the canned response body.
const DefaultBody = `{"status": "ok", "data": []}`

// Response is a canned result of a simulated HTTP call. It is never
// mutated after construction.
type Response struct {
	StatusCode int
	headers    map[string]string
	body       []byte
}

// JSON decodes the canned body into v.
func (r *Response) JSON(v interface{}) error {
	return json.Unmarshal(r.body, v)
}

// Text returns the canned body as a string.
func (r *Response) Text() string {
	return string(r.body)
}

// Header returns the canned header value for key, or "".
func (r *Response) Header(key string) string {
	return r.headers[key]
}

// Call records one simulated request.
type Call struct {
	Method string
	URL    string
}

// Client simulates an HTTP client. All five verbs return the same canned
// response with no argument-dependent branching.
type Client struct {
	response *Response
	calls    []Call
}

// Option customizes the canned response a Client returns.
type Option func(*Response)

// WithStatus overrides the canned status code.
func WithStatus(code int) Option {
	return func(r *Response) { r.StatusCode = code }
}

// WithBody overrides the canned body.
func WithBody(body string) Option {
	return func(r *Response) { r.body = []byte(body) }
}

// WithHeader sets a canned header.
func WithHeader(key, value string) Option {
	return func(r *Response) { r.headers[key] = value }
}

// NewClient builds a client whose canned response defaults to status 200,
// body DefaultBody and a JSON content type.
func NewClient(opts ...Option) *Client {
	resp := &Response{
		StatusCode: http.StatusOK,
		headers:    map[string]string{"Content-Type": "application/json"},
		body:       []byte(DefaultBody),
	}
	for _, opt := range opts {
		opt(resp)
	}
	return &Client{response: resp}
}

// Get simulates a GET request.
func (c *Client) Get(url string) *Response {
	return c.record("GET", url)
}

// Post simulates a POST request. The body is accepted and ignored.
func (c *Client) Post(url string, body interface{}) *Response {
	return c.record("POST", url)
}

// Put simulates a PUT request. The body is accepted and ignored.
func (c *Client) Put(url string, body interface{}) *Response {
	return c.record("PUT", url)
}

// Delete simulates a DELETE request.
func (c *Client) Delete(url string) *Response {
	return c.record("DELETE", url)
}

// Patch simulates a PATCH request. The body is accepted and ignored.
func (c *Client) Patch(url string, body interface{}) *Response {
	return c.record("PATCH", url)
}

func (c *Client) record(method, url string) *Response {
	c.calls = append(c.calls, Call{Method: method, URL: url})
	return c.response
}

// Calls returns the recorded requests in order.
func (c *Client) Calls() []Call {
	return c.calls
}

// CallCount returns how many requests were recorded for method.
func (c *Client) CallCount(method string) int {
	n := 0
	for _, call := range c.calls {
		if call.Method == method {
			n++
		}
	}
	return n
}
