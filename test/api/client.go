/*
Copyright 2025-2026 the Meridian QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:err113 // dynamic errors acceptable in test code
package api

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/playwright-community/playwright-go"
)

// Options configures request/response logging on the client.
type Options struct {
	LogRequests  bool
	LogResponses bool
}

// Client is a thin, typed wrapper over a playwright.APIRequestContext. The
// request context carries the base URL and timeout; the client adds endpoint
// knowledge, trace-context propagation and status handling.
type Client struct {
	request   playwright.APIRequestContext
	endpoints *Endpoints
	options   Options
}

// NewClient creates a client over the given request handle. Construction
// performs no I/O.
func NewClient(request playwright.APIRequestContext, options Options) *Client {
	return &Client{
		request:   request,
		endpoints: NewEndpoints(),
		options:   options,
	}
}

// logError logs a generic error with trace context.
func (c *Client) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *Client) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *Client) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// doRequest issues one request through the request handle. When
// expectedStatus is positive any other status is turned into an error
// carrying the body and trace ID.
func (c *Client) doRequest(method, path string, data interface{}, expectedStatus int) (int, []byte, error) {
	traceParent := createTraceParent()
	headers := map[string]string{
		"Traceparent": traceParent,
		"Tracestate":  "test-automation=ginkgo",
	}

	var (
		resp playwright.APIResponse
		err  error
	)

	start := time.Now()

	switch method {
	case http.MethodGet:
		resp, err = c.request.Get(path, playwright.APIRequestContextGetOptions{Headers: headers})
	case http.MethodPost:
		resp, err = c.request.Post(path, playwright.APIRequestContextPostOptions{Headers: headers, Data: data})
	case http.MethodPut:
		resp, err = c.request.Put(path, playwright.APIRequestContextPutOptions{Headers: headers, Data: data})
	case http.MethodPatch:
		resp, err = c.request.Patch(path, playwright.APIRequestContextPatchOptions{Headers: headers, Data: data})
	case http.MethodDelete:
		resp, err = c.request.Delete(path, playwright.APIRequestContextDeleteOptions{Headers: headers})
	default:
		return 0, nil, fmt.Errorf("unsupported method %q", method)
	}

	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return 0, nil, fmt.Errorf("http request failed: %w", err)
	}

	body, err := resp.Body()
	if err != nil {
		c.logError(method, path, duration, traceParent, err, "reading response body")
		return resp.Status(), nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.options.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.Status(), duration, traceParent)
	}

	if c.options.LogResponses && len(body) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(body))
	}

	if expectedStatus > 0 && resp.Status() != expectedStatus {
		c.logUnexpectedStatus(method, path, expectedStatus, resp.Status(), string(body), traceParent)
		return resp.Status(), body, fmt.Errorf("unexpected status code: expected %d, got %d, body: %s (trace ID: %s)", expectedStatus, resp.Status(), string(body), extractTraceID(traceParent))
	}

	return resp.Status(), body, nil
}

// getJSON issues a GET expecting 200 and unmarshals the body into out.
func (c *Client) getJSON(path, resource string, out interface{}) error {
	_, body, err := c.doRequest(http.MethodGet, path, nil, http.StatusOK)
	if err != nil {
		return fmt.Errorf("getting %s: %w", resource, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshaling %s response: %w", resource, err)
	}

	return nil
}

// ListPosts returns every post.
func (c *Client) ListPosts() ([]Post, error) {
	var posts []Post
	if err := c.getJSON(c.endpoints.ListPosts(), "posts", &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// GetPost retrieves a single post by ID.
func (c *Client) GetPost(postID int) (*Post, error) {
	var post Post
	if err := c.getJSON(c.endpoints.GetPost(postID), "post", &post); err != nil {
		return nil, err
	}

	return &post, nil
}

// ListPostsByUser returns every post authored by the given user.
func (c *Client) ListPostsByUser(userID int) ([]Post, error) {
	var posts []Post
	if err := c.getJSON(c.endpoints.ListPostsByUser(userID), "posts by user", &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// CreatePost creates a new post and returns the server's echo of it.
func (c *Client) CreatePost(payload map[string]interface{}) (*Post, error) {
	_, body, err := c.doRequest(http.MethodPost, c.endpoints.CreatePost(), payload, http.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	var post Post
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, fmt.Errorf("unmarshaling created post: %w", err)
	}

	return &post, nil
}

// UpdatePost replaces a post and returns the updated resource.
func (c *Client) UpdatePost(postID int, payload map[string]interface{}) (*Post, error) {
	_, body, err := c.doRequest(http.MethodPut, c.endpoints.UpdatePost(postID), payload, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}

	var post Post
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, fmt.Errorf("unmarshaling updated post: %w", err)
	}

	return &post, nil
}

// PatchPost partially updates a post and returns the merged resource.
func (c *Client) PatchPost(postID int, fields map[string]interface{}) (*Post, error) {
	_, body, err := c.doRequest(http.MethodPatch, c.endpoints.UpdatePost(postID), fields, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("patching post: %w", err)
	}

	var post Post
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, fmt.Errorf("unmarshaling patched post: %w", err)
	}

	return &post, nil
}

// DeletePost deletes a post.
func (c *Client) DeletePost(postID int) error {
	if _, _, err := c.doRequest(http.MethodDelete, c.endpoints.DeletePost(postID), nil, http.StatusOK); err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}

	return nil
}

// ListPostComments returns the comments nested under a post.
func (c *Client) ListPostComments(postID int) ([]Comment, error) {
	var comments []Comment
	if err := c.getJSON(c.endpoints.ListPostComments(postID), "post comments", &comments); err != nil {
		return nil, err
	}

	return comments, nil
}

// ListCommentsByPost returns the comments for a post via the query-parameter
// form of the endpoint.
func (c *Client) ListCommentsByPost(postID int) ([]Comment, error) {
	var comments []Comment
	if err := c.getJSON(c.endpoints.ListCommentsByPost(postID), "comments by post", &comments); err != nil {
		return nil, err
	}

	return comments, nil
}

// ListUsers returns every user.
func (c *Client) ListUsers() ([]User, error) {
	var users []User
	if err := c.getJSON(c.endpoints.ListUsers(), "users", &users); err != nil {
		return nil, err
	}

	return users, nil
}

// GetUser retrieves a single user by ID.
func (c *Client) GetUser(userID int) (*User, error) {
	var user User
	if err := c.getJSON(c.endpoints.GetUser(userID), "user", &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetRaw issues a GET without status expectations and returns the raw status
// and body. Used by tests that assert on error responses directly.
func (c *Client) GetRaw(path string) (int, []byte, error) {
	return c.doRequest(http.MethodGet, path, nil, 0)
}
