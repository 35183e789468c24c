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

package framework

import (
	"errors"
	"fmt"
	"sync"

	"github.com/playwright-community/playwright-go"

	"github.com/meridianqa/todo-suite/test/api"
	"github.com/meridianqa/todo-suite/test/pages"
)

// ErrUninitialized is returned when a helper accessor runs before the session
// handle it depends on has been recorded. This is always a test-authoring bug,
// never an environment failure, so it is surfaced immediately rather than
// retried or defaulted.
var ErrUninitialized = errors.New("dependency container: session not initialized")

type sessionKind string

const (
	pageSession sessionKind = "page"
	apiSession  sessionKind = "api"
)

// Dependency names used as cache keys.
const (
	depTodoPage    = "todo-page"
	depDocsPage    = "docs-page"
	depTodoStorage = "todo-storage"
	depAPIClient   = "api-client"
)

type cacheEntry struct {
	kind     sessionKind
	instance any
}

// Container lazily constructs and caches the stateful helpers a test uses:
// page objects and the local-storage probe (built on a playwright.Page) and
// the API client (built on a playwright.APIRequestContext).
//
// One container per test execution. The container references the session
// handles but does not own them; the test lifecycle creates and closes them.
type Container struct {
	config *TestConfig

	mu      sync.RWMutex
	page    playwright.Page
	request playwright.APIRequestContext
	cache   map[string]cacheEntry
}

// NewContainer creates an empty container. Helpers cannot be resolved until
// the relevant Initialize* call has recorded a session handle.
func NewContainer(config *TestConfig) *Container {
	return &Container{
		config: config,
		cache:  make(map[string]cacheEntry),
	}
}

// InitializePage records the page handle used for subsequent page-object
// construction. Any helpers already cached against a previous page are
// invalidated so they are rebuilt against the new one; API-backed helpers
// are left alone.
func (c *Container) InitializePage(page playwright.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.page = page
	c.invalidateLocked(pageSession)
}

// InitializeRequest records the API request handle. Cached API-backed helpers
// are invalidated; page-backed helpers are left alone.
func (c *Container) InitializeRequest(request playwright.APIRequestContext) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.request = request
	c.invalidateLocked(apiSession)
}

// ClearCache discards all cached helper instances while keeping the recorded
// session handles. Idempotent.
func (c *Container) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[string]cacheEntry)
}

// invalidateLocked drops every cached helper keyed to the given session kind.
// Callers must hold the write lock.
func (c *Container) invalidateLocked(kind sessionKind) {
	for name, entry := range c.cache {
		if entry.kind == kind {
			delete(c.cache, name)
		}
	}
}

// requireSessionLocked checks the construction precondition for the given
// session kind. Callers must hold at least the read lock.
func (c *Container) requireSessionLocked(kind sessionKind) error {
	switch kind {
	case pageSession:
		if c.page == nil {
			return fmt.Errorf("%w: no page handle recorded (call InitializePage first)", ErrUninitialized)
		}
	case apiSession:
		if c.request == nil {
			return fmt.Errorf("%w: no API request handle recorded (call InitializeRequest first)", ErrUninitialized)
		}
	}

	return nil
}

// resolve returns the cached instance for name, constructing and caching it
// on first use. Construction is pure object composition; no I/O happens here.
func (c *Container) resolve(name string, kind sessionKind, build func() any) (any, error) {
	c.mu.RLock()
	entry, ok := c.cache[name]
	c.mu.RUnlock()

	if ok {
		return entry.instance, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.cache[name]; ok {
		return entry.instance, nil
	}

	if err := c.requireSessionLocked(kind); err != nil {
		return nil, fmt.Errorf("resolving %q: %w", name, err)
	}

	instance := build()
	c.cache[name] = cacheEntry{kind: kind, instance: instance}

	return instance, nil
}

// TodoPage returns the cached todo app page object, constructing it on first
// use against the recorded page handle.
func (c *Container) TodoPage() (*pages.TodoPage, error) {
	instance, err := c.resolve(depTodoPage, pageSession, func() any {
		return pages.NewTodoPage(c.page, c.config.TodoBaseURL)
	})
	if err != nil {
		return nil, err
	}

	return instance.(*pages.TodoPage), nil //nolint:forcetypeassert // cache entries are keyed by constructor
}

// DocsPage returns the cached documentation site page object.
func (c *Container) DocsPage() (*pages.DocsPage, error) {
	instance, err := c.resolve(depDocsPage, pageSession, func() any {
		return pages.NewDocsPage(c.page, c.config.DocsBaseURL)
	})
	if err != nil {
		return nil, err
	}

	return instance.(*pages.DocsPage), nil //nolint:forcetypeassert // cache entries are keyed by constructor
}

// TodoStorage returns the cached local-storage probe for the todo app.
func (c *Container) TodoStorage() (*pages.TodoStorage, error) {
	instance, err := c.resolve(depTodoStorage, pageSession, func() any {
		return pages.NewTodoStorage(c.page)
	})
	if err != nil {
		return nil, err
	}

	return instance.(*pages.TodoStorage), nil //nolint:forcetypeassert // cache entries are keyed by constructor
}

// API returns the cached REST API client.
func (c *Container) API() (*api.Client, error) {
	instance, err := c.resolve(depAPIClient, apiSession, func() any {
		return api.NewClient(c.request, api.Options{
			LogRequests:  c.config.LogRequests,
			LogResponses: c.config.LogResponses,
		})
	})
	if err != nil {
		return nil, err
	}

	return instance.(*api.Client), nil //nolint:forcetypeassert // cache entries are keyed by constructor
}

// FreshTodoPage constructs a new, non-cached todo page object. The cached
// instance, if any, is untouched. Useful when a test wants two independent
// page objects against the same page.
func (c *Container) FreshTodoPage() (*pages.TodoPage, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.requireSessionLocked(pageSession); err != nil {
		return nil, fmt.Errorf("resolving %q: %w", depTodoPage, err)
	}

	return pages.NewTodoPage(c.page, c.config.TodoBaseURL), nil
}

// FreshDocsPage constructs a new, non-cached docs page object.
func (c *Container) FreshDocsPage() (*pages.DocsPage, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.requireSessionLocked(pageSession); err != nil {
		return nil, fmt.Errorf("resolving %q: %w", depDocsPage, err)
	}

	return pages.NewDocsPage(c.page, c.config.DocsBaseURL), nil
}

// FreshTodoStorage constructs a new, non-cached local-storage probe.
func (c *Container) FreshTodoStorage() (*pages.TodoStorage, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.requireSessionLocked(pageSession); err != nil {
		return nil, fmt.Errorf("resolving %q: %w", depTodoStorage, err)
	}

	return pages.NewTodoStorage(c.page), nil
}

// FreshAPI constructs a new, non-cached API client.
func (c *Container) FreshAPI() (*api.Client, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.requireSessionLocked(apiSession); err != nil {
		return nil, fmt.Errorf("resolving %q: %w", depAPIClient, err)
	}

	return api.NewClient(c.request, api.Options{
		LogRequests:  c.config.LogRequests,
		LogResponses: c.config.LogResponses,
	}), nil
}
