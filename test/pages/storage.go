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

package pages

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// storageKey is where the TodoMVC React implementation persists its state.
const storageKey = "react-todos"

// StoredTodo is one persisted todo entry. Unknown fields (internal ids) are
// ignored on purpose.
type StoredTodo struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TodoStorage inspects the todo app's local-storage state through the page
// handle. The app writes asynchronously after each action, so readers that
// follow a write should poll via WaitForCount.
type TodoStorage struct {
	page playwright.Page
}

// NewTodoStorage creates the probe. Construction performs no I/O.
func NewTodoStorage(page playwright.Page) *TodoStorage {
	return &TodoStorage{page: page}
}

// Todos returns the persisted todo entries.
func (s *TodoStorage) Todos() ([]StoredTodo, error) {
	raw, err := s.page.Evaluate(fmt.Sprintf("() => localStorage[%q] || '[]'", storageKey))
	if err != nil {
		return nil, fmt.Errorf("reading local storage: %w", err)
	}

	text, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected local storage value type %T", raw)
	}

	var todos []StoredTodo
	if err := json.Unmarshal([]byte(text), &todos); err != nil {
		return nil, fmt.Errorf("unmarshaling local storage todos: %w", err)
	}

	return todos, nil
}

// Count returns the number of persisted todos.
func (s *TodoStorage) Count() (int, error) {
	todos, err := s.Todos()
	if err != nil {
		return 0, err
	}

	return len(todos), nil
}

// CompletedCount returns the number of persisted todos marked completed.
func (s *TodoStorage) CompletedCount() (int, error) {
	todos, err := s.Todos()
	if err != nil {
		return 0, err
	}

	completed := 0

	for _, todo := range todos {
		if todo.Completed {
			completed++
		}
	}

	return completed, nil
}

// Titles returns the persisted todo titles in storage order.
func (s *TodoStorage) Titles() ([]string, error) {
	todos, err := s.Todos()
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(todos))
	for i, todo := range todos {
		titles[i] = todo.Title
	}

	return titles, nil
}

// WaitForCount polls until the persisted todo count reaches want or the
// timeout elapses. Read errors during polling are tolerated; the final
// attempt's error is returned.
func (s *TodoStorage) WaitForCount(want int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	for {
		count, err := s.Count()
		if err == nil && count == want {
			return nil
		}

		if time.Now().After(deadline) {
			if err != nil {
				return fmt.Errorf("waiting for %d stored todos: %w", want, err)
			}

			return fmt.Errorf("waiting for %d stored todos: have %d", want, count)
		}

		time.Sleep(100 * time.Millisecond)
	}
}
