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
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Filter is one of the todo list footer filters.
type Filter string

const (
	FilterAll       Filter = "All"
	FilterActive    Filter = "Active"
	FilterCompleted Filter = "Completed"
)

// TodoPage drives the TodoMVC application. It bundles the app's locators and
// exposes one-step actions; all I/O happens through the page handle supplied
// at construction time.
type TodoPage struct {
	page    playwright.Page
	baseURL string

	newTodo        playwright.Locator
	items          playwright.Locator
	counter        playwright.Locator
	clearCompleted playwright.Locator
	toggleAll      playwright.Locator
}

// NewTodoPage creates the page object. Construction performs no navigation.
func NewTodoPage(page playwright.Page, baseURL string) *TodoPage {
	return &TodoPage{
		page:           page,
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		newTodo:        page.GetByPlaceholder("What needs to be done?"),
		items:          page.Locator(".todo-list li"),
		counter:        page.Locator(".todo-count"),
		clearCompleted: page.Locator("button.clear-completed"),
		toggleAll:      page.GetByLabel("Mark all as complete"),
	}
}

// Open navigates to the todo application.
func (p *TodoPage) Open() error {
	if _, err := p.page.Goto(p.baseURL + "/"); err != nil {
		return fmt.Errorf("opening todo app: %w", err)
	}

	return nil
}

// Add creates a new todo with the given title.
func (p *TodoPage) Add(title string) error {
	if err := p.newTodo.Fill(title); err != nil {
		return fmt.Errorf("filling new todo input: %w", err)
	}

	if err := p.newTodo.Press("Enter"); err != nil {
		return fmt.Errorf("submitting new todo: %w", err)
	}

	return nil
}

// AddAll creates todos for every given title, in order.
func (p *TodoPage) AddAll(titles ...string) error {
	for _, title := range titles {
		if err := p.Add(title); err != nil {
			return err
		}
	}

	return nil
}

// item returns the list entry whose label matches title exactly.
func (p *TodoPage) item(title string) playwright.Locator {
	return p.items.Filter(playwright.LocatorFilterOptions{HasText: title})
}

// Toggle flips the completed state of the todo with the given title.
func (p *TodoPage) Toggle(title string) error {
	if err := p.item(title).Locator("input.toggle").Click(); err != nil {
		return fmt.Errorf("toggling todo %q: %w", title, err)
	}

	return nil
}

// ToggleAll flips the completed state of every visible todo at once.
func (p *TodoPage) ToggleAll() error {
	if err := p.toggleAll.Click(); err != nil {
		return fmt.Errorf("toggling all todos: %w", err)
	}

	return nil
}

// Edit replaces the title of an existing todo. The app enters edit mode on
// double click and commits on Enter.
func (p *TodoPage) Edit(title, newTitle string) error {
	item := p.item(title)

	if err := item.Locator("label").Dblclick(); err != nil {
		return fmt.Errorf("entering edit mode for %q: %w", title, err)
	}

	edit := item.Locator("input.edit")

	if err := edit.Fill(newTitle); err != nil {
		return fmt.Errorf("editing todo %q: %w", title, err)
	}

	if err := edit.Press("Enter"); err != nil {
		return fmt.Errorf("committing edit of %q: %w", title, err)
	}

	return nil
}

// Remove deletes the todo with the given title. The destroy button only
// renders on hover.
func (p *TodoPage) Remove(title string) error {
	item := p.item(title)

	if err := item.Hover(); err != nil {
		return fmt.Errorf("hovering todo %q: %w", title, err)
	}

	if err := item.Locator("button.destroy").Click(); err != nil {
		return fmt.Errorf("removing todo %q: %w", title, err)
	}

	return nil
}

// ClearCompleted removes every completed todo via the footer button.
func (p *TodoPage) ClearCompleted() error {
	if err := p.clearCompleted.Click(); err != nil {
		return fmt.Errorf("clearing completed todos: %w", err)
	}

	return nil
}

// FilterBy selects one of the footer filters.
func (p *TodoPage) FilterBy(filter Filter) error {
	link := p.page.GetByRole(*playwright.AriaRoleLink, playwright.PageGetByRoleOptions{Name: string(filter), Exact: playwright.Bool(true)})

	if err := link.Click(); err != nil {
		return fmt.Errorf("selecting filter %q: %w", filter, err)
	}

	return nil
}

// Titles returns the visible todo titles, in display order.
func (p *TodoPage) Titles() ([]string, error) {
	titles, err := p.items.Locator("label").AllTextContents()
	if err != nil {
		return nil, fmt.Errorf("reading todo titles: %w", err)
	}

	return titles, nil
}

// VisibleCount returns the number of todos currently rendered, which depends
// on the active filter.
func (p *TodoPage) VisibleCount() (int, error) {
	count, err := p.items.Count()
	if err != nil {
		return 0, fmt.Errorf("counting todos: %w", err)
	}

	return count, nil
}

// CounterText returns the footer counter, e.g. "2 items left".
func (p *TodoPage) CounterText() (string, error) {
	text, err := p.counter.TextContent()
	if err != nil {
		return "", fmt.Errorf("reading todo counter: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// IsCompleted reports whether the todo with the given title renders as
// completed.
func (p *TodoPage) IsCompleted(title string) (bool, error) {
	class, err := p.item(title).GetAttribute("class")
	if err != nil {
		return false, fmt.Errorf("reading todo %q class: %w", title, err)
	}

	return strings.Contains(class, "completed"), nil
}
