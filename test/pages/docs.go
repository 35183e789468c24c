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

// DocsPage drives the documentation website's navigation: top-level nav
// links, the search dialog and the docs sidebar.
type DocsPage struct {
	page    playwright.Page
	baseURL string

	searchButton playwright.Locator
	searchInput  playwright.Locator
	searchHits   playwright.Locator
	sidebarLinks playwright.Locator
}

// NewDocsPage creates the page object. Construction performs no navigation.
func NewDocsPage(page playwright.Page, baseURL string) *DocsPage {
	return &DocsPage{
		page:         page,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		searchButton: page.Locator("button.DocSearch-Button"),
		searchInput:  page.Locator("input.DocSearch-Input"),
		searchHits:   page.Locator(".DocSearch-Hit"),
		sidebarLinks: page.Locator("nav.menu a.menu__link"),
	}
}

// Open navigates to the documentation site landing page.
func (p *DocsPage) Open() error {
	if _, err := p.page.Goto(p.baseURL + "/"); err != nil {
		return fmt.Errorf("opening docs site: %w", err)
	}

	return nil
}

// Title returns the current document title.
func (p *DocsPage) Title() (string, error) {
	title, err := p.page.Title()
	if err != nil {
		return "", fmt.Errorf("reading docs title: %w", err)
	}

	return title, nil
}

// URL returns the current page URL.
func (p *DocsPage) URL() string {
	return p.page.URL()
}

// navLink returns the top navbar link with the given label.
func (p *DocsPage) navLink(label string) playwright.Locator {
	return p.page.Locator("nav.navbar").
		GetByRole(*playwright.AriaRoleLink, playwright.LocatorGetByRoleOptions{Name: label, Exact: playwright.Bool(true)})
}

// OpenDocs follows the "Docs" navbar entry to the getting-started page.
func (p *DocsPage) OpenDocs() error {
	if err := p.navLink("Docs").Click(); err != nil {
		return fmt.Errorf("opening docs nav entry: %w", err)
	}

	return nil
}

// OpenAPIReference follows the "API" navbar entry.
func (p *DocsPage) OpenAPIReference() error {
	if err := p.navLink("API").Click(); err != nil {
		return fmt.Errorf("opening api reference nav entry: %w", err)
	}

	return nil
}

// GetStarted follows the landing page's primary call-to-action link.
func (p *DocsPage) GetStarted() error {
	link := p.page.GetByRole(*playwright.AriaRoleLink, playwright.PageGetByRoleOptions{Name: "Get started"})

	if err := link.Click(); err != nil {
		return fmt.Errorf("following get-started link: %w", err)
	}

	return nil
}

// SearchFor opens the search dialog and types the given term. Hit counting is
// left to the caller so tests can poll while the index responds.
func (p *DocsPage) SearchFor(term string) error {
	if err := p.searchButton.Click(); err != nil {
		return fmt.Errorf("opening search dialog: %w", err)
	}

	if err := p.searchInput.Fill(term); err != nil {
		return fmt.Errorf("typing search term %q: %w", term, err)
	}

	return nil
}

// SearchHitCount returns the number of hits the search dialog currently shows.
func (p *DocsPage) SearchHitCount() (int, error) {
	count, err := p.searchHits.Count()
	if err != nil {
		return 0, fmt.Errorf("counting search hits: %w", err)
	}

	return count, nil
}

// OpenFirstSearchHit activates the top search result.
func (p *DocsPage) OpenFirstSearchHit() error {
	if err := p.searchHits.First().Locator("a").Click(); err != nil {
		return fmt.Errorf("opening first search hit: %w", err)
	}

	return nil
}

// ActiveSidebarEntry returns the label of the sidebar entry marked active, or
// an empty string when no sidebar is rendered.
func (p *DocsPage) ActiveSidebarEntry() (string, error) {
	active := p.page.Locator("nav.menu a.menu__link--active")

	count, err := active.Count()
	if err != nil {
		return "", fmt.Errorf("locating active sidebar entry: %w", err)
	}

	if count == 0 {
		return "", nil
	}

	text, err := active.First().TextContent()
	if err != nil {
		return "", fmt.Errorf("reading active sidebar entry: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// SidebarEntryCount returns the number of sidebar navigation links.
func (p *DocsPage) SidebarEntryCount() (int, error) {
	count, err := p.sidebarLinks.Count()
	if err != nil {
		return 0, fmt.Errorf("counting sidebar entries: %w", err)
	}

	return count, nil
}
