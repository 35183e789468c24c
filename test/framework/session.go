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
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// BrowserSession owns the Playwright driver and a single browser process
// shared by a whole suite run. Per-test isolation comes from browser
// contexts, not from browser restarts.
type BrowserSession struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	config  *TestConfig
}

// StartBrowserSession starts the Playwright driver and launches Chromium.
// Set HEADLESS=false to watch the browser while debugging locally.
func StartBrowserSession(config *TestConfig) (*BrowserSession, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(config.Headless),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	return &BrowserSession{pw: pw, browser: browser, config: config}, nil
}

// NewPage creates an isolated browser context with a single page. Each
// context has its own cookies and storage, so tests cannot leak state into
// one another.
func (s *BrowserSession) NewPage() (playwright.BrowserContext, playwright.Page, error) {
	context, err := s.browser.NewContext()
	if err != nil {
		return nil, nil, fmt.Errorf("creating browser context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		_ = context.Close()
		return nil, nil, fmt.Errorf("creating page: %w", err)
	}

	page.SetDefaultTimeout(float64(s.config.ActionTimeout.Milliseconds()))

	return context, page, nil
}

// NewAPIRequestContext creates a browserless HTTP handle rooted at the
// configured API base URL.
func (s *BrowserSession) NewAPIRequestContext() (playwright.APIRequestContext, error) {
	request, err := s.pw.Request.NewContext(playwright.APIRequestNewContextOptions{
		BaseURL: playwright.String(s.config.APIBaseURL),
		Timeout: playwright.Float(float64(s.config.RequestTimeout.Milliseconds())),
	})
	if err != nil {
		return nil, fmt.Errorf("creating api request context: %w", err)
	}

	return request, nil
}

// Close releases the browser and stops the Playwright driver.
func (s *BrowserSession) Close() error {
	var firstErr error

	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			firstErr = err
		}
	}

	if s.pw != nil {
		if err := s.pw.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
