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

// Package api provides the typed REST client the suites use against the
// posts/users/comments service.
//
// The client deliberately wraps the automation framework's request handle
// rather than a bare net/http client: the same handle type backs both the
// live suites and the consumer contract tests, and it shares cookie and
// proxy behavior with the browser sessions. On top of the handle the client
// adds:
//   - W3C trace context propagation for request correlation
//   - detailed error logging with trace IDs for debugging
//   - expected-status checking with response bodies in error messages
//   - typed models for the posts, users and comments resources
package api
