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

// Package pages contains the page objects for the applications under test.
//
// Each page object is a declarative locator bundle with one-step action
// methods. Construction is pure composition over a playwright.Page handle;
// only the methods perform I/O. Page objects hold no per-call mutable state,
// so one instance can serve a whole test body.
package pages
