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

// Package framework holds the suite infrastructure: configuration loading,
// browser/API session lifecycle, and the dependency container that hands
// test bodies their helpers.
//
// The container exists so each test execution gets exactly one instance of
// each helper, constructed lazily once its session handle is available.
// Containers are created fresh per test and passed explicitly into test
// bodies; they are never shared across concurrently running tests, and they
// never own the session handles they reference.
package framework
