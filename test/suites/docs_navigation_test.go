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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/meridianqa/todo-suite/test/pages"
)

var _ = Describe("Documentation Site Navigation", func() {
	var docs *pages.DocsPage

	BeforeEach(func() {
		var err error
		docs, err = deps.DocsPage()
		Expect(err).NotTo(HaveOccurred())
		Expect(docs.Open()).To(Succeed())
	})

	Context("When landing on the homepage", func() {
		Describe("Given the site is reachable", func() {
			It("should present the product name in the title", func() {
				title, err := docs.Title()
				Expect(err).NotTo(HaveOccurred())
				Expect(title).To(ContainSubstring("Playwright"))
			})

			It("should lead to the intro page via the call to action", func() {
				Expect(docs.GetStarted()).To(Succeed())

				Eventually(docs.URL).
					WithTimeout(config.ActionTimeout).
					Should(ContainSubstring("/docs/intro"))
			})
		})
	})

	Context("When using the top navigation", func() {
		Describe("Given the navbar entries", func() {
			It("should open the docs section", func() {
				Expect(docs.OpenDocs()).To(Succeed())

				Eventually(docs.URL).
					WithTimeout(config.ActionTimeout).
					Should(ContainSubstring("/docs/"))
			})

			It("should open the API reference", func() {
				Expect(docs.OpenAPIReference()).To(Succeed())

				Eventually(docs.URL).
					WithTimeout(config.ActionTimeout).
					Should(ContainSubstring("/docs/api/"))
			})
		})
	})

	Context("When browsing the docs sidebar", func() {
		Describe("Given the intro page", func() {
			BeforeEach(func() {
				Expect(docs.GetStarted()).To(Succeed())
			})

			It("should mark the current page in the sidebar", func() {
				Eventually(docs.ActiveSidebarEntry).
					WithTimeout(config.ActionTimeout).
					Should(ContainSubstring("Installation"))
			})

			It("should list the documentation sections", func() {
				count, err := docs.SidebarEntryCount()
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(BeNumerically(">", 5))
				GinkgoWriter.Printf("Found %d sidebar entries\n", count)
			})
		})
	})

	Context("When searching the documentation", func() {
		Describe("Given the search dialog", func() {
			It("should surface hits for a known term", func() {
				Expect(docs.SearchFor("locators")).To(Succeed())

				Eventually(docs.SearchHitCount).
					WithTimeout(config.ActionTimeout).
					Should(BeNumerically(">", 0))
			})

			It("should navigate to a result from the dialog", func() {
				Expect(docs.SearchFor("assertions")).To(Succeed())

				Eventually(docs.SearchHitCount).
					WithTimeout(config.ActionTimeout).
					Should(BeNumerically(">", 0))

				Expect(docs.OpenFirstSearchHit()).To(Succeed())

				Eventually(docs.URL).
					WithTimeout(config.ActionTimeout).
					Should(ContainSubstring("/docs/"))
			})
		})
	})
})
