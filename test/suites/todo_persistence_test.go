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

var _ = Describe("Todo Persistence", func() {
	var (
		todo    *pages.TodoPage
		storage *pages.TodoStorage
	)

	BeforeEach(func() {
		var err error
		todo, err = deps.TodoPage()
		Expect(err).NotTo(HaveOccurred())

		storage, err = deps.TodoStorage()
		Expect(err).NotTo(HaveOccurred())

		Expect(todo.Open()).To(Succeed())
	})

	Context("When items are added", func() {
		Describe("Given the app persists to local storage", func() {
			It("should write each item to local storage", func() {
				Expect(todo.AddAll("feed the cat", "empty the litter tray")).To(Succeed())
				Expect(storage.WaitForCount(2, config.ActionTimeout)).To(Succeed())

				titles, err := storage.Titles()
				Expect(err).NotTo(HaveOccurred())
				Expect(titles).To(Equal([]string{"feed the cat", "empty the litter tray"}))
			})

			It("should persist completion state", func() {
				Expect(todo.AddAll("alpha", "beta")).To(Succeed())
				Expect(storage.WaitForCount(2, config.ActionTimeout)).To(Succeed())

				Expect(todo.Toggle("alpha")).To(Succeed())

				Eventually(storage.CompletedCount).
					WithTimeout(config.ActionTimeout).
					Should(Equal(1))
			})

			It("should remove deleted items from local storage", func() {
				Expect(todo.AddAll("keep me", "delete me")).To(Succeed())
				Expect(storage.WaitForCount(2, config.ActionTimeout)).To(Succeed())

				Expect(todo.Remove("delete me")).To(Succeed())
				Expect(storage.WaitForCount(1, config.ActionTimeout)).To(Succeed())

				titles, err := storage.Titles()
				Expect(err).NotTo(HaveOccurred())
				Expect(titles).To(Equal([]string{"keep me"}))
			})
		})
	})

	Context("When the page is reloaded", func() {
		Describe("Given items were persisted", func() {
			It("should restore the list from local storage", func() {
				Expect(todo.AddAll("survives reload", "so does this")).To(Succeed())
				Expect(storage.WaitForCount(2, config.ActionTimeout)).To(Succeed())

				// When: Navigating to the app again in the same context
				Expect(todo.Open()).To(Succeed())

				// Then: The persisted items are rendered
				titles, err := todo.Titles()
				Expect(err).NotTo(HaveOccurred())
				Expect(titles).To(Equal([]string{"survives reload", "so does this"}))
			})
		})
	})

	Context("When using an isolated page object", func() {
		Describe("Given a fresh instance from the container", func() {
			It("should observe the same page state as the cached instance", func() {
				Expect(todo.Add("shared state")).To(Succeed())

				fresh, err := deps.FreshTodoPage()
				Expect(err).NotTo(HaveOccurred())
				Expect(fresh).NotTo(BeIdenticalTo(todo))

				titles, err := fresh.Titles()
				Expect(err).NotTo(HaveOccurred())
				Expect(titles).To(Equal([]string{"shared state"}))
			})
		})
	})
})
