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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/meridianqa/todo-suite/test/api"
)

var _ = Describe("Posts API", func() {
	Context("When listing posts", func() {
		Describe("Given the full collection", func() {
			It("should return the complete post set", func() {
				posts, err := client.ListPosts()
				Expect(err).NotTo(HaveOccurred())
				Expect(posts).To(HaveLen(100))
				GinkgoWriter.Printf("Found %d posts\n", len(posts))
			})

			It("should populate every field on each post", func() {
				posts, err := client.ListPosts()
				Expect(err).NotTo(HaveOccurred())

				for _, post := range posts {
					Expect(post.ID).To(BeNumerically(">", 0))
					Expect(post.UserID).To(BeNumerically(">", 0))
					Expect(post.Title).NotTo(BeEmpty())
					Expect(post.Body).NotTo(BeEmpty())
				}
			})
		})

		Describe("Given a user filter", func() {
			It("should return only that user's posts", func() {
				posts, err := client.ListPostsByUser(1)
				Expect(err).NotTo(HaveOccurred())
				Expect(posts).To(HaveLen(10))

				for _, post := range posts {
					Expect(post.UserID).To(Equal(1))
				}
			})
		})
	})

	Context("When retrieving a single post", func() {
		Describe("Given the post exists", func() {
			It("should return the post with matching identifiers", func() {
				post, err := client.GetPost(1)
				Expect(err).NotTo(HaveOccurred())
				Expect(post.ID).To(Equal(1))
				Expect(post.UserID).To(Equal(1))
				Expect(post.Title).NotTo(BeEmpty())
			})
		})

		Describe("Given the post does not exist", func() {
			It("should fail with 404", func() {
				_, err := client.GetPost(9999)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("404"))
			})

			It("should expose the raw status for direct assertions", func() {
				status, _, err := client.GetRaw("/posts/9999")
				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("When creating a post", func() {
		Describe("Given a valid payload", func() {
			It("should return 201 with the assigned ID", func() {
				payload := api.NewPostPayload().WithUserID(7)

				post, err := client.CreatePost(payload.Build())
				Expect(err).NotTo(HaveOccurred())
				Expect(post.ID).To(BeNumerically(">", 100))
				Expect(post.UserID).To(Equal(7))
				Expect(post.Title).To(Equal(payload.Title()))
			})
		})
	})

	Context("When updating a post", func() {
		Describe("Given the post exists", func() {
			It("should replace the resource on PUT", func() {
				payload := api.NewPostPayload().WithUserID(1)

				post, err := client.UpdatePost(1, payload.Build())
				Expect(err).NotTo(HaveOccurred())
				Expect(post.ID).To(Equal(1))
				Expect(post.Title).To(Equal(payload.Title()))
			})

			It("should merge fields on PATCH", func() {
				post, err := client.PatchPost(1, map[string]interface{}{
					"title": "patched title",
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(post.ID).To(Equal(1))
				Expect(post.Title).To(Equal("patched title"))
				// Untouched fields survive the merge
				Expect(post.Body).NotTo(BeEmpty())
			})
		})
	})

	Context("When deleting a post", func() {
		Describe("Given the post exists", func() {
			It("should accept the deletion", func() {
				Expect(client.DeletePost(1)).To(Succeed())
			})
		})
	})
})
