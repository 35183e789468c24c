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

package api

import (
	"fmt"

	"github.com/google/uuid"
)

// PostPayloadBuilder builds post payloads for testing.
type PostPayloadBuilder struct {
	payload map[string]interface{}
}

// NewPostPayload creates a post payload builder with a unique default title
// so concurrent runs never collide on content.
func NewPostPayload() *PostPayloadBuilder {
	return &PostPayloadBuilder{
		payload: map[string]interface{}{
			"userId": 1,
			"title":  fmt.Sprintf("testautomation-%s", uuid.NewString()),
			"body":   "created by the automation suite",
		},
	}
}

// WithUserID sets the authoring user.
func (b *PostPayloadBuilder) WithUserID(userID int) *PostPayloadBuilder {
	b.payload["userId"] = userID
	return b
}

// WithTitle sets the title (pass empty string to omit).
func (b *PostPayloadBuilder) WithTitle(title string) *PostPayloadBuilder {
	if title == "" {
		delete(b.payload, "title")
	} else {
		b.payload["title"] = title
	}

	return b
}

// WithBody sets the body text.
func (b *PostPayloadBuilder) WithBody(body string) *PostPayloadBuilder {
	b.payload["body"] = body
	return b
}

// Build returns the payload map.
func (b *PostPayloadBuilder) Build() map[string]interface{} {
	return b.payload
}

// Title returns the current title, empty when omitted.
func (b *PostPayloadBuilder) Title() string {
	title, _ := b.payload["title"].(string)
	return title
}
