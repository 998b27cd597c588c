// Package sanitize provides HTML sanitization for admin-authored page
// content. Uses bluemonday to strip dangerous HTML (script tags, event
// handlers, javascript: URLs) while preserving the formatting the legal
// pages actually use (headings, paragraphs, lists, links, emphasis).
//
// Page content is authored only by authenticated administrators, so this
// is defense-in-depth rather than untrusted-input handling; it keeps a
// leaked admin session from turning the privacy page into a script host.
package sanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// policy is the singleton bluemonday policy for sanitizing page HTML.
// Initialized once via sync.Once for thread-safe lazy initialization.
var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared sanitization policy, initializing it on first call.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()

		// The privacy/terms pages use class attributes for styling hooks.
		policy.AllowAttrs("class").Globally()
	})
	return policy
}

// HTML sanitizes page HTML by stripping dangerous elements (script, iframe,
// event handlers, javascript: URLs) while preserving safe formatting tags.
// Called on every page write before the content reaches the database.
func HTML(input string) string {
	if input == "" {
		return ""
	}
	return getPolicy().Sanitize(input)
}
