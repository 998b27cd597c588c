// Package pages implements the content store for the site's legal pages.
// Two slugs ship with built-in documents (datenschutz and
// teilnahmebedingungen) so the site is never without its legally required
// texts; admins can overwrite them and add further pages.
package pages

import "time"

// Page is one editable content page.
type Page struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveRequest carries a page write from the admin dashboard.
type SaveRequest struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
