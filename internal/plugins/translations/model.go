// Package translations implements the translation override store. The site
// ships with a built-in de/en dictionary; administrators can override any
// single key per language without redeploying. Reads resolve through a
// four-tier fallback chain ending at German, the campaign's base language.
package translations

import "time"

// DefaultLanguage is the base language every lookup ultimately falls
// back to.
const DefaultLanguage = "de"

// Translation is one stored override row.
type Translation struct {
	Language  string    `json:"language"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertRequest holds an override write from the admin dashboard. An empty
// value is a valid override (it deliberately blanks the text).
type UpsertRequest struct {
	Language string `json:"language"`
	Key      string `json:"key"`
	Value    string `json:"value"`
}
