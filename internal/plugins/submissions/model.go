// Package submissions implements the sweepstakes entry store: the public
// donation form feeds it, the admin dashboard reads, aggregates, exports,
// and deletes from it. Rows are immutable once written -- there is no
// update operation by design.
package submissions

import "time"

// Donation choices a participant can pick on the form. These are the only
// two values the store accepts; the human-readable labels are used in the
// CSV export and the notification mail.
const (
	ChoiceLichtblicke  = "lichtblicke"
	ChoiceDiospiSuyana = "diospi-suyana"
)

// ChoiceLabel returns the display label for a donation choice. Unknown
// values are returned unchanged so historical rows written before enum
// enforcement still render.
func ChoiceLabel(choice string) string {
	switch choice {
	case ChoiceLichtblicke:
		return "Lichtblicke e.V."
	case ChoiceDiospiSuyana:
		return "Diospi Suyana"
	default:
		return choice
	}
}

// Submission is one sweepstakes entry. Field names follow the German form
// labels the campaign uses (Firma = company, Spendenauswahl = donation
// choice).
type Submission struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Firma          string    `json:"firma"`
	Position       string    `json:"position"`
	Email          string    `json:"email"`
	Spendenauswahl string    `json:"spendenauswahl"`
	CreatedAt      time.Time `json:"created_at"`
}

// Stats holds the aggregate counts shown on the admin dashboard. The five
// counts are computed independently against the same table; lichtblicke +
// diospiSuyana can be less than total when legacy rows carry an unknown
// choice.
type Stats struct {
	Total         int `json:"total"`
	Lichtblicke   int `json:"lichtblicke"`
	DiospiSuyana  int `json:"diospiSuyana"`
	TodayCount    int `json:"todayCount"`
	ThisWeekCount int `json:"thisWeekCount"`
}

// SubmitRequest holds the data posted by the public donation form.
type SubmitRequest struct {
	Name                 string `json:"name" form:"name"`
	Firma                string `json:"firma" form:"firma"`
	Position             string `json:"position" form:"position"`
	Email                string `json:"email" form:"email"`
	Spendenauswahl       string `json:"spendenauswahl" form:"spendenauswahl"`
	Teilnahmebedingungen bool   `json:"teilnahmebedingungen" form:"teilnahmebedingungen"`
}

// DeleteRequest identifies the submission an admin wants to remove.
type DeleteRequest struct {
	ID int `json:"id"`
}
