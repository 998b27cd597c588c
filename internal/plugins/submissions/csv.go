package submissions

import (
	"context"
	"fmt"
	"strings"
)

// csvHeader matches the columns the campaign team's Excel template expects.
// Semicolons because de-DE Excel treats commas as decimal separators.
const csvHeader = "ID;Name;Firma;Position;E-Mail;Spendenauswahl;Datum"

// ExportCSV renders all submissions as semicolon-separated CSV, newest
// first. Free-text columns are quoted; email and the choice label never
// contain semicolons or quotes, so they stay bare.
func (s *service) ExportCSV(ctx context.Context) (string, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteString("\n")

	for _, sub := range subs {
		fmt.Fprintf(&b, "%d;%s;%s;%s;%s;%s;%s\n",
			sub.ID,
			quoteCSV(sub.Name),
			quoteCSV(sub.Firma),
			quoteCSV(sub.Position),
			sub.Email,
			ChoiceLabel(sub.Spendenauswahl),
			sub.CreatedAt.In(s.loc).Format("02.01.2006, 15:04:05"),
		)
	}

	return b.String(), nil
}

// quoteCSV wraps a free-text field in double quotes, doubling any embedded
// quotes per RFC 4180.
func quoteCSV(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
