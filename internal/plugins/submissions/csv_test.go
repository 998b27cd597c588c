package submissions

import (
	"context"
	"strings"
	"testing"
	"time"
)

func berlin(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("Europe/Berlin tzdata unavailable: %v", err)
	}
	return loc
}

func TestExportCSV_Header(t *testing.T) {
	svc := NewService(&mockSubmissionRepo{}, nil)

	out, err := svc.ExportCSV(context.Background())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if out != "ID;Name;Firma;Position;E-Mail;Spendenauswahl;Datum\n" {
		t.Errorf("unexpected empty export: %q", out)
	}
}

func TestExportCSV_Rows(t *testing.T) {
	loc := berlin(t)
	created := time.Date(2025, 12, 24, 17, 30, 5, 0, loc)

	repo := &mockSubmissionRepo{
		listFn: func(ctx context.Context) ([]Submission, error) {
			return []Submission{
				{ID: 2, Name: "Erika Musterfrau", Firma: "ACME AG", Position: "CTO",
					Email: "erika@example.com", Spendenauswahl: ChoiceDiospiSuyana, CreatedAt: created},
				{ID: 1, Name: "Max Mustermann", Firma: "Beispiel GmbH", Position: "Einkauf",
					Email: "max@example.com", Spendenauswahl: ChoiceLichtblicke, CreatedAt: created},
			}, nil
		},
	}
	svc := NewService(repo, nil)

	out, err := svc.ExportCSV(context.Background())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	want := `2;"Erika Musterfrau";"ACME AG";"CTO";erika@example.com;Diospi Suyana;24.12.2025, 17:30:05`
	if lines[1] != want {
		t.Errorf("row mismatch:\n got %q\nwant %q", lines[1], want)
	}
	if !strings.Contains(lines[2], "Lichtblicke e.V.") {
		t.Errorf("expected choice label in row, got %q", lines[2])
	}
}

func TestExportCSV_QuotesEmbeddedQuotes(t *testing.T) {
	loc := berlin(t)
	repo := &mockSubmissionRepo{
		listFn: func(ctx context.Context) ([]Submission, error) {
			return []Submission{
				{ID: 1, Name: `Max "Maxi" Mustermann`, Firma: "Semi;Colon GmbH", Position: "IT",
					Email: "max@example.com", Spendenauswahl: ChoiceLichtblicke,
					CreatedAt: time.Date(2025, 12, 1, 9, 0, 0, 0, loc)},
			}, nil
		},
	}
	svc := NewService(repo, nil)

	out, err := svc.ExportCSV(context.Background())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !strings.Contains(out, `"Max ""Maxi"" Mustermann"`) {
		t.Errorf("expected doubled quotes, got %q", out)
	}
	if !strings.Contains(out, `"Semi;Colon GmbH"`) {
		t.Errorf("expected semicolon-containing field to stay quoted, got %q", out)
	}
}

func TestExportCSV_ConvertsToBerlinTime(t *testing.T) {
	berlin(t)
	// 23:30 UTC on Dec 24 is 00:30 on Dec 25 in Berlin (CET, UTC+1).
	repo := &mockSubmissionRepo{
		listFn: func(ctx context.Context) ([]Submission, error) {
			return []Submission{
				{ID: 1, Name: "Max", Firma: "F", Position: "P", Email: "m@e.de",
					Spendenauswahl: ChoiceLichtblicke,
					CreatedAt:      time.Date(2025, 12, 24, 23, 30, 0, 0, time.UTC)},
			}, nil
		},
	}
	svc := NewService(repo, nil)

	out, err := svc.ExportCSV(context.Background())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !strings.Contains(out, "25.12.2025, 00:30:00") {
		t.Errorf("expected Berlin-local timestamp, got %q", out)
	}
}
