package submissions

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/realcore/spendenapp/internal/apperror"
)

// Repository defines the data access contract for sweepstakes entries.
type Repository interface {
	// Insert persists a new submission and fills in the server-assigned
	// ID and creation timestamp on the passed struct.
	Insert(ctx context.Context, s *Submission) error

	// List returns all submissions, newest first. Unbounded by design --
	// a seasonal campaign stays in the low thousands of rows.
	List(ctx context.Context) ([]Submission, error)

	// Stats computes the dashboard aggregates with independent COUNT
	// queries against the same table.
	Stats(ctx context.Context) (*Stats, error)

	// Delete removes one row by id. Returns false (not an error) when no
	// row with that id exists.
	Delete(ctx context.Context, id int) (bool, error)
}

// repository implements Repository with MariaDB.
type repository struct {
	db *sql.DB
}

// NewRepository creates a new submission repository backed by MariaDB.
func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Insert writes one immutable row. The creation timestamp is assigned here,
// once, and never updated afterwards.
func (r *repository) Insert(ctx context.Context, s *Submission) error {
	s.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO submissions (name, firma, position, email, spendenauswahl, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.Name, s.Firma, s.Position, s.Email, s.Spendenauswahl, s.CreatedAt,
	)
	if err != nil {
		return apperror.NewPersistence(fmt.Errorf("inserting submission: %w", err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return apperror.NewPersistence(fmt.Errorf("reading submission id: %w", err))
	}
	s.ID = int(id)
	return nil
}

// List returns all submissions ordered by creation timestamp descending.
// The id tiebreak keeps the order deterministic for same-second inserts,
// which the CSV export depends on.
func (r *repository) List(ctx context.Context) ([]Submission, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, firma, position, email, spendenauswahl, created_at
		 FROM submissions
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, apperror.NewPersistence(fmt.Errorf("querying submissions: %w", err))
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		var s Submission
		if err := rows.Scan(&s.ID, &s.Name, &s.Firma, &s.Position, &s.Email, &s.Spendenauswahl, &s.CreatedAt); err != nil {
			return nil, apperror.NewPersistence(fmt.Errorf("scanning submission row: %w", err))
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewPersistence(fmt.Errorf("iterating submissions: %w", err))
	}
	return subs, nil
}

// Stats runs five independent counts. The today/week windows are evaluated
// against the database server's calendar date, deliberately timezone-naive.
func (r *repository) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM submissions`, &stats.Total},
		{`SELECT COUNT(*) FROM submissions WHERE spendenauswahl = ?`, &stats.Lichtblicke},
		{`SELECT COUNT(*) FROM submissions WHERE spendenauswahl = ?`, &stats.DiospiSuyana},
		{`SELECT COUNT(*) FROM submissions WHERE created_at >= CURDATE()`, &stats.TodayCount},
		{`SELECT COUNT(*) FROM submissions WHERE created_at >= CURDATE() - INTERVAL 7 DAY`, &stats.ThisWeekCount},
	}

	for i, c := range counts {
		var args []any
		switch i {
		case 1:
			args = []any{ChoiceLichtblicke}
		case 2:
			args = []any{ChoiceDiospiSuyana}
		}
		if err := r.db.QueryRowContext(ctx, c.query, args...).Scan(c.dest); err != nil {
			return nil, apperror.NewPersistence(fmt.Errorf("counting submissions: %w", err))
		}
	}

	return stats, nil
}

// Delete removes exactly one row. Deleting a missing id is not an error --
// the caller gets false and decides how to report it.
func (r *repository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM submissions WHERE id = ?`, id)
	if err != nil {
		return false, apperror.NewPersistence(fmt.Errorf("deleting submission %d: %w", id, err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperror.NewPersistence(fmt.Errorf("reading affected rows: %w", err))
	}
	return affected > 0, nil
}
