package translations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/realcore/spendenapp/internal/apperror"
)

// Repository defines the data access contract for translation overrides.
// The column is named translation_key because key is reserved in MySQL.
type Repository interface {
	// GetAll returns override rows, optionally filtered to one language,
	// ordered by language then key for a stable admin listing.
	GetAll(ctx context.Context, language string) ([]Translation, error)

	// Get looks up one override. Returns ok=false when none is stored.
	Get(ctx context.Context, language, key string) (string, bool, error)

	// Upsert inserts or replaces one override.
	Upsert(ctx context.Context, language, key, value string) error

	// Delete removes one override. Deleting a missing row is a no-op.
	Delete(ctx context.Context, language, key string) error
}

// repository implements Repository with MariaDB.
type repository struct {
	db *sql.DB
}

// NewRepository creates a new translation repository backed by MariaDB.
func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context, language string) ([]Translation, error) {
	query := `SELECT language, translation_key, value, updated_at FROM translations`
	var args []any
	if language != "" {
		query += ` WHERE language = ?`
		args = append(args, language)
	}
	query += ` ORDER BY language, translation_key`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewPersistence(fmt.Errorf("querying translations: %w", err))
	}
	defer rows.Close()

	var list []Translation
	for rows.Next() {
		var t Translation
		if err := rows.Scan(&t.Language, &t.Key, &t.Value, &t.UpdatedAt); err != nil {
			return nil, apperror.NewPersistence(fmt.Errorf("scanning translation row: %w", err))
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewPersistence(fmt.Errorf("iterating translations: %w", err))
	}
	return list, nil
}

func (r *repository) Get(ctx context.Context, language, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM translations WHERE language = ? AND translation_key = ?`,
		language, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperror.NewPersistence(fmt.Errorf("querying translation %s/%s: %w", language, key, err))
	}
	return value, true, nil
}

func (r *repository) Upsert(ctx context.Context, language, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO translations (language, translation_key, value)
		 VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE value = VALUES(value), updated_at = CURRENT_TIMESTAMP`,
		language, key, value,
	)
	if err != nil {
		return apperror.NewPersistence(fmt.Errorf("upserting translation %s/%s: %w", language, key, err))
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, language, key string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM translations WHERE language = ? AND translation_key = ?`,
		language, key,
	)
	if err != nil {
		return apperror.NewPersistence(fmt.Errorf("deleting translation %s/%s: %w", language, key, err))
	}
	return nil
}
