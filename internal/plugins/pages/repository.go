package pages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/realcore/spendenapp/internal/apperror"
)

// Repository defines the data access contract for content pages.
type Repository interface {
	// Get returns one page by slug. Returns apperror.NotFound when no row
	// exists; built-in defaults live a layer up in the service.
	Get(ctx context.Context, slug string) (*Page, error)

	// List returns all stored pages ordered by slug.
	List(ctx context.Context) ([]Page, error)

	// Upsert inserts or replaces one page.
	Upsert(ctx context.Context, p *Page) error
}

// repository implements Repository with MariaDB.
type repository struct {
	db *sql.DB
}

// NewRepository creates a new page repository backed by MariaDB.
func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context, slug string) (*Page, error) {
	var p Page
	err := r.db.QueryRowContext(ctx,
		`SELECT slug, title, content, updated_at FROM pages WHERE slug = ?`,
		slug,
	).Scan(&p.Slug, &p.Title, &p.Content, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("Seite nicht gefunden")
	}
	if err != nil {
		return nil, apperror.NewPersistence(fmt.Errorf("querying page %s: %w", slug, err))
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context) ([]Page, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT slug, title, content, updated_at FROM pages ORDER BY slug`,
	)
	if err != nil {
		return nil, apperror.NewPersistence(fmt.Errorf("querying pages: %w", err))
	}
	defer rows.Close()

	var list []Page
	for rows.Next() {
		var p Page
		if err := rows.Scan(&p.Slug, &p.Title, &p.Content, &p.UpdatedAt); err != nil {
			return nil, apperror.NewPersistence(fmt.Errorf("scanning page row: %w", err))
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewPersistence(fmt.Errorf("iterating pages: %w", err))
	}
	return list, nil
}

func (r *repository) Upsert(ctx context.Context, p *Page) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO pages (slug, title, content)
		 VALUES (?, ?, ?)
		 ON DUPLICATE KEY UPDATE title = VALUES(title), content = VALUES(content),
		 updated_at = CURRENT_TIMESTAMP`,
		p.Slug, p.Title, p.Content,
	)
	if err != nil {
		return apperror.NewPersistence(fmt.Errorf("upserting page %s: %w", p.Slug, err))
	}
	return nil
}
