package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"church_sync/internal/domain"
)

type BulletinStore struct {
	db *sqlx.DB
}

func NewBulletinStore(db *sqlx.DB) *BulletinStore {
	return &BulletinStore{db: db}
}

// Upsert writes a synced bulletin keyed by its Drive file ID. Rows without
// a file ID (manual submissions) go through Insert instead.
func (s *BulletinStore) Upsert(ctx context.Context, b *domain.Bulletin) (int64, error) {
	query := `
		INSERT INTO posts_news (
			title, content, image_url, link_url, drive_file_id, published_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		ON CONFLICT (drive_file_id) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			image_url = EXCLUDED.image_url,
			link_url = EXCLUDED.link_url,
			published_at = EXCLUDED.published_at
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		b.Title,
		b.Content,
		b.ImageURL,
		b.LinkURL,
		b.DriveFileID,
		b.PublishedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Insert adds a manually submitted bulletin (no Drive file ID).
func (s *BulletinStore) Insert(ctx context.Context, b *domain.Bulletin) (int64, error) {
	query := `
		INSERT INTO posts_news (title, content, image_url, link_url, published_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		b.Title,
		b.Content,
		b.ImageURL,
		b.LinkURL,
		b.PublishedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// ExistingFileIDs returns every stored Drive file ID, for dedup against a
// full folder listing.
func (s *BulletinStore) ExistingFileIDs(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT drive_file_id FROM posts_news WHERE drive_file_id IS NOT NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result[id] = struct{}{}
	}

	return result, rows.Err()
}

// List returns all bulletins. Ordering by the numeric title prefix happens
// in the listing service.
func (s *BulletinStore) List(ctx context.Context) ([]domain.Bulletin, error) {
	var bulletins []domain.Bulletin
	query := `
		SELECT id, title, content, image_url, link_url, drive_file_id, published_at, created_at
		FROM posts_news
		ORDER BY created_at DESC, id DESC`

	if err := s.db.SelectContext(ctx, &bulletins, query); err != nil {
		return nil, err
	}
	return bulletins, nil
}
