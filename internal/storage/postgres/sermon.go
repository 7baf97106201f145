package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"church_sync/internal/domain"
)

type SermonStore struct {
	db *sqlx.DB
}

func NewSermonStore(db *sqlx.DB) *SermonStore {
	return &SermonStore{db: db}
}

// Upsert writes a sermon keyed by its canonical video URL. Re-syncing the
// same video overwrites the row (last write wins).
func (s *SermonStore) Upsert(ctx context.Context, sermon *domain.Sermon) (int64, error) {
	query := `
		INSERT INTO posts_sermons (
			title, youtube_url, video_id, thumbnail_url, preacher, preached_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		ON CONFLICT (youtube_url) DO UPDATE SET
			title = EXCLUDED.title,
			video_id = EXCLUDED.video_id,
			thumbnail_url = EXCLUDED.thumbnail_url,
			preacher = EXCLUDED.preacher,
			preached_at = EXCLUDED.preached_at
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		sermon.Title,
		sermon.YoutubeURL,
		sermon.VideoID,
		sermon.ThumbnailURL,
		sermon.Preacher,
		sermon.PreachedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// ExistingURLs returns the subset of urls already present in the store.
func (s *SermonStore) ExistingURLs(ctx context.Context, urls []string) (map[string]struct{}, error) {
	result := make(map[string]struct{})
	if len(urls) == 0 {
		return result, nil
	}

	query := `SELECT youtube_url FROM posts_sermons WHERE youtube_url = ANY($1)`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(urls))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		result[u] = struct{}{}
	}

	return result, rows.Err()
}

// AllURLs returns every stored video URL, for dedup against a full catalog.
func (s *SermonStore) AllURLs(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT youtube_url FROM posts_sermons`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]struct{})
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		result[u] = struct{}{}
	}

	return result, rows.Err()
}

// List returns all sermons. Ordering by title-derived date happens in the
// listing service; created_at here only makes the scan deterministic.
func (s *SermonStore) List(ctx context.Context) ([]domain.Sermon, error) {
	var sermons []domain.Sermon
	query := `
		SELECT id, title, youtube_url, video_id, thumbnail_url, preacher, preached_at, created_at
		FROM posts_sermons
		ORDER BY created_at DESC, id DESC`

	if err := s.db.SelectContext(ctx, &sermons, query); err != nil {
		return nil, err
	}
	return sermons, nil
}
