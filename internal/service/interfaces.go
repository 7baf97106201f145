package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"church_sync/internal/domain"
)

// Publisher actions.
const (
	ActionSynced  = "synced"
	ActionCreated = "created"
)

type SermonStore interface {
	Upsert(ctx context.Context, sermon *domain.Sermon) (int64, error)
	ExistingURLs(ctx context.Context, urls []string) (map[string]struct{}, error)
	AllURLs(ctx context.Context) (map[string]struct{}, error)
	List(ctx context.Context) ([]domain.Sermon, error)
}

type BulletinStore interface {
	Upsert(ctx context.Context, bulletin *domain.Bulletin) (int64, error)
	Insert(ctx context.Context, bulletin *domain.Bulletin) (int64, error)
	ExistingFileIDs(ctx context.Context) (map[string]struct{}, error)
	List(ctx context.Context) ([]domain.Bulletin, error)
}

type SyncStateStore interface {
	Get(ctx context.Context, sourceID string) (*domain.SyncState, error)
	Update(ctx context.Context, state *domain.SyncState) error
}

type SermonSource interface {
	ID() string
	Name() string
	FetchPlaylist(ctx context.Context, playlistID, category string) ([]domain.Sermon, error)
}

type BulletinSource interface {
	ID() string
	Name() string
	FetchFolder(ctx context.Context, folderID string) ([]domain.Bulletin, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishSermon(ctx context.Context, sermon *domain.Sermon, action string) error
	PublishBulletin(ctx context.Context, bulletin *domain.Bulletin, action string) error
	Close() error
}

type BlobStorage interface {
	Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error)
}
