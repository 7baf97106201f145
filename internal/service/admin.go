package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"time"

	"church_sync/internal/domain"
)

// ErrAlreadyRegistered is returned when a manual sermon submission points
// at a video that is already in the store.
var ErrAlreadyRegistered = errors.New("video already registered")

// Manual submissions are recorded against this source in sync_state.
const manualSourceID = "manual"

var unsafePathChars = regexp.MustCompile(`[^a-zA-Z0-9가-힣._-]`)

// AdminService handles manual content submissions from the back office.
// Each submission writes the content row and the sync-state bump in one
// transaction, then publishes a content event.
type AdminService struct {
	sermons   SermonStore
	bulletins BulletinStore
	syncState SyncStateStore
	txManager TransactionManager
	blob      BlobStorage
	publisher Publisher
	logger    *slog.Logger
	bucket    string
}

func NewAdminService(
	sermons SermonStore,
	bulletins BulletinStore,
	syncState SyncStateStore,
	txManager TransactionManager,
	blob BlobStorage,
	publisher Publisher,
	logger *slog.Logger,
	bucket string,
) *AdminService {
	return &AdminService{
		sermons:   sermons,
		bulletins: bulletins,
		syncState: syncState,
		txManager: txManager,
		blob:      blob,
		publisher: publisher,
		logger:    logger.With("component", "admin"),
		bucket:    bucket,
	}
}

type CreateSermonInput struct {
	Title      string
	YoutubeURL string
	Preacher   string
	PreachedAt time.Time
}

func (s *AdminService) CreateSermon(ctx context.Context, in CreateSermonInput) (*domain.Sermon, error) {
	if in.Title == "" || in.YoutubeURL == "" {
		return nil, fmt.Errorf("title and youtube url are required")
	}

	existing, err := s.sermons.ExistingURLs(ctx, []string{in.YoutubeURL})
	if err != nil {
		return nil, fmt.Errorf("check existing url: %w", err)
	}
	if _, ok := existing[in.YoutubeURL]; ok {
		return nil, ErrAlreadyRegistered
	}

	sermon := &domain.Sermon{
		Title:      in.Title,
		YoutubeURL: in.YoutubeURL,
		VideoID:    videoIDFromURL(in.YoutubeURL),
		Preacher:   in.Preacher,
		PreachedAt: in.PreachedAt,
	}
	if sermon.PreachedAt.IsZero() {
		sermon.PreachedAt = time.Now()
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.sermons.Upsert(txCtx, sermon)
		if err != nil {
			return fmt.Errorf("insert sermon: %w", err)
		}
		sermon.ID = id
		return bumpSyncState(txCtx, s.syncState, manualSourceID, 1)
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishSermon(ctx, sermon, ActionCreated); err != nil {
			s.logger.Warn("publish failed", "title", sermon.Title, "error", err)
		}
	}

	s.logger.Info("sermon created", "id", sermon.ID, "title", sermon.Title)
	return sermon, nil
}

type CreateBulletinInput struct {
	Title            string
	Content          string
	ImageName        string
	ImageData        []byte
	ImageContentType string
}

func (s *AdminService) CreateBulletin(ctx context.Context, in CreateBulletinInput) (*domain.Bulletin, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	bulletin := &domain.Bulletin{
		Title:       in.Title,
		Content:     in.Content,
		PublishedAt: time.Now(),
	}

	if len(in.ImageData) > 0 {
		path := objectPath(in.ImageName)
		url, err := s.blob.Upload(ctx, s.bucket, path, in.ImageData, in.ImageContentType)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		bulletin.ImageURL = &url
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.bulletins.Insert(txCtx, bulletin)
		if err != nil {
			return fmt.Errorf("insert bulletin: %w", err)
		}
		bulletin.ID = id
		return bumpSyncState(txCtx, s.syncState, manualSourceID, 1)
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishBulletin(ctx, bulletin, ActionCreated); err != nil {
			s.logger.Warn("publish failed", "title", bulletin.Title, "error", err)
		}
	}

	s.logger.Info("bulletin created", "id", bulletin.ID, "title", bulletin.Title)
	return bulletin, nil
}

// objectPath builds a collision-free storage path from the uploaded file
// name, keeping its extension so the store serves the right content type.
func objectPath(name string) string {
	ext := filepath.Ext(name)
	base := unsafePathChars.ReplaceAllString(name[:len(name)-len(ext)], "_")
	if base == "" {
		base = "image"
	}
	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
}

var youtubeIDPattern = regexp.MustCompile(`(?:youtu\.be/|v=|embed/)([A-Za-z0-9_-]{11})`)

// videoIDFromURL pulls the 11-character video ID out of a YouTube URL.
// Empty when the URL is not in a recognized form.
func videoIDFromURL(url string) string {
	m := youtubeIDPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}
