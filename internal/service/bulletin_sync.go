package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"church_sync/internal/domain"
)

// BulletinSyncService synchronizes the Drive bulletin folder into the
// bulletin store. Deduplication is keyed on the provider file ID: the ID is
// stable under rename, unlike the file name the legacy admin path matched
// on.
type BulletinSyncService struct {
	source    BulletinSource
	bulletins BulletinStore
	syncState SyncStateStore
	publisher Publisher
	logger    *slog.Logger
	folderID  string
}

func NewBulletinSyncService(
	source BulletinSource,
	bulletins BulletinStore,
	syncState SyncStateStore,
	publisher Publisher,
	logger *slog.Logger,
	folderID string,
) *BulletinSyncService {
	return &BulletinSyncService{
		source:    source,
		bulletins: bulletins,
		syncState: syncState,
		publisher: publisher,
		logger:    logger.With("source", source.ID()),
		folderID:  folderID,
	}
}

func (s *BulletinSyncService) SourceID() string {
	return s.source.ID()
}

func (s *BulletinSyncService) Sync(ctx context.Context) (*domain.SyncResult, error) {
	startTime := time.Now()
	s.logger.Info("starting sync",
		"source_name", s.source.Name(),
		"folder", s.folderID,
	)

	existing, err := s.bulletins.ExistingFileIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load existing file ids: %w", err)
	}

	candidates, err := s.source.FetchFolder(ctx, s.folderID)
	if err != nil {
		return nil, fmt.Errorf("fetch folder: %w", err)
	}

	result := &domain.SyncResult{
		SourceID: s.source.ID(),
		Fetched:  len(candidates),
	}

	fresh := filterNew(candidates, existing, func(b domain.Bulletin) string {
		if b.DriveFileID == nil {
			return ""
		}
		return *b.DriveFileID
	})
	result.Skipped = len(candidates) - len(fresh)

	for i := range fresh {
		bulletin := &fresh[i]
		if _, err := s.bulletins.Upsert(ctx, bulletin); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("upsert %s: %v", bulletin.Title, err))
			continue
		}
		result.Synced++

		if s.publisher != nil {
			if err := s.publisher.PublishBulletin(ctx, bulletin, ActionSynced); err != nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("publish %s: %v", bulletin.Title, err))
			}
		}
	}

	result.Message = syncMessage(result.Synced, "주보")
	result.Duration = time.Since(startTime)

	if err := bumpSyncState(ctx, s.syncState, s.source.ID(), result.Synced); err != nil {
		return result, fmt.Errorf("update sync state: %w", err)
	}

	s.logger.Info("sync completed",
		"fetched", result.Fetched,
		"synced", result.Synced,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
		"duration", result.Duration,
	)

	return result, nil
}
