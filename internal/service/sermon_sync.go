package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"church_sync/internal/config"
	"church_sync/internal/domain"
)

// SermonSyncService synchronizes the configured YouTube playlists into the
// sermon store. One run: load every stored video URL, fetch each playlist
// in full, keep the videos whose canonical URL is not yet stored, upsert
// them one by one. A playlist fetch failure aborts that playlist but the
// remaining playlists still sync; a failed existing-URL read aborts the
// whole run, since filtering against an empty set would re-insert the
// entire catalog.
type SermonSyncService struct {
	source    SermonSource
	sermons   SermonStore
	syncState SyncStateStore
	publisher Publisher
	logger    *slog.Logger
	playlists []config.Playlist
}

func NewSermonSyncService(
	source SermonSource,
	sermons SermonStore,
	syncState SyncStateStore,
	publisher Publisher,
	logger *slog.Logger,
	playlists []config.Playlist,
) *SermonSyncService {
	return &SermonSyncService{
		source:    source,
		sermons:   sermons,
		syncState: syncState,
		publisher: publisher,
		logger:    logger.With("source", source.ID()),
		playlists: playlists,
	}
}

func (s *SermonSyncService) SourceID() string {
	return s.source.ID()
}

func (s *SermonSyncService) Sync(ctx context.Context) (*domain.SyncResult, error) {
	startTime := time.Now()
	s.logger.Info("starting sync",
		"source_name", s.source.Name(),
		"playlists", len(s.playlists),
	)

	existing, err := s.sermons.AllURLs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load existing video urls: %w", err)
	}

	result := &domain.SyncResult{SourceID: s.source.ID()}

	for _, pl := range s.playlists {
		candidates, err := s.source.FetchPlaylist(ctx, pl.ID, pl.Category)
		if err != nil {
			s.logger.Error("playlist fetch failed", "category", pl.Category, "error", err)
			result.Errors = append(result.Errors,
				fmt.Sprintf("fetch %s: %v", pl.Category, err))
			continue
		}

		result.Fetched += len(candidates)

		fresh := filterNew(candidates, existing, func(sm domain.Sermon) string {
			return sm.YoutubeURL
		})
		result.Skipped += len(candidates) - len(fresh)

		for i := range fresh {
			sermon := &fresh[i]
			if _, err := s.sermons.Upsert(ctx, sermon); err != nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("upsert %s: %v", sermon.YoutubeURL, err))
				continue
			}
			// The same video can appear in more than one playlist.
			existing[sermon.YoutubeURL] = struct{}{}
			result.Synced++

			if s.publisher != nil {
				if err := s.publisher.PublishSermon(ctx, sermon, ActionSynced); err != nil {
					result.Errors = append(result.Errors,
						fmt.Sprintf("publish %s: %v", sermon.YoutubeURL, err))
				}
			}
		}
	}

	result.Message = syncMessage(result.Synced, "영상")
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

func syncMessage(synced int, noun string) string {
	if synced == 0 {
		return fmt.Sprintf("새로 가져올 %s이(가) 없습니다. (이미 모두 등록됨)", noun)
	}
	return fmt.Sprintf("성공적으로 %d개의 %s을(를) 가져왔습니다!", synced, noun)
}

func bumpSyncState(ctx context.Context, store SyncStateStore, sourceID string, synced int) error {
	state, err := store.Get(ctx, sourceID)
	if err != nil {
		return err
	}

	state.SourceID = sourceID
	state.LastSyncedAt = time.Now()
	state.TotalSynced += int64(synced)

	return store.Update(ctx, state)
}
