package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"time"

	"church_sync/internal/domain"
	"church_sync/internal/source"
)

const (
	SourceID   = "youtube"
	SourceName = "YouTube playlists"

	watchURLPrefix = "https://www.youtube.com/watch?v="
)

// Config holds YouTube source configuration.
type Config struct {
	BaseURL        string
	APIKey         string
	PageSize       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source fetches sermon candidates from YouTube playlists.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	pageSize       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		pageSize:       cfg.PageSize,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", SourceID),
	}
}

func (s *Source) ID() string {
	return SourceID
}

func (s *Source) Name() string {
	return SourceName
}

// FetchPlaylist returns every video in the playlist as a sermon candidate
// with the given category label, newest-first by publish time. It follows
// every continuation token; a failed page aborts the whole fetch rather
// than returning a partial collection.
func (s *Source) FetchPlaylist(ctx context.Context, playlistID, category string) ([]domain.Sermon, error) {
	if s.apiKey == "" {
		return nil, &source.ConfigError{Field: "youtube API key"}
	}
	if playlistID == "" {
		return nil, &source.ConfigError{Field: "youtube playlist ID"}
	}

	var allItems []playlistItem
	pageToken := ""

	for {
		resp, err := s.fetchPage(ctx, playlistID, pageToken)
		if err != nil {
			return nil, fmt.Errorf("fetch playlist %s: %w", playlistID, err)
		}

		allItems = append(allItems, resp.Items...)

		s.logger.Debug("fetched page",
			"playlist", playlistID,
			"items", len(resp.Items),
			"total", len(allItems),
		)

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	return s.transform(allItems, category), nil
}

func (s *Source) fetchPage(ctx context.Context, playlistID, pageToken string) (*playlistItemsResponse, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("playlistId", playlistID)
	q.Set("maxResults", fmt.Sprintf("%d", s.pageSize))
	q.Set("key", s.apiKey)
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}
	reqURL := fmt.Sprintf("%s/playlistItems?%s", s.baseURL, q.Encode())

	var resp *playlistItemsResponse
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err = s.doRequest(ctx, reqURL)
		if err == nil {
			return resp, nil
		}

		// Provider rejections are final; only transport errors are retried.
		var provErr *source.ProviderError
		if errors.As(err, &provErr) {
			return nil, err
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, reqURL string) (*playlistItemsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, source.FromResponse(SourceName, resp)
	}

	var apiResp playlistItemsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &apiResp, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

func (s *Source) transform(items []playlistItem, category string) []domain.Sermon {
	sermons := make([]domain.Sermon, 0, len(items))

	for _, item := range items {
		videoID := item.Snippet.ResourceID.VideoID
		if videoID == "" {
			continue
		}

		publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		if err != nil {
			s.logger.Warn("failed to parse publish time",
				"video_id", videoID,
				"published_at", item.Snippet.PublishedAt,
			)
			continue
		}

		sermon := domain.Sermon{
			Title:      item.Snippet.Title,
			YoutubeURL: watchURLPrefix + videoID,
			VideoID:    videoID,
			Preacher:   category,
			PreachedAt: publishedAt,
		}

		if thumb := bestThumbnail(item.Snippet.Thumbnails); thumb != "" {
			sermon.ThumbnailURL = &thumb
		}

		sermons = append(sermons, sermon)
	}

	sort.SliceStable(sermons, func(i, j int) bool {
		return sermons[i].PreachedAt.After(sermons[j].PreachedAt)
	})

	return sermons
}

func bestThumbnail(t thumbnails) string {
	if t.High != nil {
		return t.High.URL
	}
	if t.Default != nil {
		return t.Default.URL
	}
	return ""
}
