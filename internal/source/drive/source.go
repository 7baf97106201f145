package drive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"church_sync/internal/domain"
	"church_sync/internal/source"
)

const (
	SourceID   = "drive"
	SourceName = "Google Drive"
)

// thumbSize rewrites the size suffix Drive puts on thumbnail links (=s220
// by default) so the gallery gets a readable image.
var thumbSize = regexp.MustCompile(`=s\d+$`)

// Config holds Google Drive source configuration.
type Config struct {
	BaseURL        string
	APIKey         string
	PageSize       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source fetches bulletin candidates from a Google Drive folder.
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

// FetchFolder returns every image file in the folder as a bulletin
// candidate, newest-first by creation time. It follows every continuation
// token; a failed page aborts the whole fetch rather than returning a
// partial collection.
func (s *Source) FetchFolder(ctx context.Context, folderID string) ([]domain.Bulletin, error) {
	if s.apiKey == "" {
		return nil, &source.ConfigError{Field: "drive API key"}
	}
	if folderID == "" {
		return nil, &source.ConfigError{Field: "drive folder ID"}
	}

	var allFiles []file
	pageToken := ""

	for {
		resp, err := s.fetchPage(ctx, folderID, pageToken)
		if err != nil {
			return nil, fmt.Errorf("fetch folder %s: %w", folderID, err)
		}

		allFiles = append(allFiles, resp.Files...)

		s.logger.Debug("fetched page",
			"folder", folderID,
			"files", len(resp.Files),
			"total", len(allFiles),
		)

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	return s.transform(allFiles), nil
}

func (s *Source) fetchPage(ctx context.Context, folderID, pageToken string) (*fileListResponse, error) {
	query := fmt.Sprintf(
		"'%s' in parents and mimeType != 'application/vnd.google-apps.folder' and trashed = false",
		folderID,
	)

	q := url.Values{}
	q.Set("q", query)
	q.Set("fields", "nextPageToken,files(id,name,mimeType,thumbnailLink,webViewLink,createdTime)")
	q.Set("pageSize", fmt.Sprintf("%d", s.pageSize))
	q.Set("key", s.apiKey)
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}
	reqURL := fmt.Sprintf("%s/files?%s", s.baseURL, q.Encode())

	var resp *fileListResponse
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err = s.doRequest(ctx, reqURL)
		if err == nil {
			return resp, nil
		}

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

func (s *Source) doRequest(ctx context.Context, reqURL string) (*fileListResponse, error) {
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

	var apiResp fileListResponse
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

func (s *Source) transform(files []file) []domain.Bulletin {
	bulletins := make([]domain.Bulletin, 0, len(files))

	for _, f := range files {
		if !strings.HasPrefix(f.MimeType, "image/") {
			continue
		}

		createdAt, err := time.Parse(time.RFC3339, f.CreatedTime)
		if err != nil {
			s.logger.Warn("failed to parse created time",
				"file_id", f.ID,
				"created_time", f.CreatedTime,
			)
			continue
		}

		fileID := f.ID
		imageURL := imageURLFor(f)

		bulletin := domain.Bulletin{
			Title:       strings.TrimSuffix(f.Name, filepath.Ext(f.Name)),
			Content:     "",
			ImageURL:    &imageURL,
			DriveFileID: &fileID,
			PublishedAt: createdAt,
		}
		if f.WebViewLink != "" {
			link := f.WebViewLink
			bulletin.LinkURL = &link
		}

		bulletins = append(bulletins, bulletin)
	}

	sort.SliceStable(bulletins, func(i, j int) bool {
		return bulletins[i].PublishedAt.After(bulletins[j].PublishedAt)
	})

	return bulletins
}

// imageURLFor upsizes the Drive thumbnail link; images without one get the
// thumbnail endpoint directly.
func imageURLFor(f file) string {
	if f.ThumbnailLink != "" {
		return thumbSize.ReplaceAllString(f.ThumbnailLink, "=s1600")
	}
	return fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w1600", f.ID)
}
