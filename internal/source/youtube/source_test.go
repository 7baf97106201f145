package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"church_sync/internal/source"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		PageSize:       50,
		Timeout:        5 * time.Second,
		MaxAttempts:    2,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     10 * time.Millisecond,
	}
}

func itemJSON(videoID, title, publishedAt string) map[string]any {
	return map[string]any{
		"snippet": map[string]any{
			"title":       title,
			"publishedAt": publishedAt,
			"resourceId":  map[string]any{"videoId": videoID},
			"thumbnails": map[string]any{
				"high": map[string]any{"url": "https://i.ytimg.com/vi/" + videoID + "/hqdefault.jpg"},
			},
		},
	}
}

func TestFetchPlaylist_FollowsEveryContinuationToken(t *testing.T) {
	pages := map[string]map[string]any{
		"": {
			"nextPageToken": "page2",
			"items": []any{
				itemJSON("aaaaaaaaaaa", "2025.11.09 주일설교", "2025-11-09T03:00:00Z"),
				itemJSON("bbbbbbbbbbb", "2025.11.16 주일설교", "2025-11-16T03:00:00Z"),
			},
		},
		"page2": {
			"nextPageToken": "page3",
			"items": []any{
				itemJSON("ccccccccccc", "2025.11.23 주일설교", "2025-11-23T03:00:00Z"),
			},
		},
		"page3": {
			"items": []any{
				itemJSON("ddddddddddd", "2025.11.30 주일설교", "2025-11-30T03:00:00Z"),
			},
		},
	}

	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "PL_TEST", r.URL.Query().Get("playlistId"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		page, ok := pages[r.URL.Query().Get("pageToken")]
		require.True(t, ok, "unexpected page token %q", r.URL.Query().Get("pageToken"))
		_ = json.NewEncoder(w).Encode(page)
	}))
	defer srv.Close()

	src := New(testConfig(srv.URL), testLogger())

	sermons, err := src.FetchPlaylist(context.Background(), "PL_TEST", "주일설교")

	require.NoError(t, err)
	assert.Equal(t, 3, requests, "every page fetched exactly once")
	require.Len(t, sermons, 4, "output size equals the sum of page sizes")

	// Newest first.
	assert.Equal(t, "ddddddddddd", sermons[0].VideoID)
	assert.Equal(t, "aaaaaaaaaaa", sermons[3].VideoID)
}

func TestFetchPlaylist_Normalization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []any{itemJSON("aaaaaaaaaaa", "2025.11.23 주일설교", "2025-11-23T03:00:00Z")},
		})
	}))
	defer srv.Close()

	src := New(testConfig(srv.URL), testLogger())

	sermons, err := src.FetchPlaylist(context.Background(), "PL_TEST", "주일설교")

	require.NoError(t, err)
	require.Len(t, sermons, 1)

	s := sermons[0]
	assert.Equal(t, "https://www.youtube.com/watch?v=aaaaaaaaaaa", s.YoutubeURL)
	assert.Equal(t, "aaaaaaaaaaa", s.VideoID)
	assert.Equal(t, "2025.11.23 주일설교", s.Title)
	assert.Equal(t, "주일설교", s.Preacher)
	assert.Equal(t, time.Date(2025, 11, 23, 3, 0, 0, 0, time.UTC), s.PreachedAt.UTC())
	require.NotNil(t, s.ThumbnailURL)
	assert.Equal(t, "https://i.ytimg.com/vi/aaaaaaaaaaa/hqdefault.jpg", *s.ThumbnailURL)
}

func TestFetchPlaylist_SkipsUnparseableItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []any{
				itemJSON("aaaaaaaaaaa", "good", "2025-11-23T03:00:00Z"),
				itemJSON("", "missing video id", "2025-11-23T03:00:00Z"),
				itemJSON("bbbbbbbbbbb", "bad date", "not-a-date"),
			},
		})
	}))
	defer srv.Close()

	src := New(testConfig(srv.URL), testLogger())

	sermons, err := src.FetchPlaylist(context.Background(), "PL_TEST", "주일설교")

	require.NoError(t, err)
	require.Len(t, sermons, 1)
	assert.Equal(t, "aaaaaaaaaaa", sermons[0].VideoID)
}

func TestFetchPlaylist_ConfigErrors(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	t.Run("missing api key", func(t *testing.T) {
		cfg := testConfig(srv.URL)
		cfg.APIKey = ""
		src := New(cfg, testLogger())

		_, err := src.FetchPlaylist(context.Background(), "PL_TEST", "주일설교")

		var cfgErr *source.ConfigError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("missing playlist id", func(t *testing.T) {
		src := New(testConfig(srv.URL), testLogger())

		_, err := src.FetchPlaylist(context.Background(), "", "주일설교")

		var cfgErr *source.ConfigError
		require.ErrorAs(t, err, &cfgErr)
	})

	assert.Zero(t, requests, "configuration errors fail before any network call")
}

func TestFetchPlaylist_ProviderErrorSurfacedWithoutRetry(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"message":"The request cannot be completed because you have exceeded your quota."}}`)
	}))
	defer srv.Close()

	src := New(testConfig(srv.URL), testLogger())

	_, err := src.FetchPlaylist(context.Background(), "PL_TEST", "주일설교")

	var provErr *source.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusForbidden, provErr.StatusCode)
	assert.Contains(t, provErr.Message, "exceeded your quota")
	assert.Equal(t, 1, requests, "provider rejections are not retried")
}

func TestFetchPlaylist_FailedPageAbortsFetch(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Query().Get("pageToken") == "" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"nextPageToken": "page2",
				"items":         []any{itemJSON("aaaaaaaaaaa", "2025.11.23 주일설교", "2025-11-23T03:00:00Z")},
			})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":{"message":"Backend Error"}}`)
	}))
	defer srv.Close()

	src := New(testConfig(srv.URL), testLogger())

	sermons, err := src.FetchPlaylist(context.Background(), "PL_TEST", "주일설교")

	require.Error(t, err)
	assert.Nil(t, sermons, "no partial collection on a failed page")
}
