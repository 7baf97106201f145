package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"church_sync/internal/domain"
	"church_sync/internal/service"
	"church_sync/internal/source"
)

type stubRunner struct {
	result *domain.SyncResult
	err    error
}

func (s *stubRunner) Sync(context.Context) (*domain.SyncResult, error) {
	return s.result, s.err
}

type stubLister struct {
	sermons   []domain.Sermon
	bulletins []domain.Bulletin
	err       error
}

func (s *stubLister) ListSermons(_ context.Context, _ string, _ int) ([]domain.Sermon, error) {
	return s.sermons, s.err
}

func (s *stubLister) ListBulletins(context.Context) ([]domain.Bulletin, error) {
	return s.bulletins, s.err
}

type stubAdmin struct {
	sermon   *domain.Sermon
	bulletin *domain.Bulletin
	err      error

	gotBulletin service.CreateBulletinInput
}

func (s *stubAdmin) CreateSermon(_ context.Context, _ service.CreateSermonInput) (*domain.Sermon, error) {
	return s.sermon, s.err
}

func (s *stubAdmin) CreateBulletin(_ context.Context, in service.CreateBulletinInput) (*domain.Bulletin, error) {
	s.gotBulletin = in
	return s.bulletin, s.err
}

func newTestServer(sermonSync, bulletinSync SyncRunner, lister Lister, admin Admin) *Server {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(sermonSync, bulletinSync, lister, admin, logger, Config{
		Addr:       ":0",
		AdminToken: "secret",
		CORSOrigin: "*",
	})
}

func doRequest(t *testing.T, srv *Server, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestSyncEndpoint_Success(t *testing.T) {
	runner := &stubRunner{result: &domain.SyncResult{
		Synced:  3,
		Message: "성공적으로 3개의 영상을(를) 가져왔습니다!",
	}}
	srv := newTestServer(runner, &stubRunner{}, &stubLister{}, &stubAdmin{})

	req := httptest.NewRequest(http.MethodPost, "/sync/youtube", nil)
	req.Header.Set("Authorization", "Bearer secret")

	rec, body := doRequest(t, srv, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(3), body["synced"])
	assert.NotEmpty(t, body["message"])
}

func TestSyncEndpoint_PartialErrorsStillSucceed(t *testing.T) {
	runner := &stubRunner{result: &domain.SyncResult{
		Synced:  1,
		Errors:  []string{"upsert x: constraint violation"},
		Message: "성공적으로 1개의 주보을(를) 가져왔습니다!",
	}}
	srv := newTestServer(&stubRunner{}, runner, &stubLister{}, &stubAdmin{})

	req := httptest.NewRequest(http.MethodPost, "/sync/drive", nil)
	req.Header.Set("Authorization", "Bearer secret")

	rec, body := doRequest(t, srv, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	require.Len(t, body["errors"], 1)
}

func TestSyncEndpoint_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "configuration error",
			err:        &source.ConfigError{Field: "youtube API key"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "provider error",
			err:        &source.ProviderError{Provider: "YouTube playlists", StatusCode: 403, Message: "quotaExceeded"},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "store error",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(&stubRunner{err: tt.err}, &stubRunner{}, &stubLister{}, &stubAdmin{})

			req := httptest.NewRequest(http.MethodPost, "/sync/youtube", nil)
			req.Header.Set("Authorization", "Bearer secret")

			rec, body := doRequest(t, srv, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestSyncEndpoint_RequiresAdminToken(t *testing.T) {
	srv := newTestServer(&stubRunner{}, &stubRunner{}, &stubLister{}, &stubAdmin{})

	req := httptest.NewRequest(http.MethodPost, "/sync/youtube", nil)

	rec, _ := doRequest(t, srv, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(&stubRunner{}, &stubRunner{}, &stubLister{}, &stubAdmin{})

	req := httptest.NewRequest(http.MethodOptions, "/sync/youtube", nil)

	rec, _ := doRequest(t, srv, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestListSermons(t *testing.T) {
	lister := &stubLister{sermons: []domain.Sermon{
		{ID: 1, Title: "2025.11.23 주일설교", YoutubeURL: "https://www.youtube.com/watch?v=aaaaaaaaaaa"},
	}}
	srv := newTestServer(&stubRunner{}, &stubRunner{}, lister, &stubAdmin{})

	req := httptest.NewRequest(http.MethodGet, "/sermons?category=주일설교&limit=3", nil)

	rec, body := doRequest(t, srv, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	sermons, ok := body["sermons"].([]any)
	require.True(t, ok)
	require.Len(t, sermons, 1)

	first := sermons[0].(map[string]any)
	assert.Equal(t, "2025-11-23", first["display_date"])
}

func TestListSermons_InvalidLimit(t *testing.T) {
	srv := newTestServer(&stubRunner{}, &stubRunner{}, &stubLister{}, &stubAdmin{})

	req := httptest.NewRequest(http.MethodGet, "/sermons?limit=abc", nil)

	rec, _ := doRequest(t, srv, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSermon(t *testing.T) {
	admin := &stubAdmin{sermon: &domain.Sermon{ID: 7, Title: "2025.11.23 주일설교"}}
	srv := newTestServer(&stubRunner{}, &stubRunner{}, &stubLister{}, admin)

	payload := `{"title":"2025.11.23 주일설교","youtube_url":"https://www.youtube.com/watch?v=aaaaaaaaaaa","preacher":"주일설교","preached_at":"2025-11-23"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/sermons", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set("Content-Type", "application/json")

	rec, body := doRequest(t, srv, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
}

func TestCreateSermon_Duplicate(t *testing.T) {
	admin := &stubAdmin{err: service.ErrAlreadyRegistered}
	srv := newTestServer(&stubRunner{}, &stubRunner{}, &stubLister{}, admin)

	payload := `{"title":"t","youtube_url":"https://www.youtube.com/watch?v=aaaaaaaaaaa"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/sermons", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer secret")

	rec, _ := doRequest(t, srv, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateBulletin_Multipart(t *testing.T) {
	admin := &stubAdmin{bulletin: &domain.Bulletin{ID: 3, Title: "1123_주일주보"}}
	srv := newTestServer(&stubRunner{}, &stubRunner{}, &stubLister{}, admin)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "1123_주일주보"))
	require.NoError(t, mw.WriteField("content", "이번 주 소식"))
	fw, err := mw.CreateFormFile("image", "bulletin.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte{0xff, 0xd8, 0xff})
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/bulletins", &buf)
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec, body := doRequest(t, srv, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "1123_주일주보", admin.gotBulletin.Title)
	assert.Equal(t, "bulletin.jpg", admin.gotBulletin.ImageName)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, admin.gotBulletin.ImageData)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(&stubRunner{}, &stubRunner{}, &stubLister{}, &stubAdmin{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	rec, body := doRequest(t, srv, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}
