package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"church_sync/internal/service"
	"church_sync/internal/source"
)

const maxUploadBytes = 10 << 20

// syncResponse is the payload every trigger endpoint returns.
type syncResponse struct {
	Success bool     `json:"success"`
	Synced  int      `json:"synced"`
	Errors  []string `json:"errors,omitempty"`
	Message string   `json:"message"`
}

func (s *Server) handleSync(runner SyncRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := runner.Sync(r.Context())
		if err != nil {
			s.writeSyncError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, syncResponse{
			Success: true,
			Synced:  result.Synced,
			Errors:  result.Errors,
			Message: result.Message,
		})
	}
}

// writeSyncError maps the error taxonomy onto status codes: configuration
// errors are the administrator's to fix (400), provider rejections are
// surfaced verbatim (502), anything else is internal (500).
func (s *Server) writeSyncError(w http.ResponseWriter, err error) {
	s.logger.Error("sync failed", "error", err)

	var cfgErr *source.ConfigError
	if errors.As(err, &cfgErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse("동기화 실패: "+cfgErr.Error()))
		return
	}

	var provErr *source.ProviderError
	if errors.As(err, &provErr) {
		writeJSON(w, http.StatusBadGateway, errorResponse("동기화 실패: "+provErr.Message))
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse("동기화 실패: "+err.Error()))
}

func (s *Server) handleListSermons(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid limit"))
			return
		}
		limit = n
	}

	sermons, err := s.listing.ListSermons(r.Context(), r.URL.Query().Get("category"), limit)
	if err != nil {
		s.logger.Error("list sermons failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to load sermons"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"sermons": sermonViews(sermons)})
}

func (s *Server) handleListBulletins(w http.ResponseWriter, r *http.Request) {
	bulletins, err := s.listing.ListBulletins(r.Context())
	if err != nil {
		s.logger.Error("list bulletins failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to load bulletins"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"bulletins": bulletins})
}

type createSermonRequest struct {
	Title      string `json:"title"`
	YoutubeURL string `json:"youtube_url"`
	Preacher   string `json:"preacher"`
	PreachedAt string `json:"preached_at"`
}

func (s *Server) handleCreateSermon(w http.ResponseWriter, r *http.Request) {
	var req createSermonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	in := service.CreateSermonInput{
		Title:      req.Title,
		YoutubeURL: req.YoutubeURL,
		Preacher:   req.Preacher,
	}
	if req.PreachedAt != "" {
		t, err := time.Parse("2006-01-02", req.PreachedAt)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid preached_at, want YYYY-MM-DD"))
			return
		}
		in.PreachedAt = t
	}

	sermon, err := s.admin.CreateSermon(r.Context(), in)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyRegistered) {
			writeJSON(w, http.StatusConflict, errorResponse("이미 등록된 영상입니다."))
			return
		}
		s.logger.Error("create sermon failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("등록 실패: "+err.Error()))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"sermon":  newSermonView(*sermon),
		"message": "설교가 등록되었습니다.",
	})
}

func (s *Server) handleCreateBulletin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid multipart form"))
		return
	}

	in := service.CreateBulletinInput{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("failed to read image"))
			return
		}
		in.ImageName = header.Filename
		in.ImageData = data
		in.ImageContentType = header.Header.Get("Content-Type")
	}

	bulletin, err := s.admin.CreateBulletin(r.Context(), in)
	if err != nil {
		s.logger.Error("create bulletin failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("등록 실패: "+err.Error()))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"bulletin": bulletin,
		"message":  "소식이 등록되었습니다.",
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func errorResponse(message string) map[string]any {
	return map[string]any{"success": false, "message": message}
}
