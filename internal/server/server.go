// Package server exposes the sync triggers, the admin submission
// endpoints, and the public content listings over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"church_sync/internal/domain"
	"church_sync/internal/service"
)

// SyncRunner is one triggerable sync pipeline.
type SyncRunner interface {
	Sync(ctx context.Context) (*domain.SyncResult, error)
}

// Lister serves the public content listings.
type Lister interface {
	ListSermons(ctx context.Context, category string, limit int) ([]domain.Sermon, error)
	ListBulletins(ctx context.Context) ([]domain.Bulletin, error)
}

// Admin handles manual content submissions.
type Admin interface {
	CreateSermon(ctx context.Context, in service.CreateSermonInput) (*domain.Sermon, error)
	CreateBulletin(ctx context.Context, in service.CreateBulletinInput) (*domain.Bulletin, error)
}

type Config struct {
	Addr       string
	AdminToken string
	CORSOrigin string
}

type Server struct {
	router       chi.Router
	sermonSync   SyncRunner
	bulletinSync SyncRunner
	listing      Lister
	admin        Admin
	logger       *slog.Logger
	cfg          Config
}

func New(
	sermonSync SyncRunner,
	bulletinSync SyncRunner,
	listing Lister,
	admin Admin,
	logger *slog.Logger,
	cfg Config,
) *Server {
	s := &Server{
		router:       chi.NewRouter(),
		sermonSync:   sermonSync,
		bulletinSync: bulletinSync,
		listing:      listing,
		admin:        admin,
		logger:       logger.With("component", "server"),
		cfg:          cfg,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.logRequests)
	s.router.Use(s.cors)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	s.router.Get("/sermons", s.handleListSermons)
	s.router.Get("/bulletins", s.handleListBulletins)

	s.router.Group(func(r chi.Router) {
		r.Use(s.requireAdmin)
		r.Post("/sync/youtube", s.handleSync(s.sermonSync))
		r.Post("/sync/drive", s.handleSync(s.bulletinSync))
		r.Post("/admin/sermons", s.handleCreateSermon)
		r.Post("/admin/bulletins", s.handleCreateBulletin)
	})
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("http server listening", "addr", s.cfg.Addr)
	err := httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// cors answers the admin UI's preflight requests; the sync buttons live on
// a browser page.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.CORSOrigin)
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireAdmin stands in for the hosted session provider: the back office
// sends the shared admin token as a bearer credential.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.AdminToken == "" || r.Header.Get("Authorization") != "Bearer "+s.cfg.AdminToken {
			writeJSON(w, http.StatusUnauthorized, errorResponse("관리자 권한이 없습니다."))
			return
		}
		next.ServeHTTP(w, r)
	})
}
