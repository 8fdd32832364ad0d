package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/autofeed/pkg/delivery"
	"github.com/umputun/autofeed/pkg/domain"
	"github.com/umputun/autofeed/pkg/service"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/feed_service.go -pkg mocks -skip-ensure -fmt goimports . FeedService

// authUser is the basic auth user name for mutating api calls
const authUser = "autofeed"

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	feeds   FeedService
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// FeedService is the set of feed operations exposed over http
type FeedService interface {
	CreateFeed(ctx context.Context, req service.FeedRequest) (domain.Feed, error)
	ListFeeds(ctx context.Context) ([]domain.Feed, error)
	GetFeed(ctx context.Context, id string) (domain.Feed, error)
	UpdateFeed(ctx context.Context, id string, req service.FeedRequest) (domain.Feed, error)
	DeleteFeed(ctx context.Context, id string) (bool, error)
	ToggleFeed(ctx context.Context, name string) (domain.Feed, error)
	SendNow(ctx context.Context, id string) (delivery.Outcome, error)
	Status(ctx context.Context) ([]domain.FeedStatus, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetAuthPassword() string
}

// New initializes a new server instance
func New(cfg ConfigProvider, feeds FeedService, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		feeds:   feeds,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("autofeed", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024))
}

// setupRoutes configures application routes, mutating routes are behind basic auth if password is set
func (s *Server) setupRoutes() {
	auth := func(next http.Handler) http.Handler { return next }
	if passwd := s.config.GetAuthPassword(); passwd != "" {
		auth = rest.BasicAuthWithUserPasswd(authUser, passwd)
	}

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /feeds", s.listFeedsHandler)
		r.HandleFunc("GET /feeds/{id}", s.getFeedHandler)

		r.Group().Route(func(g *routegroup.Bundle) {
			g.Use(auth)
			g.HandleFunc("POST /feeds", s.createFeedHandler)
			g.HandleFunc("PUT /feeds/{id}", s.updateFeedHandler)
			g.HandleFunc("DELETE /feeds/{id}", s.deleteFeedHandler)
			g.HandleFunc("POST /feeds/{name}/toggle", s.toggleFeedHandler)
			g.HandleFunc("POST /feeds/{id}/send", s.sendFeedHandler)
		})
	})

	s.router.With(auth).HandleFunc("POST /api/autofeed", s.legacyCreateHandler)
}
