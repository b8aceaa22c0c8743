package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"shortlink/domain/models"
	"shortlink/internal/config"
	"shortlink/internal/http/handlers/auth/login"
	"shortlink/internal/http/handlers/auth/logout"
	"shortlink/internal/http/handlers/auth/me"
	"shortlink/internal/http/handlers/auth/register"
	authmw "shortlink/internal/http/handlers/middlewares/auth"
	"shortlink/internal/http/handlers/middlewares/compressor"
	loggermw "shortlink/internal/http/handlers/middlewares/logger"
	"shortlink/internal/http/handlers/system/getping"
	"shortlink/internal/http/handlers/system/home"
	"shortlink/internal/http/handlers/url/createlink"
	"shortlink/internal/http/handlers/url/customlink"
	"shortlink/internal/http/handlers/url/listlinks"
	"shortlink/internal/http/handlers/url/redirect"
	"shortlink/internal/http/handlers/url/shorten"
)

type Authentication interface {
	Register(ctx context.Context, name, email, password string) (models.User, string, error)
	Login(ctx context.Context, email, password string) (models.User, string, error)
	ValidateAndGetUser(ctx context.Context, token string) (models.User, error)
}

type Shortener interface {
	Create(ctx context.Context, fullURL string, userID uuid.UUID) (models.ShortLink, error)
	CreateCustom(ctx context.Context, fullURL, slug string, userID uuid.UUID) (models.ShortLink, error)
	Resolve(ctx context.Context, shortCode string) (models.ShortLink, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ShortLink, error)
	ShortURL(shortCode string) string
	PingStorage(ctx context.Context) error
}

type Server struct {
	httpServer  *http.Server
	router      *mux.Router
	log         *zerolog.Logger
	urlService  Shortener
	authService Authentication
	cfg         *config.Config
}

func NewServer(log *zerolog.Logger, cfg *config.Config, svc Shortener, auth Authentication) (*Server, error) {
	if cfg == nil || cfg.ServerAddress == "" {
		return nil, errors.New("server config cannot be empty")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if svc == nil {
		return nil, errors.New("shortener service cannot be nil")
	}
	if auth == nil {
		return nil, errors.New("auth service cannot be nil")
	}

	s := &Server{
		router:      mux.NewRouter(),
		cfg:         cfg,
		log:         log,
		urlService:  svc,
		authService: auth,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           s.router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.setupRoutes()
	return s, nil
}

// Router exposes the handler tree, mainly for httptest.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.Use(loggermw.MiddlewareLogging(s.log))
	s.router.Use(compressor.MiddlewareCompressing())

	// Public routes (without auth)
	s.router.HandleFunc("/ping", getping.HandlerPing(s.urlService)).Methods("GET")
	s.router.HandleFunc("/api/create", createlink.HandlerCreateLink(s.urlService)).Methods("POST")
	s.router.HandleFunc("/api/auth/register", register.HandlerRegister(s.authService, s.cfg.CookieMaxAge)).Methods("POST")
	s.router.HandleFunc("/api/auth/login", login.HandlerLogin(s.authService, s.cfg.CookieMaxAge)).Methods("POST")
	s.router.HandleFunc("/api/auth/logout", logout.HandlerLogout()).Methods("POST")

	// Protected routes (with auth)
	protected := s.router.PathPrefix("/").Subrouter()
	protected.Use(authmw.MiddlewareAuth(s.authService))
	protected.HandleFunc("/api/shorten", shorten.HandlerShorten(s.urlService)).Methods("POST")
	protected.HandleFunc("/api/custom", customlink.HandlerCustomLink(s.urlService)).Methods("POST")
	protected.HandleFunc("/api/urls", listlinks.HandlerListLinks(s.urlService)).Methods("GET")
	protected.HandleFunc("/api/auth/me", me.HandlerMe()).Methods("GET")

	// The redirect path stays last so it never shadows the API.
	s.router.HandleFunc("/", home.HandlerHome()).Methods("GET")
	s.router.HandleFunc("/{code}", redirect.HandlerRedirect(s.urlService)).Methods("GET")
}

func (s *Server) Start(ctx context.Context) error {
	s.log.Info().Str("address", s.cfg.ServerAddress).Msg("Starting server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
