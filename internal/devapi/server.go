package devapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/samber/oops"
	"golang.org/x/crypto/bcrypt"
)

// CodeConfig marks an unusable server configuration.
const CodeConfig = "DEVAPI_CONFIG"

// Config configures the dev API.
type Config struct {
	// JWTSecret signs access tokens. Required.
	JWTSecret []byte
	// TokenTTL is the access token lifetime; 0 issues tokens without expiry.
	TokenTTL time.Duration
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
	// AllowedOrigins for CORS; defaults to any origin.
	AllowedOrigins []string
	Logger         *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Server serves the Prepare Together API from memory.
type Server struct {
	router *chi.Mux
	users  *memoryStore
	tokens tokenIssuer
	cost   int
	logger *slog.Logger
}

// New validates cfg and builds the router.
func New(cfg Config) (*Server, error) {
	if len(cfg.JWTSecret) == 0 {
		return nil, oops.Code(CodeConfig).Errorf("jwt secret is required")
	}
	if cfg.TokenTTL < 0 {
		return nil, oops.Code(CodeConfig).Errorf("token ttl must not be negative")
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, oops.Code(CodeConfig).With("cost", cfg.BcryptCost).Errorf("bcrypt cost out of range")
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	s := &Server{
		users:  newMemoryStore(),
		tokens: tokenIssuer{secret: cfg.JWTSecret, ttl: cfg.TokenTTL, now: cfg.Now},
		cost:   cfg.BcryptCost,
		logger: cfg.Logger,
	}
	s.setupRouter(cfg.AllowedOrigins)
	return s, nil
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Users reports how many accounts are registered.
func (s *Server) Users() int {
	return s.users.count()
}

func (s *Server) setupRouter(origins []string) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/check-email", s.handleCheckEmail)
	r.Post("/register", s.handleRegister)
	r.Post("/login", s.handleLogin)
	r.Get("/profile", s.handleProfile)

	s.router = r
}

// loggingMiddleware logs one line per request. The query string is left
// out since it carries e-mail addresses.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			s.logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
