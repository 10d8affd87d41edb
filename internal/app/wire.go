package app

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/samber/oops"

	"preptogether/internal/api"
	"preptogether/internal/services/navigation"
	"preptogether/internal/services/profile"
	"preptogether/internal/services/registration"
	"preptogether/internal/services/session"
	"preptogether/internal/services/uniqueness"
	"preptogether/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Config   Config
	Logger   *slog.Logger
	API      *api.Client
	Tokens   *store.TokenFileStore
	Accounts *store.AccountFileStore
	Session  *session.Store
	Emails   *uniqueness.Checker
	Gate     *navigation.Gate
	Profile  *profile.View
	Router   *Router
}

// Option customises NewWire.
type Option func(*options)

type options struct {
	http *http.Client
	out  io.Writer
}

// WithHTTPClient replaces the HTTP client built from Config.Timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.http = hc }
}

// WithOutput sets where views are rendered. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, logger *slog.Logger, opts ...Option) (*Wire, error) {
	o := options{out: io.Discard}
	for _, opt := range opts {
		opt(&o)
	}
	if o.http == nil {
		o.http = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	tokens := store.NewTokenFileStore(cfg.Home)
	accounts := store.NewAccountFileStore(cfg.Home)

	sess, err := session.Open(tokens, logger.With("component", "session"))
	if err != nil {
		return nil, oops.Wrapf(err, "open session")
	}

	client := api.New(cfg.APIURL,
		api.WithHTTPClient(o.http),
		api.WithLogger(logger.With("component", "api")),
	)

	router := &Router{out: o.out, logger: logger.With("component", "router")}
	gate := navigation.New(tokens, sess, router, logger.With("component", "navigation"))
	view := profile.New(client, sess, logger.With("component", "profile"))
	router.gate = gate
	router.profile = view
	sess.Subscribe(router.sessionChanged)

	return &Wire{
		Config:   cfg,
		Logger:   logger,
		API:      client,
		Tokens:   tokens,
		Accounts: accounts,
		Session:  sess,
		Emails:   uniqueness.New(client, logger.With("component", "uniqueness")),
		Gate:     gate,
		Profile:  view,
		Router:   router,
	}, nil
}

// NewRegistration starts an empty registration form.
func (w *Wire) NewRegistration() *registration.Form {
	return registration.New(w.Emails, w.API, w.Router, w.Logger.With("component", "registration"))
}
