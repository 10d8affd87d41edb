package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"preptogether/internal/devapi"
	"preptogether/internal/logging"
)

const (
	defaultAddr     = "127.0.0.1:5000"
	defaultTokenTTL = 15 * time.Minute
	shutdownTimeout = 5 * time.Second
)

var version = "dev"

type serveConfig struct {
	addr      string
	jwtSecret string
	tokenTTL  time.Duration
	logFormat string
	logLevel  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &serveConfig{}
	cmd := &cobra.Command{
		Use:          "devapi",
		Short:        "Run the in-memory Prepare Together API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&cfg.jwtSecret, "jwt-secret", "", "HS256 signing secret (default: random per run)")
	cmd.Flags().DurationVar(&cfg.tokenTTL, "token-ttl", defaultTokenTTL, "access token lifetime (0 = no expiry)")
	cmd.Flags().StringVar(&cfg.logFormat, "log-format", "text", "log format (json or text)")
	cmd.Flags().StringVar(&cfg.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	return cmd
}

func serve(ctx context.Context, cfg *serveConfig) error {
	level, err := logging.ParseLevel(cfg.logLevel)
	if err != nil {
		return err
	}
	logger := logging.Setup("devapi", version, cfg.logFormat, level, nil)

	secret := []byte(cfg.jwtSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return fmt.Errorf("generate jwt secret: %w", err)
		}
		logger.Warn("no --jwt-secret given, tokens will not survive a restart")
	}

	api, err := devapi.New(devapi.Config{
		JWTSecret: secret,
		TokenTTL:  cfg.tokenTTL,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("devapi listening", "addr", cfg.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
