package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	chainblob "github.com/bnema/pwsync/internal/adapters/blob/chain"
	fileblob "github.com/bnema/pwsync/internal/adapters/blob/file"
	passblob "github.com/bnema/pwsync/internal/adapters/blob/pass"
	tomlblob "github.com/bnema/pwsync/internal/adapters/blob/toml"
	"github.com/bnema/pwsync/internal/adapters/navigation"
	"github.com/bnema/pwsync/internal/adapters/remote"
	"github.com/bnema/pwsync/internal/adapters/render/vault"
	"github.com/bnema/pwsync/internal/application"
	"github.com/bnema/pwsync/internal/config"
	"github.com/bnema/pwsync/internal/logging"
	"github.com/bnema/pwsync/internal/ports"
	"github.com/spf13/viper"
)

const loginHint = "pwsync login"

type app struct {
	cfg      config.Config
	logger   *slog.Logger
	session  *application.SessionStore
	auth     *application.AuthService
	creds    *application.CredentialCache
	bindings *application.BindingManager
	render   func(...vault.Page) (string, error)
	now      func() time.Time
}

func wireApp(ctx context.Context, errOut io.Writer) (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(errOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	blobs, err := openBlobStore(cfg, v, logger)
	if err != nil {
		return nil, fmt.Errorf("wire session store backend: %w", err)
	}

	clock := ports.SystemClock{}
	session := application.NewSessionStore(blobs, navigation.NewTerminal(errOut, loginHint), clock, logger)

	client, err := remote.NewClient(remote.Options{
		BaseURL:           cfg.ServerURL,
		Timeout:           cfg.Timeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Logger:            logger,
	}, session)
	if err != nil {
		return nil, fmt.Errorf("wire remote client: %w", err)
	}

	if err := session.Restore(ctx); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		session:  session,
		auth:     application.NewAuthService(client, session, clock, logger),
		creds:    application.NewCredentialCache(client, clock, logger),
		bindings: application.NewBindingManager(client, clock, logger),
		render:   vault.Render,
		now:      clock.Now,
	}, nil
}

func openBlobStore(cfg config.Config, v *viper.Viper, logger *slog.Logger) (ports.BlobStore, error) {
	switch cfg.StoreBackend {
	case config.BackendFile:
		return fileblob.NewStore(cfg.StoreDir), nil
	case config.BackendPass:
		return passblob.NewStore(cfg.PassPrefix), nil
	case config.BackendChain:
		return chainblob.NewPassFirstWithFileFallback(cfg.PassPrefix, cfg.StoreDir, logger)
	default:
		return tomlblob.NewStore(v)
	}
}

// lazyWriter resolves the command's stderr at write time so wiring can happen
// before the caller redirects output.
type lazyWriter struct {
	target func() io.Writer
}

func (w lazyWriter) Write(p []byte) (int, error) {
	return w.target().Write(p)
}
