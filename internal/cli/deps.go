package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fiberops/circuitdesk/internal/core/ports"
	"github.com/fiberops/circuitdesk/internal/core/service"
	"github.com/fiberops/circuitdesk/internal/infrastructure/config"
	"github.com/fiberops/circuitdesk/internal/infrastructure/remote"
	"github.com/fiberops/circuitdesk/internal/infrastructure/session"
	"github.com/fiberops/circuitdesk/pkg/logger"
)

// deps bundles everything a command needs once configuration is loaded.
type deps struct {
	cfg     *config.Config
	logger  zerolog.Logger
	gate    *service.Gate
	auth    *service.AuthService
	records *service.RecordService
	close   func()
}

func buildDeps(ctx context.Context) (*deps, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	sessions, closeFn, err := openSessionStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client := remote.New(cfg.APIURL, cfg.Timeout, log)

	return &deps{
		cfg:     cfg,
		logger:  log,
		gate:    service.NewGate(sessions),
		auth:    service.NewAuthService(client, sessions, log),
		records: service.NewRecordService(client, log),
		close:   closeFn,
	}, nil
}

func openSessionStore(ctx context.Context, cfg *config.Config) (ports.SessionStore, func(), error) {
	switch cfg.Session.Backend {
	case "redis":
		store, err := session.ConnectRedis(ctx, session.RedisConfig{
			Addr: cfg.Session.RedisAddr,
			DB:   cfg.Session.RedisDB,
			Desk: cfg.Session.Desk,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	case "file", "":
		path := cfg.Session.Path
		if path == "" {
			path = session.DefaultPath()
		}
		return session.NewFileStore(path, cfg.Session.Secret), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}
