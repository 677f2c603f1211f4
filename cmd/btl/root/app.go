package root

import (
	"context"

	"go.uber.org/zap"

	"github.com/INTERPOLALERT/back-to-life/internal/catalog"
	"github.com/INTERPOLALERT/back-to-life/internal/config"
	"github.com/INTERPOLALERT/back-to-life/internal/engine"
	"github.com/INTERPOLALERT/back-to-life/internal/narration"
	"github.com/INTERPOLALERT/back-to-life/internal/storage"
)

// app bundles the wired collaborators every command needs.
type app struct {
	cfg      *config.Config
	svc      *engine.Service
	narrator *narration.Narrator
	log      *zap.Logger
}

// openApp loads config, opens + seeds the database and wires the engine.
// The returned cleanup closes the database and flushes logs.
func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log := zap.NewNop()
	if cfg.Debug {
		log, err = zap.NewDevelopment()
		if err != nil {
			return nil, nil, err
		}
	}

	path := cfg.DBPath
	if path == "" {
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	if err := catalog.Seed(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	narrator := narration.New(cfg.SpeechCmd, cfg.Audio, log)
	narrator.SetRate(cfg.SpeechRate)

	a := &app{
		cfg:      cfg,
		svc:      engine.NewService(db, engine.WithLogger(log)),
		narrator: narrator,
		log:      log,
	}
	cleanup := func() {
		a.narrator.Stop()
		_ = db.Close()
		_ = log.Sync()
	}
	return a, cleanup, nil
}
