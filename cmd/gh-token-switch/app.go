package main

import (
	"log/slog"
	"path/filepath"

	"github.com/benaskins/gh-token-switch/internal/audit"
	"github.com/benaskins/gh-token-switch/internal/config"
	"github.com/benaskins/gh-token-switch/internal/ghauth"
	"github.com/benaskins/gh-token-switch/internal/keychain"
	"github.com/benaskins/gh-token-switch/internal/notify"
	"github.com/benaskins/gh-token-switch/internal/switcher"
)

// resolvedConfigPath returns --config or the default location.
func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

// openService loads the config and wires the real collaborators. The
// returned close func flushes the audit log.
func openService() (*switcher.Service, func(), error) {
	path := resolvedConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("loaded config", "path", path, "aliases", len(cfg.Aliases))

	auditPath := filepath.Join(filepath.Dir(path), "audit.log")
	auditLog, err := audit.NewLogger(auditPath)
	if err != nil {
		// Audit logging is best-effort; run without it.
		slog.Warn("audit log unavailable", "path", auditPath, "error", err)
		auditLog = nil
	}

	svc := switcher.New(cfg, switcher.Options{
		Store:    keychain.NewAuditedStore(keychain.NewSystemStore(), auditLog),
		Helper:   ghauth.New(cfg.GH.Binary, cfg.GH.Hostname),
		Notifier: notify.NewDesktop(),
		Audit:    auditLog,
		Save: func(c *config.Config) error {
			return config.Save(path, c)
		},
	})
	return svc, func() { auditLog.Close() }, nil
}
