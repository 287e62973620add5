package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"ops-assistant/internal/agent"
	"ops-assistant/internal/riskstore"
	"ops-assistant/internal/services/health"
	"ops-assistant/internal/shared/config"
	"ops-assistant/internal/shared/metrics"
	"ops-assistant/internal/shared/server"
	"ops-assistant/internal/shared/storage/db"
	"ops-assistant/internal/shared/storage/object"
	localstore "ops-assistant/internal/shared/storage/object/local"
	s3store "ops-assistant/internal/shared/storage/object/s3"
	"ops-assistant/internal/shared/telemetry"
)

var (
	ErrUnknownSource = errors.New("unknown risk source")
	ErrNotConfigured = errors.New("risk source not configured")
)

// App holds shared dependencies.
type App struct {
	Config       config.Config
	Router       *gin.Engine
	Store        *riskstore.Store
	LoadReport   riskstore.LoadReport
	Agent        *agent.Agent
	AgentHandler *agent.Handler
	Health       *health.Service
}

// Build loads the risk store and wires the agent and router over it.
// A store that cannot be loaded is fatal.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	src, closeSrc, err := buildSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer closeSrc()

	store, report, err := riskstore.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	metrics.SetStoreRows(report.RowsAccepted, len(report.Quarantined))
	telemetry.Info("riskstore.loaded", map[string]any{
		"source":      report.Source,
		"rows_read":   report.RowsRead,
		"rows":        report.RowsAccepted,
		"quarantined": len(report.Quarantined),
		"duplicates":  len(report.DuplicateIDs),
	})

	ag := agent.New(store, agent.Options{
		DefaultTopK: cfg.DefaultTopK,
		MaxTopK:     cfg.MaxTopK,
	})
	handler := agent.NewHandler(ag, store)
	healthSvc := health.NewService(store)

	return &App{
		Config:       cfg,
		Store:        store,
		LoadReport:   report,
		Agent:        ag,
		AgentHandler: handler,
		Health:       healthSvc,
		Router: server.NewRouter(server.RouterDeps{
			Config:       cfg,
			AgentHandler: handler,
			Health:       healthSvc,
		}),
	}, nil
}

// buildSource picks the risk data source. The returned close func releases
// any connection opened for the load; rows are copied into memory first.
func buildSource(ctx context.Context, cfg config.Config) (riskstore.Source, func(), error) {
	noop := func() {}
	switch cfg.RiskSource {
	case config.SourceObject:
		store, err := buildObjectStore(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		return riskstore.ObjectSource{Store: store, Key: cfg.RiskObjectKey}, noop, nil
	case config.SourcePostgres:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return nil, noop, fmt.Errorf("%w: RISK_SOURCE=postgres requires DATABASE_URL", ErrNotConfigured)
		}
		sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultLoadOptions()))
		if err != nil {
			return nil, noop, fmt.Errorf("connect risk database: %w", err)
		}
		return riskstore.SQLSource{DB: sqlDB, Table: cfg.RiskTable}, closer(sqlDB), nil
	case config.SourceSQLite:
		sqlDB, err := db.OpenSQLite(ctx, cfg.SQLitePath, db.DefaultLoadOptions())
		if err != nil {
			return nil, noop, fmt.Errorf("open risk database: %w", err)
		}
		return riskstore.SQLSource{DB: sqlDB, Table: cfg.RiskTable}, closer(sqlDB), nil
	case "", config.SourceFile:
		return riskstore.FileSource{Path: cfg.RiskDataPath}, noop, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.RiskSource)
	}
}

func buildObjectStore(ctx context.Context, cfg config.Config) (object.Reader, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("%w: OBJECT_STORE=s3 requires S3_BUCKET", ErrNotConfigured)
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func closer(sqlDB *sql.DB) func() {
	return func() {
		if err := sqlDB.Close(); err != nil {
			telemetry.Warn("db.close_failed", map[string]any{"error": err})
		}
	}
}
