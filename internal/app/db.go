package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/dynasty-league/internal/config"
	"github.com/riskibarqy/dynasty-league/internal/domain/audit"
	"github.com/riskibarqy/dynasty-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/dynasty-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/dynasty-league/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const dbPingTimeout = 5 * time.Second

func newAuditRepository(ctx context.Context, cfg config.Config, logger *logging.Logger) (audit.Repository, func() error, error) {
	if !cfg.AuditEnabled {
		logger.Info("selection audit uses in-memory store", "reason", "AUDIT_ENABLED=false")
		return memory.NewAuditRepository(), func() error { return nil }, nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("selection audit uses postgres", "db_name", dbNameFromURL(cfg.DBURL))

	return postgres.NewAuditRepository(db), db.Close, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, dbURLOptions{
		disablePreparedBinary: cfg.DBDisablePreparedBinary,
		applicationName:       cfg.ServiceName,
	})

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping audit db: %w", err)
	}
	return db, nil
}
