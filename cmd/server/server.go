package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/icecube/server/icecube/referrers"
	"codeberg.org/icecube/server/icecube/stats"
	"codeberg.org/icecube/server/icecube/subscribers"
	"codeberg.org/icecube/server/internal/analytics"
	"codeberg.org/icecube/server/internal/config"
	"codeberg.org/icecube/server/internal/logger"
	"codeberg.org/icecube/server/internal/mailer"
	"codeberg.org/icecube/server/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	var (
		db             *pgxpool.Pool
		statsRepo      *stats.Repository
		subscriberRepo *subscribers.Repository
		referrerRepo   *referrers.Repository
	)

	// a missing store degrades stats, signups and referrer logging to
	// no-ops rather than refusing to start
	if cfg.StoreEnabled() {
		pool, err := newPool(cfg.SupabaseConnString)
		if err != nil {
			return nil, err
		}

		db = pool
		statsRepo = stats.NewRepository(db)
		subscriberRepo = subscribers.NewRepository(db)
		referrerRepo = referrers.NewRepository(db)
	} else {
		logger.Warn("database not configured, stats and signups disabled")
	}

	m := metrics.New()

	// a typed nil repository must not reach the recorder as a non-nil
	// store interface
	var (
		statStore     analytics.StatStore
		referrerStore analytics.ReferrerStore
	)
	if db != nil {
		statStore = statsRepo
		referrerStore = referrerRepo
	}

	recorder := analytics.NewRecorder(statStore, referrerStore, m)

	// contact delivery degrades to 503 when EmailJS is not configured
	var mail *mailer.Client
	if cfg.ContactEnabled() {
		mail = mailer.New(cfg.EmailJSPublicKey, cfg.EmailJSServiceID, cfg.EmailJSTemplateID)
	} else {
		logger.Warn("emailjs credentials not configured, contact form disabled")
	}

	router := gin.Default()

	server := &Server{
		db:             db,
		config:         cfg,
		statsRepo:      statsRepo,
		subscriberRepo: subscriberRepo,
		referrerRepo:   referrerRepo,
		recorder:       recorder,
		mail:           mail,
		metrics:        m,
		router:         router,
	}

	RegisterRoutes(router, server)

	return server, nil
}

// creates the connection pool for the Supabase-hosted store
func newPool(connString string) (*pgxpool.Pool, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// configure connection pool for supabase free tier pooler compatibility
	// free tier has ~10-15 pooler connections, so keep our pool small
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// CRITICAL: use simple protocol for supabase pooler (PgBouncer) compatibility
	// pgBouncer in transaction mode doesn't support prepared statements,
	// which causes connections to hang on subsequent queries
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
