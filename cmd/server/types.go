package main

import (
	"codeberg.org/icecube/server/icecube/referrers"
	"codeberg.org/icecube/server/icecube/stats"
	"codeberg.org/icecube/server/icecube/subscribers"
	"codeberg.org/icecube/server/internal/analytics"
	"codeberg.org/icecube/server/internal/config"
	"codeberg.org/icecube/server/internal/mailer"
	"codeberg.org/icecube/server/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all server dependencies
type Server struct {
	db             *pgxpool.Pool
	config         *config.Config
	statsRepo      *stats.Repository
	subscriberRepo *subscribers.Repository
	referrerRepo   *referrers.Repository
	recorder       *analytics.Recorder
	mail           *mailer.Client
	metrics        *metrics.Metrics
	router         *gin.Engine
}
