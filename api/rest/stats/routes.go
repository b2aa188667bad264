package stats

import (
	"codeberg.org/icecube/server/internal/config"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, statsRepo StatsReader, cfg *config.Config) {
	// read-only, token-gated; CORS preflight is answered by the
	// router-level middleware
	router.GET("/stats", GetDailyStatsHandler(statsRepo, cfg.StatsToken, cfg.StatsDebug))
}
