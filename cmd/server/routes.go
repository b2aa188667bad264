package main

import (
	"codeberg.org/icecube/server/api/rest/contact"
	"codeberg.org/icecube/server/api/rest/events"
	"codeberg.org/icecube/server/api/rest/health"
	"codeberg.org/icecube/server/api/rest/stats"
	"codeberg.org/icecube/server/api/rest/subscribe"
	"codeberg.org/icecube/server/internal/metrics"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		// typed nil concrete values must not reach the handlers as
		// non-nil interface values; the handlers answer 503 on nil
		var statsReader stats.StatsReader
		if server.statsRepo != nil {
			statsReader = server.statsRepo
		}

		var subscriberStore subscribe.SubscriberStore
		if server.subscriberRepo != nil {
			subscriberStore = server.subscriberRepo
		}

		var mail contact.Mailer
		if server.mail != nil {
			mail = server.mail
		}

		stats.RegisterRoutes(v1, statsReader, server.config)

		// public form endpoints are rate limited per client IP
		public := v1.Group("")
		public.Use(RateLimitMiddleware())
		{
			subscribe.RegisterRoutes(public, subscriberStore, server.recorder)
			contact.RegisterRoutes(public, mail, server.recorder, server.metrics)
			events.RegisterRoutes(public, server.recorder, server.config.SiteHost)
		}
	}
}
