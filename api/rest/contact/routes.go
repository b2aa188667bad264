package contact

import (
	"codeberg.org/icecube/server/internal/metrics"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, mail Mailer, tracker Tracker, m *metrics.Metrics) {
	router.POST("/contact", SendContactHandler(mail, tracker, m))
}
