package events

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, recorder PageViewRecorder, siteHost string) {
	router.POST("/events/pageview", PageViewHandler(recorder, siteHost))
}
