package subscribe

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, subscriberRepo SubscriberStore, tracker Tracker) {
	router.POST("/subscribe", CreateSubscriberHandler(subscriberRepo, tracker))
}
