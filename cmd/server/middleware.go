package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

// requests allowed per client IP on the public form endpoints
var formRate = limiter.Rate{
	Period: 1 * time.Minute,
	Limit:  30,
}

// allows the landing page to call the API from any origin. The header
// set matches what the store and email widgets send; preflights are
// answered with 200 so the page's fetch wrapper treats them as ok.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:              []string{"Origin", "Authorization", "X-Client-Info", "Apikey", "Content-Type"},
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	})
}

// rate limits the public form endpoints with an in-memory store
func RateLimitMiddleware() gin.HandlerFunc {
	store := memorystore.NewStore()
	return mgin.NewMiddleware(limiter.New(store, formRate))
}
