package server

import (
	"net/http"
	"time"

	httpHandler "yt-catalog/interfaces/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(catalogHandler httpHandler.ICatalogHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("api")
	api.POST("/catalog/import", catalogHandler.ImportChannel)
	api.GET("/catalog", catalogHandler.GetCatalog)
	api.GET("/catalog/:channelId", catalogHandler.GetChannelVideos)

	return router
}
