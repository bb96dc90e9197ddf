package server

import (
	"time"

	httpHandler "mytube-channels/interfaces/http"
	"mytube-channels/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	channelHandler httpHandler.IChannelHandler,
	playlistHandler httpHandler.IPlaylistHandler,
	playlistVideoHandler httpHandler.IPlaylistVideoHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "http://localhost:4201"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("api")

	channels := api.Group("/channels")
	channels.POST("", channelHandler.Create)
	channels.GET("", channelHandler.GetAll)
	channels.GET("/search", channelHandler.Search)
	channels.GET("/top", channelHandler.Top)
	channels.GET("/active", channelHandler.Active)
	channels.GET("/user/:userId", channelHandler.ByUser)
	channels.GET("/:id", channelHandler.GetByID)
	channels.PUT("/:id", channelHandler.Update)
	channels.DELETE("/:id", channelHandler.SoftDelete)

	playlists := api.Group("/playlists")
	playlists.POST("", playlistHandler.Create)
	playlists.GET("", playlistHandler.GetAll)
	playlists.GET("/:id", playlistHandler.GetByID)
	playlists.PUT("/:id", playlistHandler.Update)
	playlists.DELETE("/:id", playlistHandler.SoftDelete)

	playlistVideos := api.Group("/playlist-videos")
	playlistVideos.POST("", playlistVideoHandler.Create)
	playlistVideos.GET("", playlistVideoHandler.GetAll)
	playlistVideos.GET("/:id", playlistVideoHandler.GetByID)
	playlistVideos.PUT("/:id", playlistVideoHandler.Update)
	playlistVideos.DELETE("/:id", playlistVideoHandler.Delete)

	return router
}
