package main

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"VideoTube.com/cmd/api/handlers"
	"VideoTube.com/cmd/api/router/authfunc"
)

func register(r *server.Hertz) {
	v1 := r.Group("/api/v1")

	videos := v1.Group("/videos")
	videos.GET("", handlers.ListVideos)
	videos.GET("/:video_id", handlers.GetVideo)
	videos.POST("", append(authfunc.Auth(), handlers.PublishVideo)...)
	videos.PUT("/:video_id", append(authfunc.Auth(), handlers.UpdateVideo)...)
	videos.DELETE("/:video_id", append(authfunc.Auth(), handlers.DeleteVideo)...)
	videos.POST("/:video_id/toggle", append(authfunc.Auth(), handlers.TogglePublishStatus)...)

	comments := v1.Group("/comments")
	comments.GET("/:video_id", handlers.ListComments)
	comments.POST("/:video_id", append(authfunc.Auth(), handlers.AddComment)...)
	comments.PUT("/:comment_id", append(authfunc.Auth(), handlers.UpdateComment)...)
	comments.DELETE("/:comment_id", append(authfunc.Auth(), handlers.DeleteComment)...)

	likes := v1.Group("/likes", authfunc.Auth()...)
	likes.POST("/video/:video_id", handlers.ToggleVideoLike)
	likes.POST("/comment/:comment_id", handlers.ToggleCommentLike)
	likes.POST("/tweet/:tweet_id", handlers.ToggleTweetLike)
	likes.GET("/videos", handlers.GetLikedVideos)

	tweets := v1.Group("/tweets")
	tweets.GET("/user/:user_id", handlers.GetUserTweets)
	tweets.POST("", append(authfunc.Auth(), handlers.CreateTweet)...)
	tweets.PUT("/:tweet_id", append(authfunc.Auth(), handlers.UpdateTweet)...)
	tweets.DELETE("/:tweet_id", append(authfunc.Auth(), handlers.DeleteTweet)...)

	playlists := v1.Group("/playlists")
	playlists.GET("/user/:user_id", handlers.GetUserPlaylists)
	playlists.GET("/:playlist_id", handlers.GetPlaylist)
	playlists.POST("", append(authfunc.Auth(), handlers.CreatePlaylist)...)
	playlists.POST("/:playlist_id/videos/:video_id", append(authfunc.Auth(), handlers.AddVideoToPlaylist)...)
	playlists.DELETE("/:playlist_id/videos/:video_id", append(authfunc.Auth(), handlers.RemoveVideoFromPlaylist)...)
	playlists.PATCH("/:playlist_id", append(authfunc.Auth(), handlers.UpdatePlaylist)...)
	playlists.DELETE("/:playlist_id", append(authfunc.Auth(), handlers.DeletePlaylist)...)

	subscriptions := v1.Group("/subscriptions")
	subscriptions.GET("/:channel_id/subscribers", handlers.GetChannelSubscribers)
	subscriptions.GET("/user/:subscriber_id", handlers.GetSubscribedChannels)
	subscriptions.POST("/:channel_id", append(authfunc.Auth(), handlers.ToggleSubscription)...)

	dashboard := v1.Group("/dashboard", authfunc.Auth()...)
	dashboard.GET("/stats", handlers.GetChannelStats)
	dashboard.GET("/videos", handlers.GetChannelVideos)
}
