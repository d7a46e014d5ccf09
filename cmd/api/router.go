package main

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	comment "vidtube.com/cmd/api/handlers/comment"
	like "vidtube.com/cmd/api/handlers/like"
	playlist "vidtube.com/cmd/api/handlers/playlist"
	subscription "vidtube.com/cmd/api/handlers/subscription"
	tweet "vidtube.com/cmd/api/handlers/tweet"
	video "vidtube.com/cmd/api/handlers/video"
	"vidtube.com/cmd/api/router/authfunc"
)

func register(r *server.Hertz) {
	authMiddleware, err := authfunc.NewAuthMiddleware()
	if err != nil {
		panic(err)
	}
	auth := authMiddleware.MiddlewareFunc()

	r.GET("/healthz", func(ctx context.Context, c *app.RequestContext) {
		c.JSON(consts.StatusOK, map[string]interface{}{
			"statusCode": consts.StatusOK,
			"message":    "OK",
			"success":    true,
		})
	})

	v1 := r.Group("/api/v1")

	videos := v1.Group("/videos", auth)
	{
		videos.GET("", video.VideoList)
		videos.POST("", video.PublishVideo)
		videos.GET("/:videoId", video.GetVideoById)
		videos.PATCH("/:videoId", video.UpdateVideo)
		videos.DELETE("/:videoId", video.DeleteVideo)
		videos.PATCH("/toggle/publish/:videoId", video.TogglePublishStatus)
	}

	comments := v1.Group("/comments", auth)
	{
		comments.GET("/:videoId", comment.ListComments)
		comments.POST("/:videoId", comment.CreateComment)
		comments.PATCH("/c/:commentId", comment.UpdateComment)
		comments.DELETE("/c/:commentId", comment.DeleteComment)
	}

	likes := v1.Group("/likes", auth)
	{
		likes.POST("/toggle/v/:videoId", like.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", like.ToggleCommentLike)
		likes.POST("/toggle/t/:tweetId", like.ToggleTweetLike)
		likes.GET("/videos", like.GetLikedVideos)
	}

	playlists := v1.Group("/playlist", auth)
	{
		playlists.POST("", playlist.CreatePlaylist)
		playlists.GET("/user/:userId", playlist.GetUserPlaylists)
		playlists.GET("/:playlistId", playlist.GetPlaylistById)
		playlists.PATCH("/add/:videoId/:playlistId", playlist.AddVideoToPlaylist)
		playlists.PATCH("/remove/:videoId/:playlistId", playlist.RemoveVideoFromPlaylist)
		playlists.PATCH("/:playlistId", playlist.UpdatePlaylist)
		playlists.DELETE("/:playlistId", playlist.DeletePlaylist)
	}

	subscriptions := v1.Group("/subscriptions", auth)
	{
		subscriptions.POST("/c/:channelId", subscription.ToggleSubscription)
		subscriptions.GET("/c/:channelId", subscription.GetChannelSubscribers)
		subscriptions.GET("/u/:subscriberId", subscription.GetSubscribedChannels)
	}

	tweets := v1.Group("/tweets", auth)
	{
		tweets.POST("", tweet.CreateTweet)
		tweets.GET("/user/:userId", tweet.GetUserTweets)
		tweets.PATCH("/:tweetId", tweet.UpdateTweet)
		tweets.DELETE("/:tweetId", tweet.DeleteTweet)
	}
}
