package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/api/router/authfunc"
	"vidtube.com/cmd/playlist/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := authfunc.CurrentUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param CreatePlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind error: %v", err)
		SendResponse(c, errno.ErrBind, nil)
		return
	}

	playlist, err := service.NewPlaylistService(ctx).CreatePlaylist(userId, param.Name, param.Description)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Playlist created successfully"), playlist)
}

func GetUserPlaylists(ctx context.Context, c *app.RequestContext) {
	userId, ok := utils.ValidateId(c.Param("userId"))
	if !ok {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid user id"), nil)
		return
	}

	playlists, err := service.NewPlaylistService(ctx).GetUserPlaylists(userId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Playlists fetched successfully"), playlists)
}

func GetPlaylistById(ctx context.Context, c *app.RequestContext) {
	playlistId, ok := utils.ValidateId(c.Param("playlistId"))
	if !ok {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid playlist id"), nil)
		return
	}

	playlist, err := service.NewPlaylistService(ctx).GetPlaylistById(playlistId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Playlist fetched successfully"), playlist)
}

func AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := authfunc.CurrentUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	videoId, ok := utils.ValidateId(c.Param("videoId"))
	if !ok {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid video id"), nil)
		return
	}
	playlistId, ok := utils.ValidateId(c.Param("playlistId"))
	if !ok {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid playlist id"), nil)
		return
	}

	if err := service.NewPlaylistService(ctx).AddVideo(playlistId, videoId, userId); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Video added to playlist successfully"), nil)
}

func RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := authfunc.CurrentUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	videoId, ok := utils.ValidateId(c.Param("videoId"))
	if !ok {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid video id"), nil)
		return
	}
	playlistId, ok := utils.ValidateId(c.Param("playlistId"))
	if !ok {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid playlist id"), nil)
		return
	}

	if err := service.NewPlaylistService(ctx).RemoveVideo(playlistId, videoId, userId); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Video removed from playlist successfully"), nil)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := authfunc.CurrentUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	playlistId, ok := utils.ValidateId(c.Param("playlistId"))
	if !ok {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid playlist id"), nil)
		return
	}
	var param UpdatePlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.CtxInfof(ctx, "bind error: %v", err)
		SendResponse(c, errno.ErrBind, nil)
		return
	}

	playlist, err := service.NewPlaylistService(ctx).UpdatePlaylist(playlistId, userId, param.Name, param.Description)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Playlist updated successfully"), playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := authfunc.CurrentUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	playlistId, ok := utils.ValidateId(c.Param("playlistId"))
	if !ok {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid playlist id"), nil)
		return
	}

	if err := service.NewPlaylistService(ctx).DeletePlaylist(playlistId, userId); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Playlist deleted successfully"), nil)
}
