package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	playlistservice "VideoTube.com/cmd/playlist/service"
	"VideoTube.com/pkg/errno"
)

type CreatePlaylistParam struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := AuthUserId(c)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param CreatePlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	if param.Name == "" || param.Description == "" {
		SendResponse(c, errno.ParamErr.WithMessage("name and description both required"), nil)
		return
	}

	detail, err := playlistservice.NewPlaylistService(ctx).CreatePlaylist(userId, param.Name, param.Description)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

func GetUserPlaylists(ctx context.Context, c *app.RequestContext) {
	userId, err := PathInt64(c, "user_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	playlists, err := playlistservice.NewPlaylistService(ctx).GetUserPlaylists(userId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, playlists)
}

func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := PathInt64(c, "playlist_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	detail, err := playlistservice.NewPlaylistService(ctx).GetPlaylist(playlistId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

func AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := PathInt64(c, "playlist_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	videoId, err := PathInt64(c, "video_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	detail, err := playlistservice.NewPlaylistService(ctx).AddVideo(playlistId, videoId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

func RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := PathInt64(c, "playlist_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	videoId, err := PathInt64(c, "video_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	detail, err := playlistservice.NewPlaylistService(ctx).RemoveVideo(playlistId, videoId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

type UpdatePlaylistParam struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := PathInt64(c, "playlist_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	var param UpdatePlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	if param.Name == "" && param.Description == "" {
		SendResponse(c, errno.ParamErr.WithMessage("name and description cannot both be empty"), nil)
		return
	}

	playlist, err := playlistservice.NewPlaylistService(ctx).UpdatePlaylist(playlistId, param.Name, param.Description)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := PathInt64(c, "playlist_id")
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	if err := playlistservice.NewPlaylistService(ctx).DeletePlaylist(playlistId); err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
