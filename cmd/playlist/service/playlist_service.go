package service

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

// CreatePlaylist 新建空收藏夹
func (s *PlaylistService) CreatePlaylist(userId int64, name, description string) (*model.PlaylistDetail, error) {
	playlist := &model.Playlist{
		PlaylistId:  utils.NewID(),
		UserId:      userId,
		Name:        name,
		Description: description,
	}
	if err := db.CreatePlaylist(s.ctx, playlist); err != nil {
		return nil, err
	}
	owner, err := db.GetUserById(s.ctx, userId)
	if err != nil {
		return nil, err
	}
	return &model.PlaylistDetail{
		Playlist: *playlist,
		Owner:    owner.Summary(),
		Videos:   []*model.VideoDetail{},
	}, nil
}

func (s *PlaylistService) GetUserPlaylists(userId int64) ([]*model.Playlist, error) {
	return db.GetPlaylistsByUser(s.ctx, userId)
}

// GetPlaylist 收藏夹详情 成员视频按加入顺序 每个视频带作者投影
func (s *PlaylistService) GetPlaylist(playlistId int64) (*model.PlaylistDetail, error) {
	playlist, err := db.GetPlaylistInfo(s.ctx, playlistId)
	if err != nil {
		return nil, err
	}
	owner, err := db.GetUserById(s.ctx, playlist.UserId)
	if err != nil {
		return nil, err
	}

	videoIds, err := db.GetPlaylistVideoIds(s.ctx, playlistId)
	if err != nil {
		return nil, err
	}
	videos, err := db.GetVideosByIds(s.ctx, videoIds)
	if err != nil {
		return nil, err
	}

	byId := make(map[int64]*model.Video, len(videos))
	ownerIds := make([]int64, 0, len(videos))
	for _, v := range videos {
		byId[v.VideoId] = v
		ownerIds = append(ownerIds, v.UserId)
	}
	owners, err := db.GetUsersByIds(s.ctx, ownerIds)
	if err != nil {
		return nil, err
	}

	details := make([]*model.VideoDetail, 0, len(videoIds))
	for _, id := range videoIds {
		v, ok := byId[id]
		if !ok {
			continue
		}
		detail := &model.VideoDetail{Video: *v}
		if u, ok := owners[v.UserId]; ok {
			detail.Owner = u.Summary()
		}
		details = append(details, detail)
	}

	return &model.PlaylistDetail{
		Playlist: *playlist,
		Owner:    owner.Summary(),
		Videos:   details,
	}, nil
}

// AddVideo 集合插入 重复添加是no-op 写后校验成员关系确实生效
func (s *PlaylistService) AddVideo(playlistId, videoId int64) (*model.PlaylistDetail, error) {
	if _, err := db.GetPlaylistInfo(s.ctx, playlistId); err != nil {
		return nil, err
	}
	if _, err := db.GetVideo(s.ctx, videoId); err != nil {
		return nil, err
	}

	if _, err := db.AddPlaylistVideo(s.ctx, &model.PlaylistVideo{
		Id:         utils.NewID(),
		PlaylistId: playlistId,
		VideoId:    videoId,
	}); err != nil {
		return nil, err
	}

	ok, err := db.IsVideoInPlaylist(s.ctx, playlistId, videoId)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errno.ServiceErr.WithMessage("video membership not visible after add")
	}
	return s.GetPlaylist(playlistId)
}

// RemoveVideo 集合删除 非成员是no-op 写后校验已不在集合中
func (s *PlaylistService) RemoveVideo(playlistId, videoId int64) (*model.PlaylistDetail, error) {
	if _, err := db.GetPlaylistInfo(s.ctx, playlistId); err != nil {
		return nil, err
	}

	if _, err := db.RemovePlaylistVideo(s.ctx, playlistId, videoId); err != nil {
		return nil, err
	}

	ok, err := db.IsVideoInPlaylist(s.ctx, playlistId, videoId)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, errno.ServiceErr.WithMessage("video still in playlist after remove")
	}
	return s.GetPlaylist(playlistId)
}

func (s *PlaylistService) UpdatePlaylist(playlistId int64, name, description string) (*model.Playlist, error) {
	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}
	if description != "" {
		updates["description"] = description
	}
	if len(updates) == 0 {
		return nil, errno.ParamErr.WithMessage("nothing to update")
	}

	rows, err := db.UpdatePlaylistInfo(s.ctx, playlistId, updates)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		if _, err := db.GetPlaylistInfo(s.ctx, playlistId); err != nil {
			return nil, err
		}
	}
	return db.GetPlaylistInfo(s.ctx, playlistId)
}

func (s *PlaylistService) DeletePlaylist(playlistId int64) error {
	rows, err := db.DeletePlaylist(s.ctx, playlistId)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errno.RecordNotFoundErr.WithMessage("playlist not found")
	}
	return nil
}
