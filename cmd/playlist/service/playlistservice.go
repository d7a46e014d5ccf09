package service

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/playlist/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

// PlaylistSummary is the list-by-user projection. Totals are computed over
// the published videos actually joined, never the raw membership size.
type PlaylistSummary struct {
	PlaylistId  int64  `json:"playlistId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TotalVideos int64  `json:"totalVideos"`
	TotalViews  int64  `json:"totalViews"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type PlaylistOwner struct {
	UserId    int64  `json:"userId"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	AvatarUrl string `json:"avatarUrl"`
}

type PlaylistDetail struct {
	PlaylistSummary
	Owner  *PlaylistOwner `json:"owner,omitempty"`
	Videos []*model.Video `json:"videos"`
}

func (s *PlaylistService) CreatePlaylist(userId int64, name, description string) (*model.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errno.RequestErr.WithMessage("Name is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, errno.RequestErr.WithMessage("Description is required")
	}

	now := utils.NowString()
	playlist := &model.Playlist{
		PlaylistId:  utils.GenerateID(),
		UserId:      userId,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.CreatePlaylist(s.ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) GetUserPlaylists(userId int64) ([]*PlaylistSummary, error) {
	playlists, err := db.GetPlaylistsByUser(s.ctx, userId)
	if err != nil {
		return nil, err
	}

	summaries := make([]*PlaylistSummary, 0, len(playlists))
	for _, playlist := range playlists {
		videos, err := s.publishedVideos(playlist.PlaylistId)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summarize(playlist, videos))
	}
	return summaries, nil
}

func (s *PlaylistService) GetPlaylistById(playlistId int64) (*PlaylistDetail, error) {
	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Playlist not found")
		}
		return nil, err
	}

	videos, err := s.publishedVideos(playlistId)
	if err != nil {
		return nil, err
	}

	detail := &PlaylistDetail{
		PlaylistSummary: *summarize(playlist, videos),
		Videos:          videos,
	}
	owner, err := userdb.GetUserById(s.ctx, playlist.UserId)
	if err == nil {
		detail.Owner = &PlaylistOwner{
			UserId:    owner.UserId,
			Username:  owner.Username,
			FullName:  owner.FullName,
			AvatarUrl: owner.AvatarUrl,
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return detail, nil
}

// AddVideo adds a video to the playlist with set semantics. Only the
// playlist owner may add; the video merely has to exist.
func (s *PlaylistService) AddVideo(playlistId, videoId, userId int64) error {
	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("Playlist not found")
		}
		return err
	}
	if err := utils.RequireOwner(userId, playlist.UserId, "playlist"); err != nil {
		return err
	}
	if _, err := videodb.GetVideo(s.ctx, videoId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("Video not found")
		}
		return err
	}

	entry := &model.PlaylistVideo{
		PlaylistVideoId: utils.GenerateID(),
		PlaylistId:      playlistId,
		VideoId:         videoId,
		CreatedAt:       utils.NowString(),
	}
	if err := db.AddPlaylistVideo(s.ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			hlog.CtxDebugf(s.ctx, "video %d already in playlist %d", videoId, playlistId)
			return nil
		}
		return err
	}
	return nil
}

func (s *PlaylistService) RemoveVideo(playlistId, videoId, userId int64) error {
	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("Playlist not found")
		}
		return err
	}
	if err := utils.RequireOwner(userId, playlist.UserId, "playlist"); err != nil {
		return err
	}

	removed, err := db.RemovePlaylistVideo(s.ctx, playlistId, videoId)
	if err != nil {
		return err
	}
	if !removed {
		return errno.NotFoundErr.WithMessage("Video is not in the playlist")
	}
	return nil
}

func (s *PlaylistService) UpdatePlaylist(playlistId, userId int64, name, description string) (*model.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errno.RequestErr.WithMessage("Name is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, errno.RequestErr.WithMessage("Description is required")
	}
	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Playlist not found")
		}
		return nil, err
	}
	if err := utils.RequireOwner(userId, playlist.UserId, "playlist"); err != nil {
		return nil, err
	}

	playlist.Name = name
	playlist.Description = description
	playlist.UpdatedAt = utils.NowString()
	if err := db.UpdatePlaylistInfo(s.ctx, playlistId, name, description, playlist.UpdatedAt); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) DeletePlaylist(playlistId, userId int64) error {
	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("Playlist not found")
		}
		return err
	}
	if err := utils.RequireOwner(userId, playlist.UserId, "playlist"); err != nil {
		return err
	}
	return db.DeletePlaylist(s.ctx, playlistId)
}

// publishedVideos resolves membership into published video documents in
// playlist order.
func (s *PlaylistService) publishedVideos(playlistId int64) ([]*model.Video, error) {
	videoIds, err := db.GetPlaylistVideoIds(s.ctx, playlistId)
	if err != nil {
		return nil, err
	}
	videos, err := videodb.GetPublishedVideosByIds(s.ctx, videoIds)
	if err != nil {
		return nil, err
	}

	byId := make(map[int64]*model.Video, len(videos))
	for _, video := range videos {
		byId[video.VideoId] = video
	}
	ordered := make([]*model.Video, 0, len(videos))
	for _, id := range videoIds {
		if video, ok := byId[id]; ok {
			ordered = append(ordered, video)
		}
	}
	return ordered, nil
}

func summarize(playlist *model.Playlist, videos []*model.Video) *PlaylistSummary {
	var totalViews int64
	for _, video := range videos {
		totalViews += video.Views
	}
	return &PlaylistSummary{
		PlaylistId:  playlist.PlaylistId,
		Name:        playlist.Name,
		Description: playlist.Description,
		TotalVideos: int64(len(videos)),
		TotalViews:  totalViews,
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
	}
}
