package db

import (
	"context"

	"vidtube.com/cmd/model"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	return DB.WithContext(ctx).Create(playlist).Error
}

func GetPlaylist(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).First(&playlist).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

func GetPlaylistsByUser(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	playlists := make([]*model.Playlist, 0)
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).
		Order("created_at DESC, playlist_id DESC").
		Find(&playlists).Error; err != nil {
		return nil, err
	}
	return playlists, nil
}

func UpdatePlaylistInfo(ctx context.Context, playlistId int64, name, description, updatedAt string) error {
	return DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).
		Updates(map[string]interface{}{
			"name":        name,
			"description": description,
			"updated_at":  updatedAt,
		}).Error
}

func DeletePlaylist(ctx context.Context, playlistId int64) error {
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).
		Delete(&model.PlaylistVideo{}).Error; err != nil {
		return err
	}
	return DB.WithContext(ctx).Where("playlist_id = ?", playlistId).Delete(&model.Playlist{}).Error
}

func AddPlaylistVideo(ctx context.Context, entry *model.PlaylistVideo) error {
	return DB.WithContext(ctx).Create(entry).Error
}

func RemovePlaylistVideo(ctx context.Context, playlistId, videoId int64) (bool, error) {
	result := DB.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetPlaylistVideoIds returns membership in insertion order.
func GetPlaylistVideoIds(ctx context.Context, playlistId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).
		Order("playlist_video_id ASC").
		Select("video_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func RemoveVideoFromAllPlaylists(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.PlaylistVideo{}).Error
}
