package service

import (
	"vidtube.com/cmd/model"
	"vidtube.com/cmd/video/dal/db"
)

// VideoListRequest mirrors the listing query parameters.
type VideoListRequest struct {
	Query    string
	UserId   int64
	SortBy   string
	SortType string
	Page     int64
	Limit    int64
}

func (s *VideoService) VideoList(req *VideoListRequest) ([]*model.Video, int64, error) {
	filter := &db.VideoFilter{
		Query:    req.Query,
		UserId:   req.UserId,
		SortBy:   req.SortBy,
		SortType: req.SortType,
		Page:     req.Page,
		Limit:    req.Limit,
	}
	return db.QueryVideos(s.ctx, filter)
}
