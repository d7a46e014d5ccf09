package service

import (
	"context"

	"vidtube.com/cmd/model"
)

type VideoService struct {
	ctx context.Context
}

func NewVideoService(ctx context.Context) *VideoService {
	return &VideoService{ctx: ctx}
}

// VideoOwner is the channel projection embedded in a video detail view.
type VideoOwner struct {
	UserId          int64  `json:"userId"`
	Username        string `json:"username"`
	AvatarUrl       string `json:"avatarUrl"`
	SubscriberCount int64  `json:"subscriberCount"`
	IsSubscribed    bool   `json:"isSubscribed"`
}

// VideoDetail is the enriched single-video view: the document joined with
// its like state and the owner's subscription state for the viewer.
type VideoDetail struct {
	*model.Video
	Owner      *VideoOwner `json:"owner,omitempty"`
	LikesCount int64       `json:"likesCount"`
	IsLiked    bool        `json:"isLiked"`
}
