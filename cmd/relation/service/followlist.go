package service

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/relation/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/errno"
)

// SubscriberInfo is one entry of a channel's subscriber list.
type SubscriberInfo struct {
	UserId    int64  `json:"userId"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	AvatarUrl string `json:"avatarUrl"`
}

// ChannelInfo is one channel a user has subscribed to, enriched with the
// channel's most recently created video.
type ChannelInfo struct {
	UserId      int64        `json:"userId"`
	Username    string       `json:"username"`
	FullName    string       `json:"fullName"`
	AvatarUrl   string       `json:"avatarUrl"`
	LatestVideo *model.Video `json:"latestVideo,omitempty"`
}

// GetChannelSubscribers projects the profiles of everyone subscribed to the
// channel plus the total count.
func (s *RelationService) GetChannelSubscribers(channelId int64) ([]*SubscriberInfo, int64, error) {
	if _, err := userdb.GetUserById(s.ctx, channelId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, errno.NotFoundErr.WithMessage("Channel not found")
		}
		return nil, 0, err
	}

	subscriberIds, err := db.GetSubscriberIds(s.ctx, channelId)
	if err != nil {
		return nil, 0, err
	}
	users, err := userdb.GetUsersByIds(s.ctx, subscriberIds)
	if err != nil {
		return nil, 0, err
	}

	subscribers := make([]*SubscriberInfo, 0, len(users))
	for _, user := range users {
		subscribers = append(subscribers, &SubscriberInfo{
			UserId:    user.UserId,
			Username:  user.Username,
			FullName:  user.FullName,
			AvatarUrl: user.AvatarUrl,
		})
	}
	return subscribers, int64(len(subscribers)), nil
}

// GetSubscribedChannels lists the channels the user subscribes to, each with
// its latest video by creation time.
func (s *RelationService) GetSubscribedChannels(subscriberId int64) ([]*ChannelInfo, int64, error) {
	channelIds, err := db.GetSubscribedChannelIds(s.ctx, subscriberId)
	if err != nil {
		return nil, 0, err
	}
	users, err := userdb.GetUsersByIds(s.ctx, channelIds)
	if err != nil {
		return nil, 0, err
	}

	channels := make([]*ChannelInfo, 0, len(users))
	for _, user := range users {
		latest, err := videodb.GetLatestVideoByUser(s.ctx, user.UserId)
		if err != nil {
			return nil, 0, err
		}
		channels = append(channels, &ChannelInfo{
			UserId:      user.UserId,
			Username:    user.Username,
			FullName:    user.FullName,
			AvatarUrl:   user.AvatarUrl,
			LatestVideo: latest,
		})
	}
	return channels, int64(len(channels)), nil
}
