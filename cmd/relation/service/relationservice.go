package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/relation/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

// ToggleSubscription subscribes the actor to the channel if no subscription
// exists and unsubscribes otherwise. Returns the resulting state.
func (s *RelationService) ToggleSubscription(subscriberId, channelId int64) (bool, error) {
	if subscriberId == channelId {
		return false, errno.RequestErr.WithMessage("Cannot subscribe to own channel")
	}
	if _, err := userdb.GetUserById(s.ctx, channelId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, errno.NotFoundErr.WithMessage("Channel not found")
		}
		return false, err
	}

	subscription := &model.Subscription{
		SubscriptionId: utils.GenerateID(),
		SubscriberId:   subscriberId,
		ChannelId:      channelId,
		CreatedAt:      utils.NowString(),
	}
	err := db.CreateSubscription(s.ctx, subscription)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, err
	}
	if _, err := db.DeleteSubscription(s.ctx, subscriberId, channelId); err != nil {
		return false, err
	}
	return false, nil
}
