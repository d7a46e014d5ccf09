package model

// Subscription links a subscriber to a channel, both user ids. The unique
// index keeps at most one row per (subscriber, channel) pair.
type Subscription struct {
	SubscriptionId int64  `gorm:"primaryKey;autoIncrement:false" json:"subscriptionId"`
	SubscriberId   int64  `gorm:"uniqueIndex:idx_subscriber_channel" json:"subscriber"`
	ChannelId      int64  `gorm:"uniqueIndex:idx_subscriber_channel" json:"channel"`
	CreatedAt      string `json:"createdAt"`
}
