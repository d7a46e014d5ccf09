package model

type Tweet struct {
	TweetId   int64  `gorm:"primaryKey;autoIncrement:false" json:"tweetId"`
	UserId    int64  `gorm:"index" json:"userId"`
	Content   string `gorm:"size:2048" json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
