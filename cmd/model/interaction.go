package model

type Comment struct {
	CommentId int64  `gorm:"primaryKey;autoIncrement:false" json:"commentId"`
	VideoId   int64  `gorm:"index" json:"videoId"`
	UserId    int64  `gorm:"index" json:"userId"`
	Content   string `gorm:"size:2048" json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Like target kinds. A like points at exactly one video, comment or tweet.
const (
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"
)

// Like is a tagged variant over its three possible targets. The unique index
// on (user, kind, target) makes the toggle write-first: a concurrent double
// like surfaces as a duplicate-key conflict instead of a second row.
type Like struct {
	LikeId     int64  `gorm:"primaryKey;autoIncrement:false" json:"likeId"`
	UserId     int64  `gorm:"uniqueIndex:idx_user_target" json:"likedBy"`
	TargetKind string `gorm:"size:16;uniqueIndex:idx_user_target" json:"targetKind"`
	TargetId   int64  `gorm:"uniqueIndex:idx_user_target" json:"targetId"`
	CreatedAt  string `json:"createdAt"`
}
