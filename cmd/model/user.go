package model

type User struct {
	UserId    int64  `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	Username  string `gorm:"size:64;uniqueIndex" json:"username"`
	FullName  string `gorm:"size:128" json:"fullName"`
	AvatarUrl string `gorm:"size:512" json:"avatarUrl"`
	CoverUrl  string `gorm:"size:512" json:"coverUrl"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// UserVideoWatchHistory records which videos a user has opened. The unique
// index gives watch history its set semantics: re-watching a video must not
// create a second entry.
type UserVideoWatchHistory struct {
	UserVideoWatchHistoryId int64  `gorm:"primaryKey;autoIncrement:false" json:"-"`
	UserId                  int64  `gorm:"uniqueIndex:idx_user_video" json:"userId"`
	VideoId                 int64  `gorm:"uniqueIndex:idx_user_video" json:"videoId"`
	WatchTime               string `json:"watchTime"`
}
