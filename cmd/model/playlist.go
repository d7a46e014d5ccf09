package model

type Playlist struct {
	PlaylistId  int64  `gorm:"primaryKey;autoIncrement:false" json:"playlistId"`
	UserId      int64  `gorm:"index" json:"userId"`
	Name        string `gorm:"size:256" json:"name"`
	Description string `gorm:"size:2048" json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// PlaylistVideo is one membership entry. Insertion order is the playlist
// order; the unique index suppresses duplicate memberships.
type PlaylistVideo struct {
	PlaylistVideoId int64  `gorm:"primaryKey;autoIncrement:false" json:"-"`
	PlaylistId      int64  `gorm:"uniqueIndex:idx_playlist_video" json:"playlistId"`
	VideoId         int64  `gorm:"uniqueIndex:idx_playlist_video" json:"videoId"`
	CreatedAt       string `json:"createdAt"`
}
