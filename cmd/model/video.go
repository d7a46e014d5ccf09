package model

type Video struct {
	VideoId     int64   `gorm:"primaryKey;autoIncrement:false" json:"videoId"`
	UserId      int64   `gorm:"index" json:"userId"`
	Title       string  `gorm:"size:256" json:"title"`
	Description string  `gorm:"size:2048" json:"description"`
	VideoUrl    string  `gorm:"size:512" json:"videoUrl"`
	VideoObject string  `gorm:"size:256" json:"-"`
	CoverUrl    string  `gorm:"size:512" json:"coverUrl"`
	CoverObject string  `gorm:"size:256" json:"-"`
	Duration    float64 `json:"duration"`
	Views       int64   `json:"views"`
	IsPublished bool    `json:"isPublished"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}
