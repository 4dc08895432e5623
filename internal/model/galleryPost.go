package model

import "time"

type GalleryPost struct {
	Model
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Date        time.Time `gorm:"not null" json:"date"`
	ThumbnailID *uint     `json:"thumbnail_id"`

	// Thumbnail 必须指向本帖自己的图片
	Thumbnail *GalleryImage  `gorm:"foreignKey:ThumbnailID" json:"thumbnail,omitempty"`
	Images    []GalleryImage `gorm:"foreignKey:PostID" json:"images,omitempty"`
}
