package model

type GalleryImage struct {
	Model
	// Filename 存储相对路径或远端对象存储 URL
	Filename    string `gorm:"type:varchar(500);not null" json:"filename"`
	Description string `gorm:"type:varchar(255)" json:"description"`
	SortOrder   int    `gorm:"column:sort_order;default:0;not null" json:"order"`
	PostID      uint   `gorm:"not null;index" json:"post_id"`
}
