package model

type Notice struct {
	Model
	Title     string `gorm:"type:varchar(200);not null" json:"title"`
	Content   string `gorm:"type:text;not null" json:"content"`
	ViewCount int    `gorm:"default:0;not null" json:"view_count"`

	Attachments []NoticeAttachment `gorm:"foreignKey:NoticeID" json:"attachments,omitempty"`
}
