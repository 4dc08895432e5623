package model

type NoticeAttachment struct {
	Model
	// Filename 存储相对上传根目录的路径，如 notices/notice_3/a.pdf
	Filename string `gorm:"type:varchar(255);not null" json:"filename"`
	NoticeID uint   `gorm:"not null;index" json:"notice_id"`
}
