package model

type Conference struct {
	Model
	Title      string `gorm:"type:varchar(300);not null" json:"title"`
	Author     string `gorm:"type:varchar(200);not null" json:"author"`
	Conference string `gorm:"type:varchar(200);not null" json:"conference"`
	Month      string `gorm:"type:varchar(50)" json:"month"`
	Year       int    `gorm:"not null" json:"year"`
}
