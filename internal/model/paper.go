package model

type Paper struct {
	Model
	Title   string `gorm:"type:varchar(500);not null" json:"title"`
	Author  string `gorm:"type:varchar(500);not null" json:"author"`
	Journal string `gorm:"type:varchar(200);not null" json:"journal"`
	Month   string `gorm:"type:varchar(50)" json:"month"`
	Year    int    `gorm:"not null" json:"year"`
	Link    string `gorm:"type:varchar(300)" json:"link"`
}
