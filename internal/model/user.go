package model

type User struct {
	Model
	Username string `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	IsAdmin  bool   `gorm:"default:false;not null" json:"is_admin"`
}
