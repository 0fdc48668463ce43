package models

import "github.com/jinzhu/gorm"

type User struct {
	gorm.Model
	Email    string `gorm:"unique_index"`
	Password string
	Name     string
	IsAdmin  bool
	Posts    []BlogPost `gorm:"foreignkey:AuthorID"`
	Comments []Comment  `gorm:"foreignkey:AuthorID"`
}

type BlogPost struct {
	gorm.Model
	Title    string `gorm:"unique_index"`
	Subtitle string
	Date     string
	Body     string `gorm:"type:text"`
	ImgURL   string
	Author   string
	AuthorID uint
	Comments []Comment `gorm:"foreignkey:PostID"`
}

type Comment struct {
	gorm.Model
	Text     string `gorm:"type:text"`
	AuthorID uint
	PostID   uint
}
