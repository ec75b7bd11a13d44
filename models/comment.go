package models

import (
	"time"
)

type Comment struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Text    string    `gorm:"type:text;not null" json:"text"`
	Created time.Time `gorm:"autoCreateTime;<-:create" json:"created"`

	PostID uint `gorm:"not null;index" json:"post_id"`
	Post   Post `gorm:"foreignKey:PostID" json:"-"`

	AuthorID uint `gorm:"not null;index" json:"author_id"`
	Author   User `gorm:"foreignKey:AuthorID" json:"author"`
}
