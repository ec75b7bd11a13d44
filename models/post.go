package models

import (
	"time"
)

// Post is an authored entry. PubDate is assigned once on create and never
// touched by updates. GroupID is nullable: deleting a group keeps its posts
// and clears the reference, while deleting the author removes the posts.
type Post struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Text    string    `gorm:"type:text;not null" json:"text"`
	PubDate time.Time `gorm:"autoCreateTime;<-:create" json:"pub_date"`
	Image   string    `json:"image,omitempty"`

	AuthorID uint `gorm:"not null;index" json:"author_id"`
	Author   User `gorm:"foreignKey:AuthorID" json:"author"`

	GroupID *uint  `gorm:"index" json:"group_id,omitempty"`
	Group   *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`

	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}
