package models

// Group is a topic posts can optionally belong to. The slug is the public
// identifier used in URLs.
type Group struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	Posts []Post `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"-"`
}
