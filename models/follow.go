package models

// Follow records that UserID wants AuthorID's posts in their feed. The
// composite unique index is what makes insert-if-absent atomic under
// concurrent double-clicks.
type Follow struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	UserID uint `gorm:"not null;uniqueIndex:idx_follows_user_author" json:"user_id"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	AuthorID uint `gorm:"not null;uniqueIndex:idx_follows_user_author" json:"author_id"`
	Author   User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}
