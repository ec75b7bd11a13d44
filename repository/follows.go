package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Savin-AS94/hw05-final/models"
)

type FollowRepo struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) *FollowRepo {
	return &FollowRepo{db: db}
}

// Create inserts the (follower, followed) pair if absent. The ON CONFLICT DO
// NOTHING clause rides on the pair's unique index, so two concurrent requests
// cannot produce duplicate rows and a repeat is a silent no-op.
func (r *FollowRepo) Create(userID, authorID uint) error {
	follow := models.Follow{UserID: userID, AuthorID: authorID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error
}

// Delete removes the pair's row; deleting a non-existent follow is a no-op.
func (r *FollowRepo) Delete(userID, authorID uint) error {
	return r.db.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{}).Error
}

func (r *FollowRepo) Exists(userID, authorID uint) (bool, error) {
	var n int64
	err := r.db.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&n).Error
	return n > 0, err
}
