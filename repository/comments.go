package repository

import (
	"gorm.io/gorm"

	"github.com/Savin-AS94/hw05-final/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db: db}
}

// ByPost returns a post's comments in insertion order.
func (r *CommentRepo) ByPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").
		Where("post_id = ?", postID).
		Order("created ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepo) CountByPost(postID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&n).Error
	return n, err
}

func (r *CommentRepo) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}
