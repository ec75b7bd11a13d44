// Package repository is the data-access layer. Repos hold a *gorm.DB, return
// plain model values and explicit errors; handlers never touch gorm directly.
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Savin-AS94/hw05-final/models"
)

var ErrNotFound = errors.New("record not found")

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db: db}
}

func (r *PostRepo) base() *gorm.DB {
	return r.db.Model(&models.Post{}).
		Preload("Author").
		Preload("Group").
		Order("posts.pub_date DESC, posts.id DESC")
}

// All returns every post, newest first.
func (r *PostRepo) All() ([]models.Post, error) {
	var posts []models.Post
	err := r.base().Find(&posts).Error
	return posts, err
}

func (r *PostRepo) ByGroup(groupID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.base().Where("posts.group_id = ?", groupID).Find(&posts).Error
	return posts, err
}

func (r *PostRepo) ByAuthor(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.base().Where("posts.author_id = ?", authorID).Find(&posts).Error
	return posts, err
}

// ByFollowed returns posts authored by anyone the given user follows.
func (r *PostRepo) ByFollowed(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.base().
		Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.user_id = ?", userID).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepo) Get(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").Preload("Group").First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepo) CountByAuthor(authorID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&n).Error
	return n, err
}

func (r *PostRepo) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// Update persists text, group and image changes. PubDate is create-only at
// the model level, so it survives edits untouched. The update runs against a
// detached receiver: with the loaded struct, gorm's save-associations hook
// would re-assign group_id from a preloaded Group and undo a detachment.
func (r *PostRepo) Update(post *models.Post) error {
	return r.db.Model(&models.Post{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
		"text":     post.Text,
		"group_id": post.GroupID,
		"image":    post.Image,
	}).Error
}

// Delete removes the post and, via its own query, the post's comments so the
// cascade holds on stores migrated without FK enforcement.
func (r *PostRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}
