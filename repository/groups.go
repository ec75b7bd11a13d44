package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Savin-AS94/hw05-final/models"
)

type GroupRepo struct {
	db *gorm.DB
}

func NewGroupRepo(db *gorm.DB) *GroupRepo {
	return &GroupRepo{db: db}
}

func (r *GroupRepo) BySlug(slug string) (*models.Group, error) {
	var group models.Group
	err := r.db.Where("slug = ?", slug).First(&group).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepo) Get(id uint) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepo) Create(group *models.Group) error {
	return r.db.Create(group).Error
}
