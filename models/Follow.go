package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Follow struct {
	ID         uint      `gorm:"primary_key;autoIncrement" json:"id"`
	FollowerID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_follows_unique" json:"follower_id"`
	FolloweeID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_follows_unique" json:"followee_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// SaveFollow inserts the follow edge if absent. Returns whether a new edge
// was created; an existing pair is an idempotent no-op.
func (f *Follow) SaveFollow(db *gorm.DB) (bool, error) {
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(f)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteFollow removes the follow edge. Deleting an absent pair is an
// idempotent no-op.
func (f *Follow) DeleteFollow(db *gorm.DB) (int64, error) {
	result := db.Where("follower_id = ? AND followee_id = ?", f.FollowerID, f.FolloweeID).
		Delete(&Follow{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (f *Follow) CountFollowers(db *gorm.DB, uid uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&Follow{}).Where("followee_id = ?", uid).Count(&count).Error
	return count, err
}

func (f *Follow) CountFollowing(db *gorm.DB, uid uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&Follow{}).Where("follower_id = ?", uid).Count(&count).Error
	return count, err
}

func (f *Follow) FindFollowers(db *gorm.DB, uid uuid.UUID) (*[]User, error) {
	var users []User
	err := db.Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", uid).
		Order("follows.id asc").Limit(100).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return &users, nil
}

func (f *Follow) FindFollowing(db *gorm.DB, uid uuid.UUID) (*[]User, error) {
	var users []User
	err := db.Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", uid).
		Order("follows.id asc").Limit(100).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return &users, nil
}
