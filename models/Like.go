package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Like rows form the per-post like set. The unique index over
// (post_id, user_id) plus the conflict-ignoring insert make SaveLike an
// atomic set-add, so two concurrent likes from the same user cannot
// produce a duplicate.
type Like struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"-"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_post_user" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_post_user" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// SaveLike appends the user to the post's like set. It is idempotent:
// a repeated like is a no-op and is not reported as an error.
func (l *Like) SaveLike(db *gorm.DB) (bool, error) {
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(l)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (l *Like) GetPostLikes(db *gorm.DB, pid uuid.UUID) (*[]Like, error) {
	likes := []Like{}
	err := db.Where("post_id = ?", pid).Order("id asc").Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return &likes, nil
}
