package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment rows are owned by their post and append-only. The row ID exists
// only to keep insertion order; it is never exposed to clients.
type Comment struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"-"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Author    User      `gorm:"foreignKey:UserID" json:"author"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Comment) Prepare() {
	c.ID = 0
	c.Content = strings.TrimSpace(c.Content)
	c.Author = User{}
	c.CreatedAt = time.Now()
}

func (c *Comment) Validate() map[string]string {
	var errorMessages = make(map[string]string)

	if c.Content == "" {
		errorMessages["Required_content"] = "Required Content"
	}
	if c.UserID == uuid.Nil {
		errorMessages["Required_user"] = "Required User"
	}
	return errorMessages
}

func (c *Comment) SaveComment(db *gorm.DB) (*Comment, error) {
	err := db.Create(&c).Error
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Comment) GetPostComments(db *gorm.DB, pid uuid.UUID) (*[]Comment, error) {
	comments := []Comment{}
	err := db.Preload("Author").Where("post_id = ?", pid).
		Order("id asc").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return &comments, nil
}
