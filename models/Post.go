package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Author    User      `gorm:"foreignKey:UserID" json:"author"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Likes     []Like    `gorm:"foreignKey:PostID" json:"likes"`
	Comments  []Comment `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *Post) Prepare() {
	p.Content = strings.TrimSpace(p.Content)
	p.Author = User{}
	p.CreatedAt = time.Now()
}

func (p *Post) Validate() map[string]string {
	var errorMessages = make(map[string]string)

	if p.Content == "" {
		errorMessages["Required_content"] = "Required Content"
	}
	if p.UserID == uuid.Nil {
		errorMessages["Required_user"] = "Required User"
	}
	return errorMessages
}

func (p *Post) SavePost(db *gorm.DB) (*Post, error) {
	if err := db.Create(p).Error; err != nil {
		return nil, err
	}
	return p.FindPostByID(db, p.ID)
}

// withResolution preloads the author, like set and comment sequence so a
// post can be serialized with display fields instead of raw identifiers.
// Likes and comments are kept in insertion order.
func withResolution(db *gorm.DB) *gorm.DB {
	return db.Preload("Author").
		Preload("Likes", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("likes.id ASC")
		}).
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("comments.id ASC")
		}).
		Preload("Comments.Author")
}

func (p *Post) FindAllPosts(db *gorm.DB) (*[]Post, error) {
	var posts []Post
	err := withResolution(db).Order("created_at desc").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return &posts, nil
}

func (p *Post) FindPostByID(db *gorm.DB, pid uuid.UUID) (*Post, error) {
	var post Post
	err := withResolution(db).Where("id = ?", pid).Take(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (p *Post) FindUserPosts(db *gorm.DB, uid uuid.UUID) (*[]Post, error) {
	var posts []Post
	err := withResolution(db).Where("user_id = ?", uid).
		Order("created_at desc").Limit(100).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return &posts, nil
}
