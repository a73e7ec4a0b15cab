package controllers

import "time"

type UserDTO struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserProfileDTO is the single-user shape; follower counts are computed on
// read rather than stored on the user row.
type UserProfileDTO struct {
	UserDTO
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

// CommentDTO carries the commenter's display fields flattened next to the
// content, which is the shape the frontend renders. Comments have no
// client-visible identifier; they are addressed by position.
type CommentDTO struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Username    string    `json:"username"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

// PostDTO flattens the resolved author fields and carries both the raw like
// set and the counts the feed renders.
type PostDTO struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	DisplayName  string       `json:"display_name"`
	Username     string       `json:"username"`
	Content      string       `json:"content"`
	Likes        []string     `json:"likes"`
	LikeCount    int          `json:"like_count"`
	Comments     []CommentDTO `json:"comments"`
	CommentCount int          `json:"comment_count"`
	CreatedAt    time.Time    `json:"created_at"`
}

type MessageDTO struct {
	Message string `json:"message"`
}
