package controllers

import (
	"errors"
	"net/http"

	"minisocial/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type createCommentRequest struct {
	UserID  string `json:"user_id"`
	Content string `json:"content"`
}

// CreateComment appends a comment to the post and returns the updated post
// with comment authors resolved.
func (server *Server) CreateComment(c *gin.Context) {
	pid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}
	if req.UserID == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}
	uid, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	post := models.Post{}
	if _, err := post.FindPostByID(server.DB, pid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching post"})
		return
	}

	comment := models.Comment{
		PostID:  pid,
		UserID:  uid,
		Content: req.Content,
	}
	comment.Prepare()
	if errorMessages := comment.Validate(); len(errorMessages) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	if _, err := comment.SaveComment(server.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving comment"})
		return
	}

	updated, err := post.FindPostByID(server.DB, pid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching post"})
		return
	}
	c.JSON(http.StatusOK, postToDTO(updated))
}

// GetComments retrieves a post's comments in insertion order with each
// commenter's display fields resolved.
func (server *Server) GetComments(c *gin.Context) {
	pid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	comment := models.Comment{}
	comments, err := comment.GetPostComments(server.DB, pid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching comments"})
		return
	}
	c.JSON(http.StatusOK, commentsToDTOs(comments))
}
