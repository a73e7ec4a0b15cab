package controllers

import (
	"errors"
	"net/http"

	"minisocial/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type likeRequest struct {
	UserID string `json:"user_id"`
}

// LikePost appends the acting user to the post's like set and returns the
// updated post. Liking a post twice is a no-op.
func (server *Server) LikePost(c *gin.Context) {
	pid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
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

	like := models.Like{PostID: pid, UserID: uid}
	if _, err := like.SaveLike(server.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error liking post"})
		return
	}

	updated, err := post.FindPostByID(server.DB, pid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching post"})
		return
	}
	c.JSON(http.StatusOK, postToDTO(updated))
}
