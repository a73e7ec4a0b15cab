package controllers

import (
	"net/http"

	"minisocial/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createPostRequest struct {
	UserID  string `json:"user_id"`
	Content string `json:"content"`
}

// GetPosts retrieves the global feed with authors and comment authors
// resolved, sorted newest first.
func (server *Server) GetPosts(c *gin.Context) {
	post := models.Post{}

	posts, err := post.FindAllPosts(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching posts"})
		return
	}
	c.JSON(http.StatusOK, postsToDTOs(posts))
}

// CreatePost creates a post for the given user and returns it with the
// author resolved.
func (server *Server) CreatePost(c *gin.Context) {
	var req createPostRequest
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

	post := models.Post{
		UserID:  uid,
		Content: req.Content,
	}
	post.Prepare()
	if errorMessages := post.Validate(); len(errorMessages) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	created, err := post.SavePost(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating post"})
		return
	}
	c.JSON(http.StatusCreated, postToDTO(created))
}
