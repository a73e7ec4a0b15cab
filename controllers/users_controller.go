package controllers

import (
	"errors"
	"net/http"

	"minisocial/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUsers retrieves all users.
func (server *Server) GetUsers(c *gin.Context) {
	user := models.User{}

	users, err := user.FindAllUsers(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
		return
	}
	c.JSON(http.StatusOK, usersToDTOs(users))
}

// GetUser retrieves a single user with follower and following counts.
func (server *Server) GetUser(c *gin.Context) {
	uid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	user := models.User{}
	found, err := user.FindUserByID(server.DB, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user"})
		return
	}

	follow := models.Follow{}
	followers, err := follow.CountFollowers(server.DB, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting followers"})
		return
	}
	following, err := follow.CountFollowing(server.DB, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting following"})
		return
	}

	c.JSON(http.StatusOK, UserProfileDTO{
		UserDTO:   userToDTO(found),
		Followers: followers,
		Following: following,
	})
}

// GetUserPosts retrieves a user's posts, newest first.
func (server *Server) GetUserPosts(c *gin.Context) {
	uid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	post := models.Post{}
	posts, err := post.FindUserPosts(server.DB, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching posts"})
		return
	}
	c.JSON(http.StatusOK, postsToDTOs(posts))
}
