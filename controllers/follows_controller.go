package controllers

import (
	"net/http"

	"minisocial/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type followRequest struct {
	FollowerID string `json:"follower_id"`
	FolloweeID string `json:"followee_id"`
}

func (r *followRequest) parse() (follower, followee uuid.UUID, err error) {
	follower, err = uuid.Parse(r.FollowerID)
	if err != nil {
		return
	}
	followee, err = uuid.Parse(r.FolloweeID)
	return
}

// FollowUser creates the (follower, followee) edge if absent. Following a
// user twice leaves a single edge.
func (server *Server) FollowUser(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FollowerID == "" || req.FolloweeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}
	if req.FollowerID == req.FolloweeID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Can't follow yourself"})
		return
	}
	follower, followee, err := req.parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	follow := models.Follow{FollowerID: follower, FolloweeID: followee}
	if _, err := follow.SaveFollow(server.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error following user"})
		return
	}
	c.JSON(http.StatusOK, MessageDTO{Message: "Followed successfully"})
}

// UnfollowUser deletes the (follower, followee) edge. An absent pair is a
// no-op.
func (server *Server) UnfollowUser(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FollowerID == "" || req.FolloweeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}
	follower, followee, err := req.parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	follow := models.Follow{FollowerID: follower, FolloweeID: followee}
	if _, err := follow.DeleteFollow(server.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error unfollowing user"})
		return
	}
	c.JSON(http.StatusOK, MessageDTO{Message: "Unfollowed successfully"})
}

// GetFollowers lists the users following :id.
func (server *Server) GetFollowers(c *gin.Context) {
	uid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	follow := models.Follow{}
	users, err := follow.FindFollowers(server.DB, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching followers"})
		return
	}
	c.JSON(http.StatusOK, usersToDTOs(users))
}

// GetFollowing lists the users :id follows.
func (server *Server) GetFollowing(c *gin.Context) {
	uid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	follow := models.Follow{}
	users, err := follow.FindFollowing(server.DB, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching following"})
		return
	}
	c.JSON(http.StatusOK, usersToDTOs(users))
}
