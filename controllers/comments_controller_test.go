package controllers_test

import (
	"net/http"
	"testing"

	"minisocial/controllers"
	"minisocial/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateCommentAndFetch(t *testing.T) {
	server, r := newTestServer(t)
	alice := seedUser(t, server.DB, "alice", "Alice Johnson")
	bob := seedUser(t, server.DB, "bob", "Bob Kumar")
	post := seedPost(t, server.DB, alice, "first post")

	w := doJSON(t, r, http.MethodPost, "/api/posts/"+post.ID.String()+"/comment",
		map[string]string{"user_id": bob.ID.String(), "content": "Nice!"})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated controllers.PostDTO
	decodeInto(t, w, &updated)
	assert.Equal(t, 1, updated.CommentCount)
	assert.Equal(t, "Nice!", updated.Comments[0].Content)
	assert.Equal(t, "Bob Kumar", updated.Comments[0].DisplayName)

	listW := doJSON(t, r, http.MethodGet, "/api/posts/"+post.ID.String()+"/comments", nil)
	assert.Equal(t, http.StatusOK, listW.Code)

	var comments []controllers.CommentDTO
	decodeInto(t, listW, &comments)
	assert.Len(t, comments, 1)
	assert.Equal(t, "Nice!", comments[0].Content)
	assert.Equal(t, "Bob Kumar", comments[0].DisplayName)
	assert.Equal(t, "bob", comments[0].Username)
}

// Markup stays raw at the data layer; escaping is a rendering concern.
func TestCommentContentStoredRaw(t *testing.T) {
	server, r := newTestServer(t)
	alice := seedUser(t, server.DB, "alice", "Alice Johnson")
	post := seedPost(t, server.DB, alice, "post")

	w := doJSON(t, r, http.MethodPost, "/api/posts/"+post.ID.String()+"/comment",
		map[string]string{"user_id": alice.ID.String(), "content": "<b>bold</b> & more"})
	assert.Equal(t, http.StatusOK, w.Code)

	var comment models.Comment
	if err := server.DB.Where("post_id = ?", post.ID).Take(&comment).Error; err != nil {
		t.Fatalf("Failed to load comment: %v", err)
	}
	assert.Equal(t, "<b>bold</b> & more", comment.Content)
}

func TestCommentsKeepInsertionOrder(t *testing.T) {
	server, r := newTestServer(t)
	alice := seedUser(t, server.DB, "alice", "Alice Johnson")
	post := seedPost(t, server.DB, alice, "thread")

	for _, content := range []string{"one", "two", "three"} {
		w := doJSON(t, r, http.MethodPost, "/api/posts/"+post.ID.String()+"/comment",
			map[string]string{"user_id": alice.ID.String(), "content": content})
		assert.Equal(t, http.StatusOK, w.Code)
	}

	listW := doJSON(t, r, http.MethodGet, "/api/posts/"+post.ID.String()+"/comments", nil)
	var comments []controllers.CommentDTO
	decodeInto(t, listW, &comments)
	assert.Len(t, comments, 3)
	assert.Equal(t, "one", comments[0].Content)
	assert.Equal(t, "two", comments[1].Content)
	assert.Equal(t, "three", comments[2].Content)
}

func TestCreateCommentMissingFields(t *testing.T) {
	server, r := newTestServer(t)
	alice := seedUser(t, server.DB, "alice", "Alice Johnson")
	post := seedPost(t, server.DB, alice, "post")

	w := doJSON(t, r, http.MethodPost, "/api/posts/"+post.ID.String()+"/comment",
		map[string]string{"user_id": alice.ID.String()})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	server.DB.Model(&models.Comment{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
