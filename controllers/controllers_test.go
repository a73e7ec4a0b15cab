package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"minisocial/controllers"
	"minisocial/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer wires a Server onto an in-memory SQLite database through
// the production initialization path, so the real route table is exercised.
// The gorm config matches Initialize: migration must not create FK
// constraints the production store deliberately lacks.
func newTestServer(t *testing.T) (*controllers.Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}

	server := &controllers.Server{}
	server.InitializeFromDB(db)

	return server, server.Router
}

func seedUser(t *testing.T, db *gorm.DB, username, displayName string) models.User {
	t.Helper()
	user := models.User{Username: username, DisplayName: displayName}
	user.Prepare()
	if _, err := user.SaveUser(db); err != nil {
		t.Fatalf("Failed to seed user %q: %v", username, err)
	}
	return user
}

func seedPost(t *testing.T, db *gorm.DB, user models.User, content string) models.Post {
	t.Helper()
	post := models.Post{UserID: user.ID, Content: content}
	post.Prepare()
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("Failed to seed post: %v", err)
	}
	return post
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
}
