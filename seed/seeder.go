package seed

import (
	"errors"
	"time"

	"minisocial/models"

	"gorm.io/gorm"
)

// demoUsers returns fresh fixture values on every call so a Load never
// carries identifiers stamped by a previous run.
func demoUsers() []models.User {
	return []models.User{
		{
			Username:    "alice",
			DisplayName: "Alice Johnson",
			Bio:         "Loves travel and coffee.",
		},
		{
			Username:    "bob",
			DisplayName: "Bob Kumar",
			Bio:         "Frontend dev & gamer.",
		},
		{
			Username:    "carol",
			DisplayName: "Carol M",
			Bio:         "Photographer and creator.",
		},
	}
}

func demoPostContents() []string {
	return []string{
		"Hello world! This is my first post.",
		"Built a small app today — feels great.",
		"Sharing some photos from my trip.",
	}
}

// Load bootstraps the demo data set: three users, three posts, two comments
// and three follow edges. It is idempotent; when the demo users already
// exist it reports false and writes nothing.
func Load(db *gorm.DB) (bool, error) {
	existing := models.User{}
	err := db.Where("username = ?", "alice").Take(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	users := demoUsers()
	for i := range users {
		users[i].Prepare()
		if _, err := users[i].SaveUser(db); err != nil {
			return false, err
		}
	}

	contents := demoPostContents()
	posts := make([]models.Post, len(contents))
	for i, content := range contents {
		posts[i] = models.Post{
			UserID:    users[i].ID,
			Content:   content,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&posts[i]).Error; err != nil {
			return false, err
		}
	}

	comments := []models.Comment{
		{PostID: posts[0].ID, UserID: users[1].ID, Content: "Welcome!", CreatedAt: time.Now()},
		{PostID: posts[1].ID, UserID: users[0].ID, Content: "Nice work!", CreatedAt: time.Now()},
	}
	for i := range comments {
		if _, err := comments[i].SaveComment(db); err != nil {
			return false, err
		}
	}

	follows := []models.Follow{
		{FollowerID: users[0].ID, FolloweeID: users[1].ID},
		{FollowerID: users[1].ID, FolloweeID: users[0].ID},
		{FollowerID: users[2].ID, FolloweeID: users[0].ID},
	}
	for i := range follows {
		if _, err := follows[i].SaveFollow(db); err != nil {
			return false, err
		}
	}

	return true, nil
}
