package main

import (
	"log"

	api "minisocial"
	"minisocial/models"
	"minisocial/seed"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(api.DatabaseURL()), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatalf("Cannot connect to Postgres: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	seeded, err := seed.Load(db)
	if err != nil {
		log.Fatalf("Seeding error: %v", err)
	}
	if !seeded {
		log.Println("Database already has demo data — aborting seed.")
		return
	}
	log.Println("Demo users, posts, comments, and follows added successfully")
}
