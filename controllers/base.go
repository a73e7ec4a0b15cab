package controllers

import (
	"log"
	"net/http"

	"minisocial/middlewares"
	"minisocial/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func (server *Server) Initialize(dsn string) {
	// The store does not enforce referential integrity between a post's
	// author reference and the users table; a dangling reference is
	// accepted silently and resolves to empty display fields.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatalf("Cannot connect to Postgres: %v", err)
	}
	server.InitializeFromDB(db)
}

// InitializeFromDB wires the server onto an already-open database handle.
// Tests use it with in-memory SQLite so they run the production route table.
func (server *Server) InitializeFromDB(db *gorm.DB) {
	server.DB = db

	if err := server.DB.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	server.Router = gin.Default()
	server.Router.Use(middlewares.CORSMiddleware())
	server.initializeRoutes()
}

func (server *Server) Run(addr string) {
	log.Fatal(http.ListenAndServe(addr, server.Router))
}
