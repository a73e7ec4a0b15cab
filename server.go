package api

import (
	"fmt"
	"os"
	"strings"

	"minisocial/controllers"

	"github.com/joho/godotenv"
)

const defaultDSN = "host=127.0.0.1 user=postgres password=postgres dbname=mini_social port=5432 sslmode=disable TimeZone=UTC"

var server = controllers.Server{}

// DatabaseURL returns the store connection string, defaulting to a local
// instance when DATABASE_URL is unset.
func DatabaseURL() string {
	dsn := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dsn == "" {
		return defaultDSN
	}
	return dsn
}

func Run() {
	_ = godotenv.Load()

	server.Initialize(DatabaseURL())

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	addr := ":" + strings.TrimSpace(port)
	fmt.Printf("Listening on %s\n", addr)
	server.Run(addr)
}
