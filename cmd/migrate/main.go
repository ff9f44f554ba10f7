package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/vershina/sportclub/internal/config"
	"github.com/vershina/sportclub/internal/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbURL := config.NormalizeDatabaseURL(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		if err := database.MigrateUp(dbURL); err != nil {
			log.Fatal(err)
		}
		log.Println("Migration up successful")
	case "down":
		if err := database.MigrateDown(dbURL); err != nil {
			log.Fatal(err)
		}
		log.Println("Migration down successful")
	case "version":
		version, dirty, err := database.MigrationVersion(dbURL)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Migration version %d (dirty: %t)", version, dirty)
	default:
		log.Fatalf("unknown command %q, expected up, down or version", cmd)
	}
}
