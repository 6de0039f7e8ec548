package storage

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/misterclayt0n/ritmo/internal/config"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

type Storage struct {
	DB *sql.DB
}

func NewStorage() *Storage {
	// A missing .env is fine, the URL may come from the config file.
	_ = godotenv.Load()

	url := os.Getenv("TURSO_DATABASE_URL")
	if url == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "TURSO_DATABASE_URL not set and no config file: %v\n", err)
			os.Exit(1)
		}
		url = cfg.DB.ConnectionString
	}
	if url == "" {
		fmt.Fprintf(os.Stderr, "No database connection string configured\n")
		os.Exit(1)
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open db %s: %s\n", url, err)
		os.Exit(1)
	}

	if err := InitializeDB(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v\n", err)
		os.Exit(1)
	}

	return &Storage{DB: db}
}

func InitializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS exercises (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            description TEXT,
            primary_muscle TEXT,
            created_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS workouts (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            description TEXT,
            created_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS workout_exercises (
            id TEXT PRIMARY KEY,
            workout_id TEXT NOT NULL,
            exercise_id TEXT NOT NULL,
            position INTEGER NOT NULL,
            FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE,
            FOREIGN KEY (exercise_id) REFERENCES exercises(id)
        );
    `)
	return err
}
