package sqlite

import (
	"fmt"
	"log"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"bloghub/models"
)

var DB *gorm.DB

// InitDB opens the SQLite database file and sets the shared connection.
func InitDB(path string) error {
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", path, err)
	}

	DB = db
	log.Printf("Connected to database %s", path)
	return nil
}

// Migrate creates or updates the users, blog_posts and comments tables.
func Migrate() error {
	err := DB.AutoMigrate(&models.User{}, &models.BlogPost{}, &models.Comment{}).Error
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// CloseDB closes the shared connection.
func CloseDB() error {
	if DB == nil {
		return nil
	}

	err := DB.Close()
	if err != nil {
		return fmt.Errorf("failed to close the database connection: %w", err)
	}

	log.Println("Database connection closed.")
	return nil
}

// InitDBWithConnection allows tests to inject their own connection.
func InitDBWithConnection(db *gorm.DB) {
	DB = db
}
