package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"cameronstore.com/app/internal/storage"
)

// Creates the storefront_kv table used by STORAGE_DRIVER=mysql.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	kv := storage.NewGorm(db)
	defer kv.Close()

	if err := kv.Migrate(context.Background()); err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}
	log.Println("storefront_kv table is ready")
}
