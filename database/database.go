package database

import (
	"fmt"
	"log"
	"os"

	"skillsync/config"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instances
type DbInstance struct {
	Db     *gorm.DB // primary record store
	BlobDb *gorm.DB // separate store for large video blobs
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes connections to the record store and the blob store.
// SQLite is the default so the platform persists into local files; postgres
// and mysql are selectable through DB_DRIVER for server deployments.
func ConnectDb() {
	db, err := openDatabase(config.AppConfig.DBDriver, config.AppConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to %s database: %v", config.AppConfig.DBDriver, err)
		os.Exit(2)
	}

	// Video blobs always live in their own sqlite file, separate from the
	// record store, so bulky media never sits in the main database.
	blobDb, err := openDatabase("sqlite", config.AppConfig.BlobDB)
	if err != nil {
		log.Fatalf("Failed to open blob database: %v", err)
		os.Exit(2)
	}

	// Set up connection pooling on the primary store
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)   // Maximum open connections
	sqlDB.SetMaxIdleConns(5)    // Maximum idle connections
	sqlDB.SetConnMaxLifetime(0) // No timeout

	// Run database migrations
	runMigrations(db, blobDb)

	// Save database instance globally
	Database = DbInstance{Db: db, BlobDb: blobDb}
}

// openDatabase opens a GORM connection for the configured driver
func openDatabase(driver, name string) (*gorm.DB, error) {
	switch driver {
	case "postgres":
		dsn := config.AppConfig.DBDsn
		if dsn == "" {
			dsn = fmt.Sprintf(
				"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
				os.Getenv("DB_HOST"),
				os.Getenv("DB_USER"),
				os.Getenv("DB_PASSWORD"),
				name,
				os.Getenv("DB_PORT"),
			)
		}
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case "mysql":
		dsn := config.AppConfig.DBDsn
		if dsn == "" {
			dsn = fmt.Sprintf(
				"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				os.Getenv("DB_USER"),
				os.Getenv("DB_PASSWORD"),
				os.Getenv("DB_HOST"),
				os.Getenv("DB_PORT"),
				name,
			)
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(name), &gorm.Config{})
	}
}

// Record is a row of the primary record store: one JSON collection per key.
type Record struct {
	Key   string `gorm:"primaryKey"`
	Value datatypes.JSON
}

// VideoBlob is a row of the blob store, keyed by video_<courseId>.
type VideoBlob struct {
	Key  string `gorm:"primaryKey"`
	File []byte `gorm:"type:blob"`
	Name string
	Type string
}

// TableName keeps the blob table name aligned with the store layout
func (VideoBlob) TableName() string {
	return "course_videos"
}

// runMigrations performs database migrations
func runMigrations(db, blobDb *gorm.DB) {
	log.Println("Running Migrations...")

	if err := db.AutoMigrate(&Record{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if err := blobDb.AutoMigrate(&VideoBlob{}); err != nil {
		log.Fatalf("Blob store migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
