package store

import (
	"log"

	"skillsync/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlobRefScheme prefixes blob keys when they are embedded in course records,
// e.g. videoUrl = "local:video_<courseId>".
const BlobRefScheme = "local:"

// BlobStore persists course videos, which are far too large for the JSON
// record store, in a separate binary-capable database. Records are keyed
// video_<courseId>. Failures on read and delete are swallowed: a missing or
// unreachable blob presents as nil and playback degrades, it never errors
// the caller.
type BlobStore struct {
	db *gorm.DB
}

// NewBlobStore wraps a blob database connection
func NewBlobStore(db *gorm.DB) *BlobStore {
	return &BlobStore{db: db}
}

// VideoKey builds the blob key for a course id
func VideoKey(courseID string) string {
	return "video_" + courseID
}

// Store upserts a video blob for a course and returns its key
func (b *BlobStore) Store(courseID string, file []byte, name, mimeType string) (string, error) {
	blob := database.VideoBlob{
		Key:  VideoKey(courseID),
		File: file,
		Name: name,
		Type: mimeType,
	}
	err := b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"file", "name", "type"}),
	}).Create(&blob).Error
	if err != nil {
		return "", err
	}
	return blob.Key, nil
}

// Retrieve resolves a blob by key, returning nil when the key is absent or
// the store is unreachable
func (b *BlobStore) Retrieve(key string) *database.VideoBlob {
	var blob database.VideoBlob
	if err := b.db.First(&blob, "key = ?", key).Error; err != nil {
		return nil
	}
	return &blob
}

// Remove deletes a blob, best effort. Errors are logged and dropped.
func (b *BlobStore) Remove(key string) {
	if err := b.db.Delete(&database.VideoBlob{}, "key = ?", key).Error; err != nil {
		log.Printf("blob store: failed to remove %q: %v", key, err)
	}
}
