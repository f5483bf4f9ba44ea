package store

import (
	"path/filepath"
	"testing"

	"skillsync/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestBlobStore(t *testing.T) *BlobStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "blobs.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&database.VideoBlob{}))
	return NewBlobStore(db)
}

func TestBlobStoreRoundTrip(t *testing.T) {
	b := newTestBlobStore(t)

	key, err := b.Store("c1", []byte{0x00, 0x01, 0x02}, "intro.mp4", "video/mp4")
	require.NoError(t, err)
	assert.Equal(t, "video_c1", key)

	blob := b.Retrieve(key)
	require.NotNil(t, blob)
	assert.Equal(t, []byte{0x00, 0x01, 0x02}, blob.File)
	assert.Equal(t, "intro.mp4", blob.Name)
	assert.Equal(t, "video/mp4", blob.Type)
}

func TestBlobStoreOverwrite(t *testing.T) {
	b := newTestBlobStore(t)

	_, err := b.Store("c1", []byte("old"), "old.mp4", "video/mp4")
	require.NoError(t, err)
	key, err := b.Store("c1", []byte("new"), "new.webm", "video/webm")
	require.NoError(t, err)

	blob := b.Retrieve(key)
	require.NotNil(t, blob)
	assert.Equal(t, []byte("new"), blob.File)
	assert.Equal(t, "new.webm", blob.Name)
	assert.Equal(t, "video/webm", blob.Type)
}

func TestBlobStoreRetrieveMissing(t *testing.T) {
	b := newTestBlobStore(t)

	assert.Nil(t, b.Retrieve(VideoKey("nope")))
}

func TestBlobStoreRemove(t *testing.T) {
	b := newTestBlobStore(t)

	key, err := b.Store("c1", []byte("bytes"), "v.mp4", "video/mp4")
	require.NoError(t, err)

	b.Remove(key)
	assert.Nil(t, b.Retrieve(key))

	// removing an absent key is quiet
	b.Remove(key)
}
