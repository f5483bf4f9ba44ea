package store

import (
	"encoding/json"
	"log"

	"skillsync/database"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store keys for the primary record store. Every collection is one JSON blob
// under one fixed key; per-user collections suffix the key with the email.
const (
	keyTrendingSkills    = "trendingSkills"
	keyDomains           = "domains"
	keyRoadmaps          = "roadmaps"
	keyAutomationRisk    = "automationRisk"
	keyUsers             = "users"
	keyCourses           = "courses"
	keyQuestions         = "questions"
	keyAssessmentResults = "assessmentResults"
	keyInterviewResults  = "interviewResults"
	keyCertificates      = "certificates"
	keyLiveClasses       = "liveClasses"
)

func enrollmentsKey(email string) string {
	return "enrollments_" + email
}

func profilePicKey(email string) string {
	return "profilePic_" + email
}

// Store is the record store: typed get/save/add/remove operations over JSON
// collections held under fixed string keys. It is handed to callers
// explicitly rather than reached through a package global, so the
// read-modify-write, last-write-wins nature of every mutation stays visible
// at the call site. There are no cross-key transactions.
type Store struct {
	db *gorm.DB
}

// New wraps a record-store database connection
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// read unmarshals the collection under key into out. It reports false when
// the key is absent or the stored JSON does not parse; callers degrade to
// their default collection in that case and never see the error itself.
func (s *Store) read(key string, out interface{}) bool {
	var rec database.Record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		return false
	}
	if err := json.Unmarshal(rec.Value, out); err != nil {
		log.Printf("store: corrupt record under %q, serving defaults: %v", key, err)
		return false
	}
	return true
}

// write serializes v and replaces the collection under key. Full replace
// semantics: no merge, last writer wins.
func (s *Store) write(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	rec := database.Record{Key: key, Value: datatypes.JSON(raw)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
}

// getList reads a collection, falling back to a copy of defaults when the
// key is missing or corrupt
func getList[T any](s *Store, key string, defaults []T) []T {
	var items []T
	if !s.read(key, &items) {
		return append([]T(nil), defaults...)
	}
	return items
}

func getMap[V any](s *Store, key string, defaults map[string]V) map[string]V {
	var m map[string]V
	if !s.read(key, &m) || m == nil {
		out := make(map[string]V, len(defaults))
		for k, v := range defaults {
			out[k] = v
		}
		return out
	}
	return m
}
