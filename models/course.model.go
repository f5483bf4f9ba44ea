package models

// Video type values for Course.VideoType
const (
	VideoTypeYoutube = "youtube"
	VideoTypeLocal   = "local"
)

// Course difficulty levels
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Course is a learning course. Local videos are not embedded: VideoUrl holds a
// blob-store reference of the form "local:video_<courseId>" and the bytes are
// resolved lazily when a player requests them.
type Course struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Domain      string           `json:"domain"`
	Difficulty  string           `json:"difficulty"` // Beginner, Intermediate, Advanced
	VideoUrl    string           `json:"videoUrl"`
	VideoType   string           `json:"videoType"` // youtube, local
	Documents   []CourseDocument `json:"documents"`
	CreatedDate string           `json:"createdDate"`
}

// CourseDocument is a study document embedded inline in the course record.
// Size is validated against the 10MB ceiling at upload time only.
type CourseDocument struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // MIME type
	Data string `json:"data"` // base64 payload
	Size int64  `json:"size"`
}
