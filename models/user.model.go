package models

// User is a registered learner. The password is stored bcrypt-hashed and must
// be blanked by handlers before the record is returned to a client.
type User struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	Domain         string   `json:"domain"`
	Year           string   `json:"year"`
	Skills         []string `json:"skills"`
	AlignmentScore int      `json:"alignmentScore"`
	JoinedDate     string   `json:"joinedDate"`
}
