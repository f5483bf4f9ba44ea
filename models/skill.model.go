package models

// TrendingSkill is an admin-curated market skill with a growth percentage.
// The skill name is the identity; user skills reference it by
// case-insensitive string match, not by id.
type TrendingSkill struct {
	Skill  string `json:"skill"`
	Growth int    `json:"growth"` // 0-100, admin-set
}
