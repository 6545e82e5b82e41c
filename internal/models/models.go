package models

// Question difficulty levels. The level is part of a question's storage key.
const (
	LevelEasy   = "easy"
	LevelMedium = "medium"
	LevelHard   = "hard"
)

// Levels is the fixed probe order for id lookups: the key embeds the level,
// which is not derivable from the id alone, so lookups try each in turn.
var Levels = []string{LevelEasy, LevelMedium, LevelHard}

// IsValidLevel reports whether level is one of easy, medium, hard.
func IsValidLevel(level string) bool {
	for _, l := range Levels {
		if l == level {
			return true
		}
	}
	return false
}

// AdminAccount is stored at admin:user:<username>. Created once at startup if
// absent; there is no update or delete path.
type AdminAccount struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    int64  `json:"createdAt"`
}

// LegacySession is a server-tracked session keyed by an opaque token, stored
// at admin:session:<token>. It predates the signed-token scheme and is kept
// only so tokens issued back then keep working.
type LegacySession struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	ExpiresAt int64  `json:"expiresAt"`
}

// Question is stored at question:<level>:<id>. Timestamps are epoch millis.
type Question struct {
	ID        string   `json:"id"`
	Level     string   `json:"level"`
	Question  string   `json:"question"`
	Answers   []string `json:"answers"`
	Correct   int      `json:"correct"`
	Hint      string   `json:"hint"`
	CreatedAt int64    `json:"created_at"`
	UpdatedAt int64    `json:"updated_at"`
}

// QuestionInput is the create/update payload. Correct is a pointer so a
// missing field is distinguishable from answer index 0.
type QuestionInput struct {
	Level    string   `json:"level" validate:"required,oneof=easy medium hard"`
	Question string   `json:"question" validate:"required"`
	Answers  []string `json:"answers" validate:"required,len=4"`
	Correct  *int     `json:"correct" validate:"required,min=0,max=3"`
	Hint     string   `json:"hint" validate:"required"`
}
