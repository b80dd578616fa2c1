package session

import "time"

// TTL is how long a session lives, fixed at creation. Same ten minutes
// the session store has always used.
const TTL = 600 * time.Second

// UserRef is a copy of the login form kept for re-display on the
// profile page. It is not a normalized reference to the account.
type UserRef struct {
	Name     string `bson:"name" json:"name"`
	Username string `bson:"username" json:"username"`
}

type Session struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	IsAuth    bool      `bson:"is_auth"`
	UserRef   UserRef   `bson:"user_ref"`
	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// Repository is the shared session store. Find returns nil for an
// unknown or expired token; Delete of a nonexistent token is not an
// error.
type Repository interface {
	Save(s *Session) error
	Find(id string) (*Session, error)
	Delete(id string) error
}
