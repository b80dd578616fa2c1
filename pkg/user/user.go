package user

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrNoSuchUser        = errors.New("no such user")
	ErrBadPassword       = errors.New("wrong password")
	ErrStore             = errors.New("store failure")
)

type User struct {
	MongoID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID           string             `bson:"-" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"password" json:"-"`
}

// Repository is the account store. InsertIfAbsent is the only way to
// create a user: the store decides atomically whether the username is
// taken, so two concurrent signups can never both win.
type Repository interface {
	InsertIfAbsent(user *User) error
	FindByUsername(username string) (*User, error)
	FindByID(id string) (*User, error)
}
