package user

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo keeps accounts in a process-local map. It honors the same
// atomic insert-if-absent contract as the Mongo repo, which makes it a
// drop-in store for tests and for running without a database.
type MemoryRepo struct {
	mu         sync.Mutex
	byUsername map[string]*User
	byID       map[string]*User
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byUsername: make(map[string]*User),
		byID:       make(map[string]*User),
	}
}

func (r *MemoryRepo) InsertIfAbsent(user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[user.Username]; taken {
		return ErrDuplicateUsername
	}

	user.MongoID = primitive.NewObjectID()
	user.ID = user.MongoID.Hex()

	stored := *user
	r.byUsername[user.Username] = &stored
	r.byID[user.ID] = &stored
	return nil
}

func (r *MemoryRepo) FindByUsername(username string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byUsername[username]
	if !ok {
		return nil, ErrNoSuchUser
	}
	found := *u
	return &found, nil
}

func (r *MemoryRepo) FindByID(id string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNoSuchUser
	}
	found := *u
	return &found, nil
}
