package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection("users"),
	}
}

// EnsureIndexes creates the unique index on username that backs
// InsertIfAbsent. Must run before the repo serves requests.
func (r *MongoRepo) EnsureIndexes() error {
	ctx := context.TODO()

	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}
	return nil
}

func (r *MongoRepo) InsertIfAbsent(user *User) error {
	ctx := context.TODO()

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.MongoID = oid
		user.ID = oid.Hex()
	} else {
		return fmt.Errorf("%w: inserted ID is not an ObjectID", ErrStore)
	}

	return nil
}

func (r *MongoRepo) FindByUsername(username string) (*User, error) {
	ctx := context.TODO()
	var u User

	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoSuchUser
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	u.ID = u.MongoID.Hex()
	return &u, nil
}

func (r *MongoRepo) FindByID(id string) (*User, error) {
	ctx := context.TODO()
	var u User

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNoSuchUser
	}

	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoSuchUser
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	u.ID = u.MongoID.Hex()
	return &u, nil
}
