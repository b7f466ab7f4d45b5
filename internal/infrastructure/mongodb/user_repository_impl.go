package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/minimarket/user-service/internal/domain/entity"
	"github.com/minimarket/user-service/internal/domain/repository"
)

// UserRepository translates user-record operations into MongoDB collection
// operations and maps store outcomes to the typed repository errors.
type UserRepository struct {
	col    *mongo.Collection
	logger *logrus.Logger
}

func NewUserRepository(db *mongo.Database, collection string, logger *logrus.Logger) *UserRepository {
	return &UserRepository{col: db.Collection(collection), logger: logger}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	u.ID = primitive.NilObjectID
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		r.logger.WithError(err).Error("failed to create user")
		return storeErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An identifier that is not a valid ObjectId cannot match any record.
		return nil, repository.ErrNotFound
	}
	var u entity.User
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		return nil, findErr(err)
	}
	return &u, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]entity.User, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdDate", Value: 1}}))
	if err != nil {
		r.logger.WithError(err).Error("failed to list users")
		return nil, storeErr(err)
	}
	users := make([]entity.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, storeErr(err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, u *entity.User) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	u.ID = oid
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, u)
	if err != nil {
		r.logger.WithError(err).WithField("id", id).Error("failed to update user")
		return storeErr(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.logger.WithError(err).WithField("id", id).Error("failed to delete user")
		return storeErr(err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, findErr(err)
	}
	return &u, nil
}

func (r *UserRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]entity.User, error) {
	cur, err := r.col.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, storeErr(err)
	}
	users := make([]entity.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, storeErr(err)
	}
	return users, nil
}

// EnsureIndexes creates the lookup indexes. Email is indexed but not
// unique: uniqueness is not part of the data-model contract.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
	})
	return err
}

func findErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return storeErr(err)
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
}
