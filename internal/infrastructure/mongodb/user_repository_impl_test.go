package mongodb

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/minimarket/user-service/internal/domain/repository"
)

func testRepo() *UserRepository {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &UserRepository{logger: logger}
}

func TestInvalidObjectIDIsNotFound(t *testing.T) {
	r := testRepo()
	ctx := context.Background()

	// An identifier that is not valid ObjectId hex can never match a
	// document, so no store round trip happens.
	_, err := r.GetByID(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, r.Update(ctx, "not-a-hex-id", nil), repository.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, "nope"), repository.ErrNotFound)
}

func TestFindErrMapping(t *testing.T) {
	assert.ErrorIs(t, findErr(mongo.ErrNoDocuments), repository.ErrNotFound)
	assert.ErrorIs(t, findErr(context.DeadlineExceeded), repository.ErrUnavailable)
}

func TestStoreErrWrapsUnavailable(t *testing.T) {
	err := storeErr(context.DeadlineExceeded)
	assert.ErrorIs(t, err, repository.ErrUnavailable)
	assert.Contains(t, err.Error(), "deadline")
}

func TestDuplicateKeyDetection(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	assert.True(t, mongo.IsDuplicateKeyError(dup))
}
