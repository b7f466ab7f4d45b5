package application

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minimarket/user-service/internal/domain/entity"
	repo "github.com/minimarket/user-service/internal/domain/repository"
)

// fakeRepo is an in-memory store substitutable behind the repository
// interface.
type fakeRepo struct {
	mu        sync.Mutex
	users     map[string]entity.User
	createErr error
	failAll   bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]entity.User)}
}

func (f *fakeRepo) Create(ctx context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = primitive.NewObjectID()
	f.users[u.ID.Hex()] = *u
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, repo.ErrUnavailable
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &u, nil
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, repo.ErrUnavailable
	}
	out := make([]entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedDate.Before(out[j].CreatedDate) })
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, ok := f.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.ID = prev.ID
	f.users[id] = *u
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeRepo) GetByOwnerID(ctx context.Context, ownerID string) ([]entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.User, 0)
	for _, u := range f.users {
		if u.OwnerID == ownerID {
			out = append(out, u)
		}
	}
	return out, nil
}

func newTestService(r repo.UserRepository) *Service {
	logger := logrus.New()
	return NewService(r, logger, nil, nil, "", 1000)
}

func TestCreateHashesPassword(t *testing.T) {
	f := newFakeRepo()
	svc := newTestService(f)

	u := &entity.User{Email: "a@b.com", Firstname: "A", Password: "pw"}
	created, err := svc.Create(context.Background(), u)
	require.NoError(t, err)

	assert.False(t, created.ID.IsZero(), "identifier assigned at creation")
	assert.NotEqual(t, "pw", created.Password)
	assert.NotEmpty(t, created.Salt)
	assert.Equal(t, 1000, created.HashIterations)
	assert.False(t, created.CreatedDate.IsZero())
}

func TestCreateSaltUniquePerUser(t *testing.T) {
	f := newFakeRepo()
	svc := newTestService(f)

	u1, err := svc.Create(context.Background(), &entity.User{Email: "a@b.com", Firstname: "A", Password: "pw"})
	require.NoError(t, err)
	u2, err := svc.Create(context.Background(), &entity.User{Email: "c@d.com", Firstname: "C", Password: "pw"})
	require.NoError(t, err)

	assert.NotEqual(t, u1.Salt, u2.Salt)
	assert.NotEqual(t, u1.Password, u2.Password, "same plaintext with different salts must store different hashes")
}

func TestCreateMissingFields(t *testing.T) {
	f := newFakeRepo()
	svc := newTestService(f)

	cases := []entity.User{
		{Firstname: "A", Password: "pw"},
		{Email: "a@b.com", Password: "pw"},
		{Email: "a@b.com", Firstname: "A"},
	}
	for _, c := range cases {
		_, err := svc.Create(context.Background(), &c)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
	assert.Empty(t, f.users, "nothing persisted on rejected creation")
}

func TestCreatePropagatesDuplicate(t *testing.T) {
	f := newFakeRepo()
	f.createErr = repo.ErrDuplicate
	svc := newTestService(f)

	_, err := svc.Create(context.Background(), &entity.User{Email: "a@b.com", Firstname: "A", Password: "pw"})
	assert.ErrorIs(t, err, repo.ErrDuplicate)
}

func TestRoundTrip(t *testing.T) {
	f := newFakeRepo()
	svc := newTestService(f)

	created, err := svc.Create(context.Background(), &entity.User{Email: "a@b.com", Firstname: "A", Password: "pw"})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.Email, got.Email)
	assert.Equal(t, created.Password, got.Password)
	assert.Equal(t, created.Salt, got.Salt)
}

func TestDeleteThenGetAbsent(t *testing.T) {
	f := newFakeRepo()
	svc := newTestService(f)

	created, err := svc.Create(context.Background(), &entity.User{Email: "a@b.com", Firstname: "A", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID.Hex()))

	_, err = svc.GetByID(context.Background(), created.ID.Hex())
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestGetAllEmpty(t *testing.T) {
	svc := newTestService(newFakeRepo())

	users, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestGetByOwnerIDFiltersOwnerField(t *testing.T) {
	f := newFakeRepo()
	svc := newTestService(f)

	owned, err := svc.Create(context.Background(), &entity.User{Email: "a@b.com", Firstname: "A", Password: "pw", OwnerID: "shop-1"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &entity.User{Email: "c@d.com", Firstname: "C", Password: "pw"})
	require.NoError(t, err)

	users, err := svc.GetByOwnerID(context.Background(), "shop-1")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, owned.ID, users[0].ID)

	// The record's own identifier is not an owner association.
	users, err = svc.GetByOwnerID(context.Background(), owned.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUpdateReplacesRecord(t *testing.T) {
	f := newFakeRepo()
	svc := newTestService(f)

	created, err := svc.Create(context.Background(), &entity.User{Email: "a@b.com", Firstname: "A", Password: "pw"})
	require.NoError(t, err)

	replacement := *created
	replacement.Firstname = "B"
	require.NoError(t, svc.Update(context.Background(), created.ID.Hex(), &replacement))

	got, err := svc.GetByID(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "B", got.Firstname)
}
