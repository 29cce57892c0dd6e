package kudos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudratic/hr-backend-go/internal/domain/kudos"
	"github.com/rudratic/hr-backend-go/internal/domain/user"
	"github.com/rudratic/hr-backend-go/internal/pkg/validator"
)

type fakeKudosRepo struct {
	created []kudos.Kudos
}

func (f *fakeKudosRepo) Create(_ context.Context, k kudos.Kudos) (kudos.Kudos, error) {
	k.ID = "k-1"
	f.created = append(f.created, k)
	return k, nil
}

func (f *fakeKudosRepo) List(_ context.Context) ([]kudos.Kudos, error) {
	return f.created, nil
}

func (f *fakeKudosRepo) ListByRecipient(_ context.Context, userID string) ([]kudos.Kudos, error) {
	var out []kudos.Kudos
	for _, k := range f.created {
		if k.ToUserID == userID {
			out = append(out, k)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}
func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) List(_ context.Context, _ user.ListUsersFilter) ([]user.User, int64, error) {
	return nil, 0, nil
}
func (f *fakeUserRepo) ListByStatus(_ context.Context, _ user.Status) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(_ context.Context, _ user.UpdateProfileRequest) error { return nil }
func (f *fakeUserRepo) UpdateStatus(_ context.Context, id string, status user.Status) (user.User, error) {
	u := f.users[id]
	u.Status = status
	f.users[id] = u
	return u, nil
}
func (f *fakeUserRepo) UpdateRole(_ context.Context, _ string, _ string) error { return nil }

func newTestKudosService() (kudos.Service, *fakeKudosRepo) {
	kudosRepo := &fakeKudosRepo{}
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"user-1": {ID: "user-1", Name: "Asha Rao", Status: user.StatusActive},
		"user-2": {ID: "user-2", Name: "Dev Patel", Status: user.StatusActive},
	}}
	return NewKudosService(kudosRepo, userRepo, nil), kudosRepo
}

func TestKudosService_Create_Success(t *testing.T) {
	svc, repo := newTestKudosService()

	resp, err := svc.Create(context.Background(), kudos.CreateRequest{
		FromUserID: "user-1",
		ToUserID:   "user-2",
		Message:    "Great work on the release",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.FromUserID)
	assert.Equal(t, "user-2", resp.ToUserID)
	assert.Equal(t, "APPRECIATION", resp.Category, "empty category defaults")
	require.Len(t, repo.created, 1)
}

func TestKudosService_Create_SelfKudos(t *testing.T) {
	svc, repo := newTestKudosService()

	_, err := svc.Create(context.Background(), kudos.CreateRequest{
		FromUserID: "user-1",
		ToUserID:   "user-1",
		Message:    "I am great",
	})

	assert.ErrorIs(t, err, kudos.ErrSelfKudos)
	assert.Empty(t, repo.created)
}

func TestKudosService_Create_RecipientNotFound(t *testing.T) {
	svc, _ := newTestKudosService()

	_, err := svc.Create(context.Background(), kudos.CreateRequest{
		FromUserID: "user-1",
		ToUserID:   "ghost",
		Message:    "hello?",
	})

	assert.ErrorIs(t, err, kudos.ErrRecipientNotFound)
}

func TestKudosService_Create_MissingMessage(t *testing.T) {
	svc, _ := newTestKudosService()

	_, err := svc.Create(context.Background(), kudos.CreateRequest{
		FromUserID: "user-1",
		ToUserID:   "user-2",
	})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestKudosService_Received(t *testing.T) {
	svc, _ := newTestKudosService()
	ctx := context.Background()

	_, err := svc.Create(ctx, kudos.CreateRequest{FromUserID: "user-1", ToUserID: "user-2", Message: "nice"})
	require.NoError(t, err)

	received, err := svc.Received(ctx, "user-2")
	require.NoError(t, err)
	assert.Len(t, received, 1)

	none, err := svc.Received(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, none)
}
