package usecase

import (
	"context"
	"net/http"
	"testing"

	"bookstore/internal/domain/model"
	repo "bookstore/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) FindBySubject(ctx context.Context, subject string) (model.User, error) {
	args := m.Called(ctx, subject)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Create(ctx context.Context, u model.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserRepoMock) UpdateBySubject(ctx context.Context, u model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func TestCreateProfileDuplicate(t *testing.T) {
	users := new(UserRepoMock)
	uc := NewProfileUsecase(users)

	users.On("Create", mock.Anything, mock.Anything).Return(int64(0), repo.ErrDuplicate)

	_, err := uc.CreateProfile(context.Background(), "sub-1", ProfileInput{Email: "a@example.com"})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
}

func TestCreateProfileRequiresEmail(t *testing.T) {
	uc := NewProfileUsecase(new(UserRepoMock))

	_, err := uc.CreateProfile(context.Background(), "sub-1", ProfileInput{Email: "  "})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestGetProfileNotFound(t *testing.T) {
	users := new(UserRepoMock)
	uc := NewProfileUsecase(users)

	users.On("FindBySubject", mock.Anything, "sub-1").Return(model.User{}, repo.ErrNotFound)

	_, err := uc.GetProfile(context.Background(), "sub-1")

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestUpdateProfile(t *testing.T) {
	users := new(UserRepoMock)
	uc := NewProfileUsecase(users)

	users.On("UpdateBySubject", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Subject == "sub-1" && u.FirstName == "Ada"
	})).Return(nil)

	err := uc.UpdateProfile(context.Background(), "sub-1", ProfileInput{FirstName: " Ada "})

	assert.NoError(t, err)
	users.AssertExpectations(t)
}
