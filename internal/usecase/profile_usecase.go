package usecase

import (
	"context"
	"net/http"
	"strings"

	"bookstore/internal/domain/model"
	repo "bookstore/internal/repository"
)

type ProfileUsecase struct {
	userRepo repo.UserRepository
}

func NewProfileUsecase(userRepo repo.UserRepository) *ProfileUsecase {
	return &ProfileUsecase{userRepo: userRepo}
}

type ProfileInput struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Address   string
}

func (u *ProfileUsecase) GetProfile(ctx context.Context, subject string) (model.User, error) {
	if subject == "" {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.userRepo.FindBySubject(ctx, subject)
	if err == repo.ErrNotFound {
		return model.User{}, NewHTTPError(http.StatusNotFound, "profile not found")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return user, nil
}

// CreateProfile runs once per identity, after registration with the
// external identity provider.
func (u *ProfileUsecase) CreateProfile(ctx context.Context, subject string, in ProfileInput) (model.User, error) {
	if subject == "" {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	email := strings.TrimSpace(in.Email)
	if email == "" || len(email) > 255 {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	user := model.User{
		Subject:   subject,
		Email:     email,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
	}

	id, err := u.userRepo.Create(ctx, user)
	if err == repo.ErrDuplicate {
		return model.User{}, NewHTTPError(http.StatusConflict, "profile already exists")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	user.ID = id
	return user, nil
}

func (u *ProfileUsecase) UpdateProfile(ctx context.Context, subject string, in ProfileInput) error {
	if subject == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	err := u.userRepo.UpdateBySubject(ctx, model.User{
		Subject:   subject,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "profile not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
