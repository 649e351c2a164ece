package repository

import (
	"context"
	"errors"

	"bookstore/internal/domain/model"
	repo "bookstore/internal/repository"

	"gorm.io/gorm"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindBySubject(ctx context.Context, subject string) (model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("subject = ?", subject).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, repo.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (r *UserGormRepository) Create(ctx context.Context, u model.User) (int64, error) {
	err := r.db.WithContext(ctx).Create(&u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return 0, repo.ErrDuplicate
	}
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}

func (r *UserGormRepository) UpdateBySubject(ctx context.Context, u model.User) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("subject = ?", u.Subject).
		Updates(map[string]interface{}{
			"first_name": u.FirstName,
			"last_name":  u.LastName,
			"phone":      u.Phone,
			"address":    u.Address,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
