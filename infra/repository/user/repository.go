package user

import (
	"context"
	"errors"

	"github.com/amirasaad/exchange/pkg/dto"
	"github.com/amirasaad/exchange/pkg/repository/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) user.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.UserCreate,
) error {
	return wrapError(func() error {
		return r.db.WithContext(ctx).Create(&User{
			ID:       create.ID,
			Username: create.Username,
			Email:    create.Email,
			Password: create.Password,
		}).Error
	})
}

func (r *repository) Update(
	ctx context.Context,
	id uuid.UUID,
	uu *dto.UserUpdate,
) error {
	updates := make(map[string]any)
	if uu.Username != nil {
		updates["username"] = *uu.Username
	}
	if uu.Email != nil {
		updates["email"] = *uu.Email
	}
	if uu.Password != nil {
		updates["password"] = *uu.Password
	}
	if len(updates) == 0 {
		return nil
	}

	return wrapError(func() error {
		return r.db.WithContext(ctx).Model(&User{}).
			Where("id = ?", id).
			Updates(updates).Error
	})
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *repository) GetByUsername(
	ctx context.Context,
	username string,
) (*dto.UserRead, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *repository) Delete(
	ctx context.Context,
	id uuid.UUID,
) error {
	return r.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error
}

func (r *repository) List(ctx context.Context) ([]*dto.UserRead, error) {
	var users []User
	if err := r.db.WithContext(ctx).Order("username").Find(&users).Error; err != nil {
		return nil, err
	}

	result := make([]*dto.UserRead, 0, len(users))
	for i := range users {
		result = append(result, mapModelToDTO(&users[i]))
	}
	return result, nil
}

func (r *repository) first(ctx context.Context, query string, arg any) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		HashedPassword: u.Password,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
