// Package user provides business logic for user management operations.
package user

import (
	"context"
	"log/slog"

	"github.com/amirasaad/exchange/pkg/domain/user"
	"github.com/amirasaad/exchange/pkg/dto"
	"github.com/amirasaad/exchange/pkg/repository"
	userrepo "github.com/amirasaad/exchange/pkg/repository/user"
	"github.com/amirasaad/exchange/pkg/utils"
	"github.com/google/uuid"
)

// Service provides business logic for user operations including creation, updates, and deletion.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		uow:    uow,
		logger: logger,
	}
}

// Create creates a new user. ErrUserExists is returned when the username is taken.
func (s *Service) Create(
	ctx context.Context,
	username, email, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Create", "username", username)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		existing, err := repo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if existing != nil {
			return user.ErrUserExists
		}
		nu, err := user.New(username, email, password)
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, &dto.UserCreate{
			ID:       nu.ID,
			Username: nu.Username,
			Email:    nu.Email,
			Password: nu.Password,
		}); err != nil {
			return err
		}
		u = &dto.UserRead{
			ID:             nu.ID,
			Username:       nu.Username,
			Email:          nu.Email,
			HashedPassword: nu.Password,
			CreatedAt:      nu.CreatedAt,
			UpdatedAt:      nu.UpdatedAt,
		}
		return nil
	})
	if err != nil {
		log.Error("Create failed", "error", err)
		return nil, err
	}
	log.Info("User created", "userID", u.ID)
	return u, nil
}

// Get returns the user with id, or ErrUserNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if u == nil {
			return user.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetByUsername returns the user with username, or ErrUserNotFound.
func (s *Service) GetByUsername(ctx context.Context, username string) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		u, err = repo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if u == nil {
			return user.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) (users []*dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		users, err = repo.List(ctx)
		return err
	})
	return
}

// Update changes the fields of update that are set. A new password is hashed
// before it is stored.
func (s *Service) Update(
	ctx context.Context,
	id uuid.UUID,
	update *dto.UserUpdate,
) error {
	log := s.logger.With("context", "Update", "userID", id)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		current, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return user.ErrUserNotFound
		}
		if update.Username != nil && *update.Username != current.Username {
			taken, err := repo.GetByUsername(ctx, *update.Username)
			if err != nil {
				return err
			}
			if taken != nil {
				return user.ErrUserExists
			}
		}
		if update.Password != nil {
			hashed, err := utils.HashPassword(*update.Password)
			if err != nil {
				return err
			}
			update = &dto.UserUpdate{
				Username: update.Username,
				Email:    update.Email,
				Password: &hashed,
			}
		}
		return repo.Update(ctx, id, update)
	})
	if err != nil {
		log.Error("Update failed", "error", err)
		return err
	}
	log.Info("User updated")
	return nil
}

// Delete removes the user, or returns ErrUserNotFound.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	log := s.logger.With("context", "Delete", "userID", id)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		current, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return user.ErrUserNotFound
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		log.Error("Delete failed", "error", err)
		return err
	}
	log.Info("User deleted")
	return nil
}
