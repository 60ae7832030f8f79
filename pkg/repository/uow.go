package repository

import (
	"context"
	"fmt"
)

// UnitOfWork defines the contract for transactional work and repository access.
//
// Do runs fn inside a transaction boundary; if fn returns an error the
// transaction is rolled back. GetRepository returns a repository bound to the
// current session. repoType is a typed nil pointer to the repository
// interface, for example (*user.Repository)(nil).
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error
	GetRepository(repoType any) (any, error)
}

// Get resolves the repository of interface type T from uow.
//
//	repo, err := repository.Get[user.Repository](uow)
func Get[T any](uow UnitOfWork) (T, error) {
	var zero T
	repoAny, err := uow.GetRepository((*T)(nil))
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected repository type %T", repoAny)
	}
	return repo, nil
}
