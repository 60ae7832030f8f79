package repository

import (
	"context"
	"fmt"
	"reflect"

	conversionrepo "github.com/amirasaad/exchange/infra/repository/conversion"
	userrepo "github.com/amirasaad/exchange/infra/repository/user"
	"github.com/amirasaad/exchange/pkg/repository"
	"github.com/amirasaad/exchange/pkg/repository/conversion"
	"github.com/amirasaad/exchange/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// All repositories obtained inside Do share the transaction session.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*user.Repository)(nil)):       func(db *gorm.DB) any { return userrepo.New(db) },
			reflect.TypeOf((*conversion.Repository)(nil)): func(db *gorm.DB) any { return conversionrepo.New(db) },
		},
	}
}

// Do runs fn in a transaction boundary, providing a UoW bound to the transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry})
	})
}

// GetRepository returns the repository registered for repoType, a typed nil
// pointer to a repository interface.
func (u *UoW) GetRepository(repoType any) (any, error) {
	t := reflect.TypeOf(repoType)
	constructor, ok := u.repoRegistry[t]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", t)
	}
	session := u.tx
	if session == nil {
		session = u.db
	}
	return constructor(session), nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
