package mocks

import (
	"context"

	"github.com/amirasaad/exchange/pkg/repository"
	conversionrepo "github.com/amirasaad/exchange/pkg/repository/conversion"
	userrepo "github.com/amirasaad/exchange/pkg/repository/user"
	"github.com/stretchr/testify/mock"
)

// UnitOfWorkWith returns a MockUnitOfWork whose Do runs fn against itself and
// whose GetRepository resolves the given repositories. nil repositories are not registered.
func UnitOfWorkWith(t interface {
	mock.TestingT
	Cleanup(func())
}, users *MockUserRepository, conversions *MockConversionRepository) *MockUnitOfWork {
	uow := NewMockUnitOfWork(t)
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Maybe()
	if users != nil {
		uow.EXPECT().GetRepository((*userrepo.Repository)(nil)).Return(users, nil).Maybe()
	}
	if conversions != nil {
		uow.EXPECT().GetRepository((*conversionrepo.Repository)(nil)).Return(conversions, nil).Maybe()
	}
	return uow
}
