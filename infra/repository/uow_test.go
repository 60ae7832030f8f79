package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirasaad/exchange/infra"
	infrarepo "github.com/amirasaad/exchange/infra/repository"
	"github.com/amirasaad/exchange/pkg/config"
	domainuser "github.com/amirasaad/exchange/pkg/domain/user"
	"github.com/amirasaad/exchange/pkg/dto"
	"github.com/amirasaad/exchange/pkg/repository"
	"github.com/amirasaad/exchange/pkg/repository/conversion"
	"github.com/amirasaad/exchange/pkg/repository/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type UoWTestSuite struct {
	suite.Suite
	uow *infrarepo.UoW
}

func (s *UoWTestSuite) SetupTest() {
	db, err := infra.NewDBConnection(&config.DB{Url: "sqlite://file::memory:"}, "test")
	s.Require().NoError(err)
	s.Require().NoError(infra.Migrate(db))
	s.uow = infrarepo.NewUoW(db)
}

func (s *UoWTestSuite) createUser(ctx context.Context, username string) uuid.UUID {
	id := uuid.New()
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[user.Repository](uow)
		if err != nil {
			return err
		}
		return repo.Create(ctx, &dto.UserCreate{
			ID:       id,
			Username: username,
			Email:    username + "@example.com",
			Password: "hashed",
		})
	})
	s.Require().NoError(err)
	return id
}

func (s *UoWTestSuite) TestDo_Commits() {
	ctx := context.Background()
	id := s.createUser(ctx, "alice")

	repo, err := repository.Get[user.Repository](s.uow)
	s.Require().NoError(err)
	got, err := repo.GetByUsername(ctx, "alice")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(id, got.ID)
}

func (s *UoWTestSuite) TestDo_RollsBackOnError() {
	ctx := context.Background()
	userID := s.createUser(ctx, "bob")
	boom := errors.New("boom")

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[conversion.Repository](uow)
		if err != nil {
			return err
		}
		if _, err := repo.Create(ctx, &dto.ConversionCreate{
			UserID:              userID,
			OriginCurrency:      "BRL",
			DestinationCurrency: "EUR",
			Amount:              1,
			Rate:                6.17,
			ConversionTime:      time.Now().UTC(),
		}); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	repo, err := repository.Get[conversion.Repository](s.uow)
	s.Require().NoError(err)
	history, err := repo.ListByUser(ctx, userID)
	s.Require().NoError(err)
	s.Empty(history)
}

func (s *UoWTestSuite) TestConversionHistory() {
	ctx := context.Background()
	userID := s.createUser(ctx, "carol")
	repo, err := repository.Get[conversion.Repository](s.uow)
	s.Require().NoError(err)

	first := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, code := range []string{"USD", "JPY"} {
		_, err := repo.Create(ctx, &dto.ConversionCreate{
			UserID:              userID,
			OriginCurrency:      "EUR",
			DestinationCurrency: code,
			Amount:              2,
			Rate:                1.5,
			ConversionTime:      first.Add(time.Duration(i) * time.Hour),
		})
		s.Require().NoError(err)
	}

	history, err := repo.ListByUser(ctx, userID)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal("USD", history[0].DestinationCurrency)
	s.Equal("JPY", history[1].DestinationCurrency)
	s.InDelta(3.0, history[1].DestinationAmount, 1e-9)
}

func (s *UoWTestSuite) TestCreate_DuplicateUsername() {
	ctx := context.Background()
	s.createUser(ctx, "dave")

	repo, err := repository.Get[user.Repository](s.uow)
	s.Require().NoError(err)
	err = repo.Create(ctx, &dto.UserCreate{
		ID:       uuid.New(),
		Username: "dave",
		Email:    "dave2@example.com",
		Password: "hashed",
	})
	s.ErrorIs(err, domainuser.ErrUserExists)
}

func (s *UoWTestSuite) TestDeleteUser_RemovesConversions() {
	ctx := context.Background()
	userID := s.createUser(ctx, "erin")
	conversions, err := repository.Get[conversion.Repository](s.uow)
	s.Require().NoError(err)
	_, err = conversions.Create(ctx, &dto.ConversionCreate{
		UserID:              userID,
		OriginCurrency:      "EUR",
		DestinationCurrency: "USD",
		Amount:              1,
		Rate:                1.1,
		ConversionTime:      time.Now().UTC(),
	})
	s.Require().NoError(err)

	users, err := repository.Get[user.Repository](s.uow)
	s.Require().NoError(err)
	s.Require().NoError(users.Delete(ctx, userID))

	history, err := conversions.ListByUser(ctx, userID)
	s.Require().NoError(err)
	s.Empty(history)
}

func (s *UoWTestSuite) TestCreateConversion_UnknownUser() {
	conversions, err := repository.Get[conversion.Repository](s.uow)
	s.Require().NoError(err)
	_, err = conversions.Create(context.Background(), &dto.ConversionCreate{
		UserID:              uuid.New(),
		OriginCurrency:      "EUR",
		DestinationCurrency: "USD",
		Amount:              1,
		Rate:                1.1,
		ConversionTime:      time.Now().UTC(),
	})
	s.Error(err)
}

func (s *UoWTestSuite) TestGetRepository_Unsupported() {
	_, err := s.uow.GetRepository((*string)(nil))
	s.Error(err)
}

func TestUoWTestSuite(t *testing.T) {
	suite.Run(t, new(UoWTestSuite))
}

func TestGet_WrongType(t *testing.T) {
	_, err := repository.Get[user.Repository](stubUoW{repo: "not a repository"})
	assert.Error(t, err)

	_, err = repository.Get[user.Repository](stubUoW{err: errors.New("no registry")})
	require.EqualError(t, err, "no registry")
}

type stubUoW struct {
	repo any
	err  error
}

func (s stubUoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(s)
}

func (s stubUoW) GetRepository(any) (any, error) {
	return s.repo, s.err
}
