package user

import (
	"errors"

	"github.com/amirasaad/exchange/pkg/domain/user"
	"gorm.io/gorm"
)

// mapGormErrorToDomain converts GORM errors to user domain errors. The
// database must be opened with TranslateError so driver errors arrive as
// gorm sentinels.
func mapGormErrorToDomain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return user.ErrUserExists
	case errors.Is(err, gorm.ErrRecordNotFound):
		return user.ErrUserNotFound
	}
	return err
}

// wrapError runs a GORM operation and maps its error.
func wrapError(op func() error) error {
	return mapGormErrorToDomain(op())
}
