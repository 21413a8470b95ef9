// Package pgshared holds the column types and error mapping shared by the GORM
// repositories.
package pgshared

import (
	"errors"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// GeoDTO is an optional coordinate pair embedded into entity tables.
type GeoDTO struct {
	Latitude  *float64
	Longitude *float64
}

func FromGeo(p *kernel.GeoPoint) GeoDTO {
	if p == nil {
		return GeoDTO{}
	}
	lat, lng := p.Lat(), p.Lng()
	return GeoDTO{Latitude: &lat, Longitude: &lng}
}

// ToGeo returns nil unless both coordinates are stored.
func (g GeoDTO) ToGeo() (*kernel.GeoPoint, error) {
	return kernel.NewOptionalGeoPoint(g.Latitude, g.Longitude)
}

func OptionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func ToOptionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

// TranslateError maps driver errors onto the core error taxonomy. Unique
// violations, serialization failures, deadlocks and lock timeouts become
// conflicts the caller may retry.
func TranslateError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflictErrorWithCause(resource, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation, codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
			return errs.NewConflictErrorWithCause(resource, err)
		}
	}
	return err
}

// NotFound maps gorm.ErrRecordNotFound onto errs.ObjectNotFoundError.
func NotFound(err error, resource string, id kernel.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(resource, id.String())
	}
	return err
}
