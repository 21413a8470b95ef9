package pgshared_test

import (
	"errors"
	"testing"

	"routetrail/internal/adapters/out/postgres/pgshared"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	t.Run("unique violation becomes conflict", func(t *testing.T) {
		err := pgshared.TranslateError(&pgconn.PgError{Code: "23505"}, "route point order")

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "route point order")
	})

	t.Run("wrapped serialization failure becomes conflict", func(t *testing.T) {
		wrapped := errors.Join(errors.New("commit"), &pgconn.PgError{Code: "40001"})

		require.ErrorIs(t, pgshared.TranslateError(wrapped, "route plan"), errs.ErrConflict)
	})

	t.Run("lock timeout becomes conflict", func(t *testing.T) {
		require.ErrorIs(t, pgshared.TranslateError(&pgconn.PgError{Code: "55P03"}, "route plan"), errs.ErrConflict)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		original := &pgconn.PgError{Code: "23503"}

		assert.Same(t, original, pgshared.TranslateError(original, "route plan"))
		assert.NoError(t, pgshared.TranslateError(nil, "route plan"))
	})
}

func TestNotFound(t *testing.T) {
	id := kernel.NewUUID()

	err := pgshared.NotFound(gorm.ErrRecordNotFound, "loading", id)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), id.String())
}

func TestGeoDTO(t *testing.T) {
	p, err := kernel.NewGeoPoint(55.75, 37.61)
	require.NoError(t, err)

	restored, err := pgshared.FromGeo(&p).ToGeo()

	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.True(t, p.IsEqual(*restored))

	empty, err := pgshared.FromGeo(nil).ToGeo()
	require.NoError(t, err)
	assert.Nil(t, empty)
}
