package repository_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return db, mock
}

func ptr[T any](v T) *T {
	return &v
}

func TestNewRepositories(t *testing.T) {
	db, _ := newMock(t)

	repos := repository.NewRepositories(db)

	assert.NotNil(t, repos.Store)
	assert.NotNil(t, repos.User)
	assert.NotNil(t, repos.Category)
	assert.NotNil(t, repos.Product)
	assert.NotNil(t, repos.Review)
	assert.NotNil(t, repos.Cart)
	assert.NotNil(t, repos.Order)
	assert.NotNil(t, repos.Profile)
}

func TestStore_WithTx(t *testing.T) {
	t.Run("Success - Commit", func(t *testing.T) {
		// Arrange
		db, mock := newMock(t)
		store := repository.NewStore(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM cart_items").WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		// Act
		err := store.WithTx(t.Context(), func(tx *sql.Tx) error {
			_, err := tx.ExecContext(t.Context(), "DELETE FROM cart_items WHERE cart_id = $1", "c-1")
			return err
		})

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Callback Error Rolls Back", func(t *testing.T) {
		// Arrange
		db, mock := newMock(t)
		store := repository.NewStore(db)
		fnErr := errors.New("boom")

		mock.ExpectBegin()
		mock.ExpectRollback()

		// Act
		err := store.WithTx(t.Context(), func(tx *sql.Tx) error {
			return fnErr
		})

		// Assert
		require.ErrorIs(t, err, fnErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Begin Error", func(t *testing.T) {
		// Arrange
		db, mock := newMock(t)
		store := repository.NewStore(db)

		mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

		called := false

		// Act
		err := store.WithTx(t.Context(), func(tx *sql.Tx) error {
			called = true
			return nil
		})

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "begin transaction")
		assert.False(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Commit Error", func(t *testing.T) {
		// Arrange
		db, mock := newMock(t)
		store := repository.NewStore(db)

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

		// Act
		err := store.WithTx(t.Context(), func(tx *sql.Tx) error { return nil })

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "commit transaction")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Panic Rolls Back", func(t *testing.T) {
		// Arrange
		db, mock := newMock(t)
		store := repository.NewStore(db)

		mock.ExpectBegin()
		mock.ExpectRollback()

		// Act & Assert
		assert.Panics(t, func() {
			_ = store.WithTx(t.Context(), func(tx *sql.Tx) error {
				panic("unexpected")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
