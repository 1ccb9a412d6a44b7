package repository_test

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileCols = []string{"id", "name", "bio", "picture", "created_at", "updated_at"}

func TestProfileRepository(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("Success - Create", func(t *testing.T) {
		// Arrange
		db, mock := newMock(t)
		repo := repository.NewProfileRepo(db)
		profile := &models.Profile{Name: "ada", Bio: "builder", Picture: ptr("ada.png")}

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO profiles (id, name, bio, picture)`)).
			WithArgs(sqlmock.AnyArg(), "ada", "builder", "ada.png").
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		// Act
		err := repo.CreateProfile(t.Context(), profile)

		// Assert
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, profile.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Get", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewProfileRepo(db)
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM profiles WHERE id = $1`)).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(profileCols).AddRow(id.String(), "ada", "builder", nil, now, now))

		profile, err := repo.GetProfileByID(t.Context(), id)

		require.NoError(t, err)
		assert.Equal(t, "ada", profile.Name)
		assert.Nil(t, profile.Picture)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Update Missing", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewProfileRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE profiles SET name = $1`)).WillReturnError(sql.ErrNoRows)

		err := repo.UpdateProfile(t.Context(), &models.Profile{ID: uuid.New(), Name: "x", Bio: "y"})

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Delete", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewProfileRepo(db)
		id := uuid.New()

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM profiles WHERE id = $1`)).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteProfile(t.Context(), id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - List Page", func(t *testing.T) {
		db, mock := newMock(t)
		repo := repository.NewProfileRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM profiles`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
		mock.ExpectQuery(regexp.QuoteMeta(`LIMIT $1 OFFSET $2`)).
			WithArgs(10, 10).
			WillReturnRows(sqlmock.NewRows(profileCols).AddRow(uuid.NewString(), "lin", "bio", nil, now, now))

		profiles, total, err := repo.ListProfiles(t.Context(), 2, 10)

		require.NoError(t, err)
		assert.Equal(t, 11, total)
		assert.Len(t, profiles, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
