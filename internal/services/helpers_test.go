package service_test

import (
	"context"
	"database/sql"
	"testing"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/repositories/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// passthroughTx runs the callback without a real transaction and returns its error.
func passthroughTx(t *testing.T) *mocks.MockTxRunner {
	t.Helper()

	tx := mocks.NewMockTxRunner(t)
	tx.On("WithTx", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(*sql.Tx) error) error { return fn(nil) }).
		Maybe()

	return tx
}

func requireAppError(t *testing.T, err error, code string) *appErrors.AppError {
	t.Helper()

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	require.Equal(t, code, appErr.Code)

	return appErr
}

func ptr[T any](v T) *T {
	return &v
}
