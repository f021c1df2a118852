package impl

import (
	"context"
	"log/slog"
	"testing"

	domainerrors "ridingcourse/internal/domain/errors"
	"ridingcourse/internal/domain/repository"
	mockRepo "ridingcourse/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// expectTx makes txManager run every transaction callback against factory.
func expectTx(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// requireAppError asserts that err carries an AppError with the given business code.
func requireAppError(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, code, appErr.ErrorCode())
}
