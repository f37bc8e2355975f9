package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"

	"github.com/caseflow-kz/caseflow-backend/repositories"
)

type Executor struct {
	mock.Mock
}

func (e *Executor) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	arguments := e.Called(ctx, sql, args)
	return arguments.Get(0).(pgconn.CommandTag), arguments.Error(1)
}

func (e *Executor) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	arguments := e.Called(ctx, sql, args)
	return arguments.Get(0).(pgx.Rows), arguments.Error(1)
}

func (e *Executor) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	arguments := e.Called(ctx, sql, args)
	return arguments.Get(0).(pgx.Row)
}

// ExecutorFactory hands out a fixed executor and runs transaction callbacks
// inline against it.
type ExecutorFactory struct {
	mock.Mock
}

func (f *ExecutorFactory) NewExecutor() repositories.Executor {
	args := f.Called()
	return args.Get(0).(repositories.Executor)
}

func (f *ExecutorFactory) Transaction(ctx context.Context, fn func(tx repositories.Executor) error) error {
	args := f.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(args.Get(1).(repositories.Executor))
}

// Setup registers the usual happy path expectations: NewExecutor returns
// exec and Transaction runs its callback against exec.
func (f *ExecutorFactory) Setup(exec repositories.Executor) {
	f.On("NewExecutor").Return(exec).Maybe()
	f.On("Transaction", mock.Anything, mock.Anything).Return(nil, exec).Maybe()
}
