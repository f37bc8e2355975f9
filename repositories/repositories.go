package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caseflow-kz/caseflow-backend/infra"
)

// CaseflowDbRepository groups all data access methods against the caseflow
// database. Methods are spread over the *_repository.go files of this package.
type CaseflowDbRepository struct{}

type Repositories struct {
	ExecutorGetter       ExecutorGetter
	CaseflowDbRepository CaseflowDbRepository
	TelegramRepository   TelegramRepository
}

type Option func(*options)

type options struct {
	telegramClient infra.TelegramClient
}

func WithTelegramClient(client infra.TelegramClient) Option {
	return func(o *options) {
		o.telegramClient = client
	}
}

func NewRepositories(pool *pgxpool.Pool, opts ...Option) Repositories {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return Repositories{
		ExecutorGetter:       NewExecutorGetter(pool),
		CaseflowDbRepository: CaseflowDbRepository{},
		TelegramRepository:   NewTelegramRepository(o.telegramClient),
	}
}
