package usecases

import (
	"context"
	"time"

	"github.com/caseflow-kz/caseflow-backend/models"
	"github.com/caseflow-kz/caseflow-backend/repositories"
	"github.com/caseflow-kz/caseflow-backend/repositories/clock"
	"github.com/caseflow-kz/caseflow-backend/usecases/executor_factory"
)

// Notifier delivers a text to a recipient identified by an opaque address.
// Implemented by repositories.TelegramRepository, doubled in tests.
type Notifier interface {
	SendMessage(ctx context.Context, chatId string, text string) error
}

// StatusTransitionHook is called after a case status change is committed, so
// the host application can broadcast it. Delivery is best effort: the hook
// must not fail the transition.
type StatusTransitionHook func(ctx context.Context, c models.Case, oldStatus, newStatus models.CaseStatus)

type Usecases struct {
	Repositories repositories.Repositories
	clock        clock.Clock
	location     *time.Location
	onTransition StatusTransitionHook
}

type Option func(*Usecases)

func WithClock(c clock.Clock) Option {
	return func(u *Usecases) {
		u.clock = c
	}
}

func WithLocation(loc *time.Location) Option {
	return func(u *Usecases) {
		u.location = loc
	}
}

func WithStatusTransitionHook(hook StatusTransitionHook) Option {
	return func(u *Usecases) {
		u.onTransition = hook
	}
}

func NewUsecases(repos repositories.Repositories, opts ...Option) Usecases {
	u := Usecases{
		Repositories: repos,
		clock:        clock.New(),
		location:     time.UTC,
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

func (u Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(u.Repositories.ExecutorGetter)
}

func (u Usecases) NewCaseUseCase() *CaseUseCase {
	return &CaseUseCase{
		executorFactory:    u.NewExecutorFactory(),
		repository:         u.Repositories.CaseflowDbRepository,
		notifier:           u.Repositories.TelegramRepository,
		clock:              u.clock,
		location:           u.location,
		onStatusTransition: u.onTransition,
	}
}

func (u Usecases) NewUserUseCase() *UserUseCase {
	return &UserUseCase{
		executorFactory: u.NewExecutorFactory(),
		repository:      u.Repositories.CaseflowDbRepository,
	}
}

func (u Usecases) NewSweepUsecase() *SweepUsecase {
	return &SweepUsecase{
		executorFactory: u.NewExecutorFactory(),
		repository:      u.Repositories.CaseflowDbRepository,
		notifier:        u.Repositories.TelegramRepository,
		clock:           u.clock,
		location:        u.location,
	}
}
