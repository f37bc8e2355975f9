package cmd

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caseflow-kz/caseflow-backend/infra"
	"github.com/caseflow-kz/caseflow-backend/repositories"
	"github.com/caseflow-kz/caseflow-backend/usecases"
)

// setupUsecases wires the connection pool, repositories and usecases shared
// by the server, the job scheduler and the one-shot sweep command.
func setupUsecases(ctx context.Context, conf commonConfig) (usecases.Usecases, *pgxpool.Pool, error) {
	location, err := time.LoadLocation(conf.timezone)
	if err != nil {
		return usecases.Usecases{}, nil, errors.Wrapf(err, "unknown timezone %s", conf.timezone)
	}

	pool, err := infra.NewPostgresConnectionPool(ctx, conf.pg.GetConnectionString())
	if err != nil {
		return usecases.Usecases{}, nil, errors.Wrap(err, "failed to create connection pool")
	}

	repoOptions := []repositories.Option{}
	if conf.telegram.IsConfigured() {
		repoOptions = append(repoOptions,
			repositories.WithTelegramClient(infra.InitializeTelegramClient(conf.telegram)))
	}
	repos := repositories.NewRepositories(pool, repoOptions...)

	uc := usecases.NewUsecases(repos,
		usecases.WithLocation(location),
		usecases.WithStatusTransitionHook(
			usecases.BroadcastReturnedCase(repos.TelegramRepository, location)))
	return uc, pool, nil
}
