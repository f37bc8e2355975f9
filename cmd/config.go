package cmd

import (
	"github.com/caseflow-kz/caseflow-backend/infra"
	"github.com/caseflow-kz/caseflow-backend/utils"
)

const defaultTimezone = "Asia/Almaty"

type commonConfig struct {
	env           string
	loggingFormat string
	sentryDsn     string
	timezone      string
	pg            infra.PgConfig
	telegram      infra.TelegramConfiguration
}

func readCommonConfig() commonConfig {
	return commonConfig{
		env:           utils.GetEnv("ENV", "development"),
		loggingFormat: utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:     utils.GetEnv("SENTRY_DSN", ""),
		timezone:      utils.GetEnv("TZ_NAME", defaultTimezone),
		pg: infra.PgConfig{
			Database: utils.GetEnv("PG_DATABASE", "caseflow"),
			Hostname: utils.GetEnv("PG_HOSTNAME", "localhost"),
			Password: utils.GetEnv("PG_PASSWORD", ""),
			Port:     utils.GetEnv("PG_PORT", "5432"),
			User:     utils.GetEnv("PG_USER", "postgres"),
		},
		telegram: infra.TelegramConfiguration{
			BotToken: utils.GetEnv("TELEGRAM_BOT_TOKEN", ""),
			BaseUrl:  utils.GetEnv("TELEGRAM_API_BASE_URL", "https://api.telegram.org"),
		},
	}
}
