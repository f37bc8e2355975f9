package cmd

import (
	"github.com/caseflow-kz/caseflow-backend/repositories"
	"github.com/caseflow-kz/caseflow-backend/utils"
)

func RunMigrations() error {
	conf := readCommonConfig()
	logger := utils.NewLogger(conf.loggingFormat)
	return repositories.RunMigrations(conf.pg.GetConnectionString(), logger)
}
