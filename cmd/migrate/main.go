package main

import (
	"github.com/QuangTung97/poolparty/config"
	"github.com/QuangTung97/poolparty/pkg/migration"
	"go.uber.org/zap"
	"os"

	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	cmd := migration.MigrateCommand(conf.MySQL.DSN())
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if err := cmd.Execute(); err != nil {
		logger.Error("Migration failed",
			zap.String("database", conf.MySQL.Database),
			zap.Error(err),
		)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
