package migration

import (
	"errors"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"path"
	"strconv"
)

const migrationsDir = "migrations"

func newMigrate(sourceURL string, dsn string) *migrate.Migrate {
	m, err := migrate.New(sourceURL, "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	return m
}

func closeMigrate(m *migrate.Migrate) {
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		fmt.Println("[ERROR] close source:", sourceErr)
	}
	if dbErr != nil {
		fmt.Println("[ERROR] close database:", dbErr)
	}
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateCommand returns the migrate command with up, down, force and version
func MigrateCommand(dsn string) *cobra.Command {
	sourceURL := "file://" + migrationsDir

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "database schema migration",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "apply all up migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newMigrate(sourceURL, dsn)
			defer closeMigrate(m)
			return ignoreNoChange(m.Up())
		},
	}

	var downSteps int
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "apply down migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newMigrate(sourceURL, dsn)
			defer closeMigrate(m)
			return ignoreNoChange(m.Steps(-downSteps))
		},
	}
	downCmd.Flags().IntVar(&downSteps, "steps", 1, "number of down migrations")

	forceCmd := &cobra.Command{
		Use:   "force [version]",
		Short: "set the version without running migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			m := newMigrate(sourceURL, dsn)
			defer closeMigrate(m)
			return m.Force(version)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print the current version",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newMigrate(sourceURL, dsn)
			defer closeMigrate(m)

			version, dirty, err := m.Version()
			if err != nil {
				return err
			}
			fmt.Println("VERSION:", version, "DIRTY:", dirty)
			return nil
		},
	}

	rootCmd.AddCommand(upCmd, downCmd, forceCmd, versionCmd)
	return rootCmd
}

// MigrateUpForTesting drops everything then applies all migrations
func MigrateUpForTesting(rootDir string, dsn string) {
	sourceURL := "file://" + path.Join(rootDir, migrationsDir)

	m := newMigrate(sourceURL, dsn)
	defer closeMigrate(m)

	err := m.Drop()
	if err != nil {
		panic(err)
	}

	m = newMigrate(sourceURL, dsn)
	defer closeMigrate(m)

	err = ignoreNoChange(m.Up())
	if err != nil {
		panic(err)
	}
}
