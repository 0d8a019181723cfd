package integration

import (
	"fmt"
	"github.com/QuangTung97/poolparty/config"
	"github.com/QuangTung97/poolparty/pkg/migration"
	"github.com/jmoiron/sqlx"
	"os"
	"path"
	"strings"
	"sync"

	// for integration test, must not be imported in any main.go
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Tables of the schema, children first
var Tables = []string{
	"campaign_event",
	"participant",
	"campaign",
	"registry_config",
}

// TestCase shares one migrated database between the tests of a package
type TestCase struct {
	DB   *sqlx.DB
	Conf config.Config
}

var (
	initOnce   sync.Once
	globalConf config.Config
	globalDB   *sqlx.DB
)

// NewTestCase migrates the test database from config.test.yml on first use
func NewTestCase() *TestCase {
	initOnce.Do(func() {
		rootDir := findRootDir()

		conf := config.LoadTestConfig(rootDir)
		migration.MigrateUpForTesting(rootDir, conf.MySQL.DSN())

		globalConf = conf
		globalDB = conf.MySQL.MustConnect()
	})

	return &TestCase{
		Conf: globalConf,
		DB:   globalDB,
	}
}

// Truncate empties the given tables
func (tc *TestCase) Truncate(tables ...string) {
	for _, table := range tables {
		tc.DB.MustExec(fmt.Sprintf("TRUNCATE %s", table))
	}
}

// Reset empties every table of the schema
func (tc *TestCase) Reset() {
	tc.Truncate(Tables...)
}

// Count returns the number of rows matching where, e.g. "campaign_id = 3"
func (tc *TestCase) Count(table string, where string) int {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if strings.TrimSpace(where) != "" {
		query += " WHERE " + where
	}

	var count int
	err := tc.DB.Get(&count, query)
	if err != nil {
		panic(err)
	}
	return count
}

// findRootDir walks up from the working directory to the one containing go.mod
func findRootDir() string {
	directory, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	for {
		_, err := os.Stat(path.Join(directory, "go.mod"))
		if err == nil {
			return directory
		}
		if !os.IsNotExist(err) {
			panic(err)
		}

		parent := path.Dir(directory)
		if parent == directory {
			panic("go.mod not found")
		}
		directory = parent
	}
}
