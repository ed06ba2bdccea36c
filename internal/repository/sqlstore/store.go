package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"gamereviews/internal/metrics"
)

// Supported drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func init() {
	// sqlx does not know the modernc driver name
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Store implements repository.Repository on top of sqlx.
//
// Vote increments are a single UPDATE relative to the stored value, so
// concurrent increments on the same review never lose an update.
type Store struct {
	db     *sqlx.DB
	driver string
}

// New opens the database, applies the schema and returns the store.
// For sqlite the dsn is a file path or ":memory:"; for postgres it is a
// lib/pq connection string.
func New(driver, dsn string) (*Store, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch driver {
	case DriverSQLite:
		db, err = sqlx.Open(DriverSQLite, sqliteDSN(dsn))
		if err == nil && isMemory(dsn) {
			// Every connection to :memory: is a separate database
			db.SetMaxOpenConns(1)
		}
	case DriverPostgres:
		db, err = sqlx.Open(DriverPostgres, dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, driver: driver}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func isMemory(dsn string) bool {
	return dsn == "" || dsn == ":memory:" || strings.HasPrefix(dsn, "file::memory:")
}

func sqliteDSN(path string) string {
	params := "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
	if isMemory(path) {
		return "file::memory:?" + params
	}
	if strings.Contains(path, "?") {
		return path + "&" + params
	}
	return "file:" + path + "?" + params + "&_pragma=journal_mode(WAL)"
}

func (s *Store) migrate() error {
	schema, ok := schemas[s.driver]
	if !ok {
		return fmt.Errorf("no schema for driver %q", s.driver)
	}
	_, err := s.db.Exec(schema)
	return err
}

// Driver returns the driver name the store was opened with
func (s *Store) Driver() string {
	return s.driver
}

// Ping checks the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// observe records the duration and outcome of one store operation.
// Call as: defer s.observe("select", "reviews", time.Now(), &err)
func (s *Store) observe(operation, table string, start time.Time, err *error) {
	metrics.RecordDBQuery(operation, table, time.Since(start), *err)
}
