package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"travelplanner/config"
	"travelplanner/logger"
)

var ErrNotFound = errors.New("not found")

type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

// Store owns the connection pool for the sample tables, the response cache
// and saved itineraries.
type Store struct {
	db      *sql.DB
	dialect dialect
	logger  *logger.Logger
}

// ─── Init ─────────────────────────────────────────────────────────────────────

// Open connects to Postgres when cfg.URL is a postgres:// URL and to a local
// SQLite file otherwise, then creates any missing tables.
func Open(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) (*Store, error) {
	s := &Store{logger: log.Named("database")}

	var err error
	if isPostgresURL(cfg.URL) {
		s.dialect = dialectPostgres
		s.db, err = sql.Open("postgres", cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		s.db.SetMaxOpenConns(10)
		s.db.SetMaxIdleConns(5)
		s.db.SetConnMaxLifetime(5 * time.Minute)
	} else {
		path := cfg.Path
		if path == "" {
			path = "travel_planner.db"
		}
		s.dialect = dialectSQLite
		s.db, err = sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		// one writer at a time keeps SQLite from returning SQLITE_BUSY
		s.db.SetMaxOpenConns(1)
	}

	if err := s.waitReady(ctx); err != nil {
		s.db.Close()
		return nil, err
	}

	if err := s.Migrate(ctx); err != nil {
		s.db.Close()
		return nil, err
	}

	s.logger.Info("Database connected and migrated", logger.String("driver", s.driverName()))
	return s, nil
}

// waitReady pings up to 10 times; a freshly provisioned Postgres may take a
// moment to accept connections.
func (s *Store) waitReady(ctx context.Context) error {
	var err error
	for i := 0; i < 10; i++ {
		if err = s.db.PingContext(ctx); err == nil {
			return nil
		}
		if s.dialect == dialectSQLite {
			break
		}
		s.logger.Warn("Waiting for database", logger.Int("attempt", i+1), logger.Error(err))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
	return fmt.Errorf("failed to connect to database: %w", err)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) driverName() string {
	if s.dialect == dialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

func isPostgresURL(u string) bool {
	return strings.HasPrefix(u, "postgres://") || strings.HasPrefix(u, "postgresql://")
}

// rebind rewrites ? placeholders to $1, $2, ... for Postgres.
func (s *Store) rebind(query string) string {
	if s.dialect != dialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ─── Migrations ───────────────────────────────────────────────────────────────

func (s *Store) autoID() string {
	if s.dialect == dialectPostgres {
		return "SERIAL PRIMARY KEY"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

func (s *Store) blobType() string {
	if s.dialect == dialectPostgres {
		return "BYTEA"
	}
	return "BLOB"
}

func (s *Store) seedTableDDL() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS flights (
			id          ` + s.autoID() + `,
			origin      TEXT NOT NULL,
			destination TEXT NOT NULL,
			price       REAL NOT NULL,
			date        TEXT NOT NULL,
			airline     TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS hotels (
			id              ` + s.autoID() + `,
			name            TEXT NOT NULL,
			location        TEXT NOT NULL,
			price_per_night REAL NOT NULL,
			rating          REAL NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS min_prices (
			origin           TEXT NOT NULL,
			destination      TEXT NOT NULL,
			min_flight_price REAL NOT NULL,
			min_hotel_price  REAL NOT NULL,
			PRIMARY KEY (origin, destination)
		)`,

		`CREATE TABLE IF NOT EXISTS api_cache (
			route_key     TEXT NOT NULL,
			data_type     TEXT NOT NULL,
			response_data TEXT NOT NULL,
			last_updated  BIGINT NOT NULL,
			expires_at    BIGINT NOT NULL,
			PRIMARY KEY (route_key, data_type)
		)`,
	}
}

func (s *Store) Migrate(ctx context.Context) error {
	migrations := append(s.seedTableDDL(),
		`CREATE TABLE IF NOT EXISTS itineraries (
			id            TEXT PRIMARY KEY,
			traveler_name TEXT,
			origin        TEXT NOT NULL,
			destination   TEXT NOT NULL,
			start_date    TEXT NOT NULL,
			end_date      TEXT NOT NULL,
			flight_json   TEXT,
			hotel_json    TEXT,
			pdf_data      `+s.blobType()+`,
			created_at    BIGINT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_flights_route ON flights(origin, destination)`,
		`CREATE INDEX IF NOT EXISTS idx_hotels_location ON hotels(location)`,
		`CREATE INDEX IF NOT EXISTS idx_api_cache_expires ON api_cache(expires_at)`,
	)

	for _, m := range migrations {
		if _, err := s.db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}
