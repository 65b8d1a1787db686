package database

import (
	"context"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // registers the cgo-free "sqlite" driver

	"freightsite/internal/config"
)

// Pool sizing is fixed configuration, not computed.
const (
	maxOpenConns    = 20
	maxIdleConns    = 10
	connMaxIdleTime = 30 * time.Second
	pingTimeout     = 5 * time.Second
)

// Connect opens a pooled connection. Postgres DSNs go through the pgx-backed
// driver; anything else is treated as a SQLite path for local development
// and tests (the modernc CGO-free driver).
func Connect(dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	sqlite := false
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		sqlite = true
		log.Println("Using SQLite for local development:", dsn)
		db, err = gorm.Open(
			gormsqlite.New(gormsqlite.Config{
				DriverName: "sqlite",
				DSN:        dsn,
			}),
			&gorm.Config{},
		)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if sqlite {
		// An in-memory SQLite database exists per connection; more than one
		// open connection would split the data across invisible copies.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxIdleConns)
		sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
	}

	return db, nil
}

// Ping runs a trivial round-trip against the pool. It never returns an
// error: callers get a plain availability signal and decide whether to
// answer 503. The target host/port is logged either way.
func Ping(ctx context.Context, db *gorm.DB, dsn string) bool {
	host, port := config.HostPort(dsn)

	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("database ping failed for %s:%s - %v", host, port, err)
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Printf("database connection failed to %s:%s - %v", host, port, err)
		return false
	}

	var now string
	if err := db.WithContext(ctx).Raw("SELECT CURRENT_TIMESTAMP").Scan(&now).Error; err != nil {
		log.Printf("database round-trip failed for %s:%s - %v", host, port, err)
		return false
	}

	log.Printf("database connected to %s:%s - now=%s", host, port, now)
	return true
}

// Close releases every pooled connection. Called once at shutdown.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
