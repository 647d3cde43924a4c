package storage

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is a single key-value pair in the database.
type Entry struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

// Database is a Storage backed by a SQL database through gorm.
type Database struct {
	db *gorm.DB
}

// SQLite returns the dialector for the SQLite database at path.
func SQLite(path string) gorm.Dialector {
	return sqlite.Open(path)
}

// Postgres returns the dialector for a PostgreSQL DSN.
func Postgres(dsn string) gorm.Dialector {
	return postgres.Open(dsn)
}

// NewDatabase opens the database, migrates the schema and configures
// the connection pool.
func NewDatabase(dialector gorm.Dialector) (*Database, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(Entry{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	if dialector.Name() == "sqlite" {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	for _, name := range []string{"query", "create", "delete"} {
		var processor interface {
			Register(string, func(*gorm.DB)) error
		}

		switch name {
		case "query":
			processor = db.Callback().Query().After("*")
		case "create":
			processor = db.Callback().Create().After("*")
		case "delete":
			processor = db.Callback().Delete().After("*")
		}

		err = processor.Register(fmt.Sprintf("smart_budget:after_%s_general", name), generalCallback)
		if err != nil {
			return nil, err
		}
	}

	return &Database{db: db}, nil
}

func (d *Database) Get(key string) ([]byte, error) {
	var entry Entry
	err := d.db.Where(&Entry{Key: key}).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrKeyNotFound
	}

	if err != nil {
		return nil, err
	}

	return entry.Value, nil
}

func (d *Database) Set(key string, value []byte) error {
	return d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&Entry{Key: key, Value: value}).Error
}

func (d *Database) Remove(key string) error {
	return d.db.Where(&Entry{Key: key}).Delete(&Entry{}).Error
}

// Ping verifies the database connection is alive.
func (d *Database) Ping() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}

// Close closes the underlying connection pool.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and replaced with ErrGeneral.
func generalCallback(db *gorm.DB) {
	if db.Error == nil || errors.Is(db.Error, gorm.ErrRecordNotFound) {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}
