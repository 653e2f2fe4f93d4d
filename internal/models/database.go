package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DB is the database used by the backend.
var DB *gorm.DB

// Connect opens the SQLite database at dsn and configures the connection.
func Connect(dsn string) error {
	// Enforce foreign keys so that deleting a plan cascades to its jars,
	// trackings and expense records.
	if !strings.Contains(dsn, "_pragma") {
		dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	}

	db, err := gorm.Open(sqlite.Open(dsn), config())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return setup(db)
}

// ConnectPostgres connects to a PostgreSQL database instead of SQLite.
func ConnectPostgres(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), config())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return setup(db)
}

// LockForUpdate locks the selected rows until the transaction ends on
// databases that support it. SQLite has no FOR UPDATE and serializes all
// writes on the single pooled connection instead.
func LockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}

	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func config() *gorm.Config {
	return &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}
}

// setup migrates the schema, registers the error rewriting callbacks and
// sets the exported DB variable.
func setup(db *gorm.DB) error {
	err := db.AutoMigrate(Plan{}, Jar{}, JarCategory{}, ExpenseRecord{})
	if err != nil {
		return err
	}

	// Query callbacks
	err = db.Callback().Query().After("*").Register("sixjars:after_query", queryCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("sixjars:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("sixjars:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// Plan names must be unique per account
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: plans.account_id, plans.name") {
		db.Error = ErrPlanNameNotUnique
	}

	// Jar names must be unique per plan
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: jars.plan_id, jars.name") {
		db.Error = ErrJarNameNotUnique
	}

	// At most one tracking row per (jar, category)
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: jar_categories.jar_id, jar_categories.category_id") {
		db.Error = ErrCategoryAlreadyTracked
	}
}
