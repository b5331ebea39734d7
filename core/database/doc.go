// Package database handles database connections for the ordering service.
//
// It provides a wrapper around GORM to properly configure connections based
// on the application's configuration. MySQL is the production driver (the
// portal's database); sqlite is supported for tests, where an in-memory
// database gives fast, isolated runs.
//
// The relation tables themselves are owned by the feature packages, which
// expose Migrate functions built on GORM auto-migration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
