// Package database provides the GORM connection to the contest database.
//
// The database is the local system of record for teams and matches that the
// sync engine reconciles against the upstream feed. Production deployments
// use MySQL; tests use the sqlite driver with an in-memory DSN.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("database unavailable", zap.Error(err))
//	}
package database
