// Package database manages the GORM connection used by the catalog, ledger
// and user stores.
//
// Production runs on MySQL; tests and local development use the sqlite
// driver (Config.Driver = "sqlite", Config.Name = ":memory:") so the full
// stack can be exercised without an external server.
package database
