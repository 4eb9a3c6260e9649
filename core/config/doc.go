// Package config loads the application configuration.
//
// Configuration comes from environment variables, optionally overlaid by a
// .env file. Defaults are declared on the sub-config structs themselves via
// 'default' struct tags, so each package (server, database, log, storage)
// owns its own settings and this package only aggregates them.
package config
