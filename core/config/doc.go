// Package config provides configuration management for the sync service.
//
// It utilizes Viper for loading configuration from environment variables and
// a .env file, with defaults declared as struct tags on the partial configs.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL/SQLite connection details
//   - Feed: football-data.org client settings (base URL, token, competition)
//   - Storage: S3/MinIO snapshot archive settings
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
