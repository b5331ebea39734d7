// Package config provides configuration management for the ordering service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: portal database connection details
//   - Storage: S3/MinIO credentials and bucket settings for section documents
//   - Log: Logging level and format
//
// Defaults come from `default` struct tags; environment variables override
// them using underscore-joined keys (SERVER_PORT -> server.port).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
