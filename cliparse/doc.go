// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: SQLite file path or PostgreSQL DSN
  - DatabaseType: sqlite (default) or postgres
  - SchemaPath: schema SQL applied when the database is first created
  - SeedPath: sample data SQL applied after the schema on first run
  - StaticDir: front end directory (default: frontend)
  - LogLevel: debug, info, warn or error (default: info)
  - ConfigFile: optional YAML file

# Sources

Each value is taken from the first source that sets it:

	flag         env            yaml
	-p           PORT           port
	-d           DATABASE_URL   database_url
	-t           DATABASE_TYPE  database_type
	-schema      SCHEMA_PATH    schema_path
	-seed        SEED_PATH      seed_path
	-static      STATIC_DIR     static_dir
	-log-level   LOG_LEVEL      log_level
	-c           CONFIG_FILE

When no database URL is given for SQLite, the first existing file of
database/sports.db and database/app.db is used, falling back to
database/app.db. PostgreSQL always needs an explicit URL.

# Validation

ParseFlags returns an error for an out-of-range port, an unknown database
type or log level, and an unreadable config file.
*/
package cliparse
