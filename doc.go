// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the sportscal server.

sportscal is a small sports scheduling catalog: sports, venues, teams and
events with their participants, served as JSON to a calendar front end.

# Starting the Server

With no configuration the server listens on :5000, uses a SQLite file under
database/, and serves the front end from frontend/:

	go run .

The first run creates the database file and its schema. A seed file can
fill it with sample data:

	go run . -seed database/seed.sql

# Configuration

Settings come from flags, environment variables (a .env file is loaded
first), or a YAML file given with -c:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_URL (-d): SQLite file path or PostgreSQL DSN
  - DATABASE_TYPE (-t): sqlite or postgres
  - SCHEMA_PATH (-schema), SEED_PATH (-seed): first-run SQL scripts
  - STATIC_DIR (-static): front end directory
  - LOG_LEVEL (-log-level): debug, info, warn, error

# Architecture

  - handlers: HTTP request handlers (catalog, events, static files)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - store: Queries and transactional writes
  - validation: Create-event payload rules
  - models: Request/response types
  - db: Connection, first-run schema and seed
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
